package automatic

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/daniig04/Projecte-PROP/config"
	"github.com/daniig04/Projecte-PROP/game"
)

// BatchStats aggregates a batch of self-play games.
type BatchStats struct {
	mu        sync.Mutex
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int
	turns     []float64
	nodes     []float64
}

func (b *BatchStats) add(r Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Games++
	switch r.Winner {
	case game.Black:
		b.BlackWins++
	case game.White:
		b.WhiteWins++
	default:
		b.Draws++
	}
	b.turns = append(b.turns, float64(r.Turns))
	b.nodes = append(b.nodes, float64(r.Nodes))
}

// MeanTurns and MeanNodes summarize the batch; both are zero for an
// empty batch.
func (b *BatchStats) MeanTurns() float64 { return meanOrZero(b.turns) }
func (b *BatchStats) MeanNodes() float64 { return meanOrZero(b.nodes) }

func meanOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// LogSummary emits one structured line describing the batch.
func (b *BatchStats) LogSummary() {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.Info().
		Int("games", b.Games).
		Int("black-wins", b.BlackWins).
		Int("white-wins", b.WhiteWins).
		Int("draws", b.Draws).
		Float64("mean-turns", meanOrZero(b.turns)).
		Float64("mean-nodes", meanOrZero(b.nodes)).
		Float64("stdev-nodes", stat.StdDev(b.nodes, nil)).
		Msg("batch-summary")
}

// PlayBatch plays numGames games across the given number of worker
// goroutines. Each worker owns its runner, so the engines themselves
// never run concurrently within one game. The context cancels queueing,
// not games already in flight.
func PlayBatch(ctx context.Context, cfg *config.Config, numGames, threads int) (*BatchStats, error) {
	if threads < 1 {
		threads = 1
	}
	stats := &BatchStats{}
	jobs := make(chan struct{}, numGames)

	g := errgroup.Group{}
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			r := NewGameRunner(cfg, nil)
			for range jobs {
				res, err := r.PlayGame()
				if err != nil {
					return err
				}
				stats.add(res)
			}
			return nil
		})
	}

queueLoop:
	for i := 0; i < numGames; i++ {
		select {
		case jobs <- struct{}{}:
		case <-ctx.Done():
			log.Info().Msg("batch cancelled, draining")
			break queueLoop
		}
	}
	close(jobs)

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
