// Package automatic plays engine-vs-engine games to completion, for
// benchmarking the search and collecting statistics.
package automatic

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/daniig04/Projecte-PROP/config"
	"github.com/daniig04/Projecte-PROP/game"
	"github.com/daniig04/Projecte-PROP/player"
)

// GameRunner drives one game at a time between two players. It applies
// whole turns (a path may contain chained placements) and arms the
// per-move timer for iterative players.
type GameRunner struct {
	cfg     *config.Config
	players [2]player.Player
	logchan chan string
}

// NewGameRunner builds a runner whose two players are configured from
// cfg: fixed-depth engines when FixedDepth is set, iterative engines
// bounded by MoveTimeMs otherwise. logchan may be nil; when set it
// receives one CSV line per move.
func NewGameRunner(cfg *config.Config, logchan chan string) *GameRunner {
	r := &GameRunner{cfg: cfg, logchan: logchan}
	ev := cfg.Evaluator()
	for i := range r.players {
		name := fmt.Sprintf("engine-%d", i+1)
		if cfg.FixedDepth > 0 {
			r.players[i] = player.NewMinimaxPlayer(name, cfg.FixedDepth, ev)
		} else {
			r.players[i] = player.NewIterativePlayer(name, ev)
		}
	}
	return r
}

// MaxGameTurns caps runaway games: capture trading can in principle go
// on forever, so past this point the game is adjudicated a draw.
const MaxGameTurns = 300

// Result summarizes one finished game.
type Result struct {
	Winner game.Color
	Turns  int
	Nodes  int64
}

// PlayGame runs a single game to completion and returns its summary.
// players[0] is Black.
func (r *GameRunner) PlayGame() (Result, error) {
	pos := game.NewPosition(r.cfg.BoardSize)
	res := Result{}
	for !pos.GameOver() && res.Turns < MaxGameTurns {
		idx := 0
		if pos.CurrentPlayer() == game.White {
			idx = 1
		}
		mv, err := r.playTurn(pos, r.players[idx])
		if err != nil {
			return res, err
		}
		res.Turns++
		res.Nodes += mv.NodesExplored
	}
	if !pos.GameOver() {
		log.Warn().Int("turns", res.Turns).Msg("turn limit reached, adjudicating draw")
	}
	res.Winner = pos.Winner()
	log.Debug().
		Stringer("winner", res.Winner).
		Int("turns", res.Turns).
		Int64("nodes", res.Nodes).
		Msg("game-over")
	return res, nil
}

// playTurn asks p for its move, applies every placement of the returned
// path, and reports the move. Iterative players get a timer that flips
// their deadline flag after the configured budget.
func (r *GameRunner) playTurn(pos *game.Position, p player.Player) (player.Move, error) {
	if mp, ok := p.(*player.MinimaxPlayer); ok && r.cfg.FixedDepth == 0 && r.cfg.MoveTimeMs > 0 {
		timer := time.AfterFunc(time.Duration(r.cfg.MoveTimeMs)*time.Millisecond, mp.TimeoutNotify)
		defer timer.Stop()
	}
	start := time.Now()
	mv := p.Move(pos)
	elapsed := time.Since(start)

	if len(mv.Path) == 0 {
		return mv, fmt.Errorf("player %s returned no move", p.Name())
	}
	mover := pos.CurrentPlayer()
	for _, pt := range mv.Path {
		if err := pos.PlaceStone(pt); err != nil {
			return mv, fmt.Errorf("applying %v for %s: %w", pt, p.Name(), err)
		}
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%s,%v,%d,%d,%d,%d\n",
			p.Name(), mover, len(mv.Path), mv.NodesExplored, mv.DepthReached,
			elapsed.Milliseconds())
	}
	return mv, nil
}
