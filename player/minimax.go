package player

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/daniig04/Projecte-PROP/alphabeta"
	"github.com/daniig04/Projecte-PROP/eval"
	"github.com/daniig04/Projecte-PROP/game"
)

// MinimaxPlayer is the move-selection facade over the alpha-beta solver.
// With fixedDepth > 0 it runs a single search at that depth and finishes
// it even if the host signals a timeout mid-way (the signal still aborts
// the recursion defensively). With fixedDepth == 0 it iteratively
// deepens until TimeoutNotify fires or a win is proven.
type MinimaxPlayer struct {
	name       string
	fixedDepth int
	evaluator  eval.Evaluator
	deadline   atomic.Bool
	fallback   Player
}

// NewMinimaxPlayer builds a fixed-depth player. depth must be positive.
func NewMinimaxPlayer(name string, depth int, ev eval.Evaluator) *MinimaxPlayer {
	return &MinimaxPlayer{
		name:       name,
		fixedDepth: depth,
		evaluator:  ev,
		fallback:   NewRandomPlayer("emergency"),
	}
}

// NewIterativePlayer builds a player that deepens until the host's
// timeout notification arrives.
func NewIterativePlayer(name string, ev eval.Evaluator) *MinimaxPlayer {
	return &MinimaxPlayer{
		name:      name,
		evaluator: ev,
		fallback:  NewRandomPlayer("emergency"),
	}
}

func (p *MinimaxPlayer) Name() string {
	if p.fixedDepth > 0 {
		return fmt.Sprintf("%s(depth=%d)", p.name, p.fixedDepth)
	}
	return fmt.Sprintf("%s(ids)", p.name)
}

// TimeoutNotify asks the in-flight search to stop. Safe to call from any
// goroutine; the search polls the flag at the top of every recursive
// call, so the abort latency is one subtree unwind, not a full search.
func (p *MinimaxPlayer) TimeoutNotify() {
	p.deadline.Store(true)
}

// Move picks the turn's placement sequence for the side to move. It
// always returns a playable move unless pos itself has none.
func (p *MinimaxPlayer) Move(pos *game.Position) Move {
	p.deadline.Store(false)
	solver := alphabeta.NewSolver(p.evaluator, &p.deadline)
	pov := pos.CurrentPlayer()

	var best alphabeta.ScoredPath
	var depthReached int
	kind := KindMinimaxIDS
	if p.fixedDepth > 0 {
		kind = KindMinimax
		best = solver.Search(pos, p.fixedDepth, math.Inf(-1), math.Inf(1), pov)
		depthReached = p.fixedDepth
	} else {
		best, depthReached = solver.Deepen(pos, pov)
	}

	if len(best.Path) == 0 {
		log.Debug().
			Str("player", p.name).
			Int64("nodes", solver.Nodes()).
			Msg("search produced no move, falling back")
		return p.fallback.Move(pos)
	}
	return Move{
		Path:          best.Path,
		NodesExplored: solver.Nodes(),
		DepthReached:  depthReached,
		Kind:          kind,
	}
}
