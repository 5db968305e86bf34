// Package alphabeta implements a depth-limited minimax solver with
// alpha-beta pruning for Oust positions. A capture keeps the turn with
// the mover, so one search ply can span several chained placements: the
// depth budget stays flat across a chained move, and the solver returns
// the whole chain as a single path.
package alphabeta

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/daniig04/Projecte-PROP/eval"
	"github.com/daniig04/Projecte-PROP/game"
)

// Win/loss sentinels. They dominate any score the evaluator can produce
// for a realistic board, and they are offset by the remaining depth so
// the search prefers quick wins and slow losses.
const (
	WinScore  float64 = 1000000
	LossScore float64 = -1000000
)

// ScoredPath couples a minimax score with the placement sequence for the
// current logical turn, including chained extra placements. The path
// stops at the first change of turn; moves past that belong to a future
// call. Path is never nil; empty means no usable continuation was found.
type ScoredPath struct {
	Score float64
	Path  []game.Point
}

// Solver runs the search. One Solver serves one Move invocation; it is
// not safe for concurrent searches, but the deadline flag it watches may
// be flipped from any goroutine.
type Solver struct {
	evaluator eval.Evaluator
	deadline  *atomic.Bool
	nodes     atomic.Int64

	// logStream, when set, receives one line per visited move. Used by
	// tests to observe visit order; nil in normal play.
	logStream io.Writer
}

// NewSolver returns a solver that evaluates leaves with ev and aborts
// when deadline becomes true. A nil deadline means the search can never
// be interrupted.
func NewSolver(ev eval.Evaluator, deadline *atomic.Bool) *Solver {
	if deadline == nil {
		deadline = &atomic.Bool{}
	}
	return &Solver{evaluator: ev, deadline: deadline}
}

// Nodes returns the number of terminal and leaf nodes scored so far.
func (s *Solver) Nodes() int64 { return s.nodes.Load() }

func (s *Solver) SetLogStream(w io.Writer) { s.logStream = w }

// Search runs minimax with alpha-beta pruning to the given depth budget
// and returns the best scored path for pov. Chained placements do not
// consume depth. pos is never mutated; every branch works on its own
// copy.
func (s *Solver) Search(pos *game.Position, depth int, α, β float64, pov game.Color) ScoredPath {
	if s.deadline.Load() {
		// Placeholder only; the driver discards anything produced after
		// the deadline fires.
		return ScoredPath{Path: []game.Point{}}
	}

	if pos.GameOver() {
		s.nodes.Add(1)
		switch pos.Winner() {
		case pov:
			return ScoredPath{Score: WinScore + float64(depth), Path: []game.Point{}}
		case game.None:
			return ScoredPath{Path: []game.Point{}}
		default:
			return ScoredPath{Score: LossScore - float64(depth), Path: []game.Point{}}
		}
	}

	if depth <= 0 {
		s.nodes.Add(1)
		return ScoredPath{Score: s.evaluator.Evaluate(pos, pov), Path: []game.Point{}}
	}

	moves := pos.LegalMoves()
	orderMoves(moves, pos.Size())
	isMax := pos.CurrentPlayer() == pov

	if len(moves) == 0 {
		// A live position with no legal placements violates the game
		// contract. Score it as a forced result rather than crash.
		log.Warn().Int("depth", depth).Msg("no legal moves on a live position")
		if isMax {
			return ScoredPath{Score: LossScore, Path: []game.Point{}}
		}
		return ScoredPath{Score: WinScore, Path: []game.Point{}}
	}

	if isMax {
		maxEval := math.Inf(-1)
		var best *ScoredPath
		for _, m := range moves {
			s.logVisit(m, depth)
			child := pos.Copy()
			if err := child.PlaceStone(m); err != nil {
				log.Err(err).Stringer("move", m).Msg("generator produced an illegal move")
				continue
			}
			// A capture keeps the turn with us: recurse without spending
			// depth, and splice the continuation into our path.
			sameTurn := child.CurrentPlayer() == pov
			nextDepth := depth - 1
			if sameTurn {
				nextDepth = max(depth, 1)
			}
			res := s.Search(child, nextDepth, α, β, pov)
			if res.Score > maxEval {
				maxEval = res.Score
				path := make([]game.Point, 0, 1+len(res.Path))
				path = append(path, m)
				if sameTurn {
					path = append(path, res.Path...)
				}
				best = &ScoredPath{Score: maxEval, Path: path}
			}
			α = math.Max(α, res.Score)
			if β <= α {
				break // beta cut-off
			}
		}
		if best == nil {
			// Unreachable while float comparison behaves; degrade to a
			// forced loss instead of mis-scoring silently.
			log.Warn().Msg("maximizing node found no best path")
			return ScoredPath{Score: LossScore, Path: []game.Point{}}
		}
		return *best
	}

	minEval := math.Inf(1)
	var best *ScoredPath
	for _, m := range moves {
		s.logVisit(m, depth)
		child := pos.Copy()
		if err := child.PlaceStone(m); err != nil {
			log.Err(err).Stringer("move", m).Msg("generator produced an illegal move")
			continue
		}
		// The opponent's chained captures keep the turn with them.
		sameTurn := child.CurrentPlayer() != pov
		nextDepth := depth - 1
		if sameTurn {
			nextDepth = max(depth, 1)
		}
		res := s.Search(child, nextDepth, α, β, pov)
		if res.Score < minEval {
			minEval = res.Score
			// An opponent turn starts a new logical turn; its moves are
			// not part of the path we hand back.
			best = &ScoredPath{Score: minEval, Path: []game.Point{}}
		}
		β = math.Min(β, res.Score)
		if β <= α {
			break // alpha cut-off
		}
	}
	if best == nil {
		log.Warn().Msg("minimizing node found no best path")
		return ScoredPath{Score: WinScore, Path: []game.Point{}}
	}
	return *best
}

func (s *Solver) logVisit(m game.Point, depth int) {
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "visit %v depth %d\n", m, depth)
	}
}
