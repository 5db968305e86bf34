package alphabeta

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/daniig04/Projecte-PROP/game"
)

// Deepen runs iterative deepening: full-window searches at depth 1, 2,
// 3, … until the deadline flag fires or a proven win turns up. There is
// no depth ceiling; the external deadline is the only other way out.
// The result of the last fully completed depth is returned along with
// that depth; a depth interrupted by the deadline is discarded, so the
// caller always gets a result some complete search stood behind. Depth
// zero with an empty path means not even depth 1 finished.
func (s *Solver) Deepen(pos *game.Position, pov game.Color) (ScoredPath, int) {
	best := ScoredPath{Path: []game.Point{}}
	completed := 0
	for depth := 1; ; depth++ {
		res, ok := s.searchDepth(pos, depth, pov)
		if !ok || s.deadline.Load() {
			break
		}
		best = res
		completed = depth
		log.Debug().
			Int("depth", depth).
			Float64("score", res.Score).
			Int64("nodes", s.nodes.Load()).
			Msg("depth-completed")
		if res.Score >= WinScore {
			// A proven win cannot be improved by searching deeper.
			break
		}
	}
	return best, completed
}

// searchDepth runs one full-window search, converting a panic anywhere
// in the recursion into "this depth did not complete" so results already
// accepted by Deepen stay authoritative.
func (s *Solver) searchDepth(pos *game.Position, depth int, pov game.Color) (res ScoredPath, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("depth", depth).Msg("search-panic")
			ok = false
		}
	}()
	return s.Search(pos, depth, math.Inf(-1), math.Inf(1), pov), true
}
