package alphabeta

import (
	"math"
	"sort"

	"github.com/daniig04/Projecte-PROP/game"
)

// orderMoves sorts moves in place so that placements nearer the board's
// geometric center are searched first; central cells touch more groups
// and tend to produce the cut-offs pruning feeds on. The sort is stable,
// so equidistant moves keep the generator's order. This is purely an
// efficiency heuristic and never changes which move is judged best.
func orderMoves(moves []game.Point, size int) {
	center := float64(size-1) / 2
	sort.SliceStable(moves, func(i, j int) bool {
		return centerDistance(moves[i], center) < centerDistance(moves[j], center)
	})
}

func centerDistance(p game.Point, center float64) float64 {
	return math.Hypot(float64(p.Row)-center, float64(p.Col)-center)
}
