// Package eval implements the static evaluation of non-terminal
// positions: a material differential that dominates everything else,
// a mobility term, and an optional positional term driven by the
// center-weight table.
package eval

import (
	"github.com/samber/lo"

	"github.com/daniig04/Projecte-PROP/game"
)

// Default weights. Material must stay large enough to dominate mobility
// for any reachable board, and both must stay far below the search's
// win/loss sentinels.
const (
	DefaultMaterialWeight = 100
	DefaultMobilityWeight = 2
)

// Evaluator scores positions from a given player's perspective. The zero
// value scores everything as zero; use DefaultEvaluator for sane weights.
type Evaluator struct {
	MaterialWeight   float64
	MobilityWeight   float64
	PositionalWeight float64
}

func DefaultEvaluator() Evaluator {
	return Evaluator{
		MaterialWeight: DefaultMaterialWeight,
		MobilityWeight: DefaultMobilityWeight,
	}
}

// Evaluate returns the desirability of pos for pov. Positive is good for
// pov. Callers score terminal positions themselves so that proven
// outcomes always outrank heuristics; Evaluate is only meaningful on
// live positions. Generating the move list for the mobility term is the
// dominant cost here.
func (e Evaluator) Evaluate(pos *game.Position, pov game.Color) float64 {
	diff := pos.StoneCount(game.Black) - pos.StoneCount(game.White)
	if pov == game.White {
		diff = -diff
	}
	score := float64(diff) * e.MaterialWeight

	mobility := float64(len(pos.LegalMoves())) * e.MobilityWeight
	if pos.CurrentPlayer() == pov {
		score += mobility
	} else {
		score -= mobility
	}

	if e.PositionalWeight != 0 {
		score += float64(e.positional(pos, pov)) * e.PositionalWeight
	}
	return score
}

func (e Evaluator) positional(pos *game.Position, pov game.Color) int {
	weights := CenterWeights(pos.Size())
	n := pos.Size()
	cellWeight := func(p game.Point) int {
		return weights[p.Row*n+p.Col]
	}
	return lo.SumBy(pos.Stones(pov), cellWeight) -
		lo.SumBy(pos.Stones(pov.Opponent()), cellWeight)
}
