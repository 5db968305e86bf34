// Package player contains the move-selection facades a host invokes
// once per turn: the minimax engine in its fixed-depth and iterative
// flavors, and the emergency random picker it falls back on.
package player

import (
	"github.com/daniig04/Projecte-PROP/game"
)

// SearchKind tags which strategy produced a move.
type SearchKind int

const (
	KindMinimax SearchKind = iota
	KindMinimaxIDS
	KindRandom
)

func (k SearchKind) String() string {
	switch k {
	case KindMinimax:
		return "minimax"
	case KindMinimaxIDS:
		return "minimax-ids"
	case KindRandom:
		return "random"
	}
	return "unknown"
}

// Move is the outcome handed back to the host: the placement sequence
// for one whole logical turn (chained placements included) plus search
// statistics. Immutable once returned.
type Move struct {
	Path          []game.Point
	NodesExplored int64
	DepthReached  int
	Kind          SearchKind
}

// Player picks a move for the side to move in pos. Implementations must
// always return, never panic across this boundary, and only return an
// empty path when the position itself offers no legal move.
type Player interface {
	Name() string
	Move(pos *game.Position) Move
}
