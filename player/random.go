package player

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/daniig04/Projecte-PROP/game"
)

// RandomPlayer plays a uniformly random legal placement. It exists as
// the last-resort picker when a search produces nothing usable.
type RandomPlayer struct {
	name string
}

func NewRandomPlayer(name string) *RandomPlayer {
	return &RandomPlayer{name: name}
}

func (p *RandomPlayer) Name() string { return p.name }

func (p *RandomPlayer) Move(pos *game.Position) Move {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		log.Warn().Str("player", p.name).Msg("no legal moves to pick from")
		return Move{Path: []game.Point{}, Kind: KindRandom}
	}
	return Move{
		Path: []game.Point{moves[frand.Intn(len(moves))]},
		Kind: KindRandom,
	}
}
