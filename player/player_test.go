package player

import (
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/daniig04/Projecte-PROP/eval"
	"github.com/daniig04/Projecte-PROP/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustParse(t *testing.T, rows []string, toMove game.Color) *game.Position {
	t.Helper()
	g, err := game.ParsePosition(rows, toMove)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

type recordingPlayer struct {
	called bool
	move   Move
}

func (r *recordingPlayer) Name() string { return "recording" }

func (r *recordingPlayer) Move(pos *game.Position) Move {
	r.called = true
	return r.move
}

func TestFixedDepthFindsWinningMove(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		".....",
		".BW..",
		".....",
		".....",
		".....",
	}, game.Black)
	p := NewMinimaxPlayer("test", 1, eval.DefaultEvaluator())
	mv := p.Move(g)
	is.Equal(mv.Kind, KindMinimax)
	is.Equal(mv.DepthReached, 1)
	is.Equal(mv.Path, []game.Point{{Row: 2, Col: 1}})
	is.True(mv.NodesExplored > 0)
}

func TestIterativeStopsOnTimeout(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		".........",
		".........",
		"....B....",
		".........",
		"...W.....",
		".........",
		".........",
		".........",
		".........",
	}, game.Black)
	p := NewIterativePlayer("test", eval.DefaultEvaluator())
	timer := time.AfterFunc(50*time.Millisecond, p.TimeoutNotify)
	defer timer.Stop()

	mv := p.Move(g)
	is.Equal(mv.Kind, KindMinimaxIDS)
	is.True(len(mv.Path) > 0) // at least depth 1 completed
	is.True(mv.DepthReached >= 1)
}

func TestNeverReturnsEmptyPathWithMovesAvailable(t *testing.T) {
	is := is.New(t)
	boards := [][]string{
		{"...", "...", "..."},
		{"BW.", "...", "..W"},
		{"BBW", "W..", ".BW"},
	}
	for _, rows := range boards {
		g := mustParse(t, rows, game.Black)
		p := NewMinimaxPlayer("test", 2, eval.DefaultEvaluator())
		mv := p.Move(g)
		is.True(len(mv.Path) > 0)
		// Every returned placement must actually be playable in order.
		replay := g.Copy()
		for _, pt := range mv.Path {
			is.NoErr(replay.PlaceStone(pt))
		}
	}
}

func TestFallbackOnEmptySearchResult(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		".....",
		".BW..",
		".....",
		".....",
		".....",
	}, game.Black)
	// Make the position terminal so the search has nothing to return.
	is.NoErr(g.PlaceStone(game.Point{Row: 2, Col: 1}))
	is.True(g.GameOver())

	p := NewMinimaxPlayer("test", 2, eval.DefaultEvaluator())
	stub := &recordingPlayer{move: Move{Path: []game.Point{}, Kind: KindRandom}}
	p.fallback = stub

	mv := p.Move(g)
	is.True(stub.called)
	is.Equal(mv.Kind, KindRandom)
}

func TestRandomPlayerPicksLegalMove(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		"BW.",
		".B.",
		"W..",
	}, game.White)
	p := NewRandomPlayer("rand")
	for i := 0; i < 20; i++ {
		mv := p.Move(g)
		is.Equal(len(mv.Path), 1)
		is.Equal(g.At(mv.Path[0]), game.None)
	}
}
