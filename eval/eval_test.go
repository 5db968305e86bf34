package eval

import (
	"testing"

	"github.com/matryer/is"

	"github.com/daniig04/Projecte-PROP/game"
)

func mustParse(t *testing.T, rows []string, toMove game.Color) *game.Position {
	t.Helper()
	g, err := game.ParsePosition(rows, toMove)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEvaluateIsDeterministic(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		"B.W..",
		".B...",
		"..W..",
		".....",
		"...B.",
	}, game.Black)
	e := DefaultEvaluator()
	first := e.Evaluate(g, game.Black)
	for i := 0; i < 10; i++ {
		is.Equal(e.Evaluate(g, game.Black), first)
	}
}

func TestMaterialDominatesMobility(t *testing.T) {
	is := is.New(t)
	// Black is a stone up; that must outweigh any mobility swing.
	g := mustParse(t, []string{
		"BB.",
		".W.",
		"...",
	}, game.White)
	e := DefaultEvaluator()
	is.True(e.Evaluate(g, game.Black) > 0)
	is.True(e.Evaluate(g, game.White) < 0)
}

func TestPerspectiveFlipsMaterialSign(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		"B..",
		"...",
		"..B",
	}, game.Black)
	e := Evaluator{MaterialWeight: 100}
	is.Equal(e.Evaluate(g, game.Black), 200.0)
	is.Equal(e.Evaluate(g, game.White), -200.0)
}

func TestMobilitySign(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, []string{
		"BW.",
		"...",
		"...",
	}, game.Black)
	e := Evaluator{MobilityWeight: 2}
	// Seven empty cells, Black to move.
	is.Equal(e.Evaluate(g, game.Black), 14.0)
	is.Equal(e.Evaluate(g, game.White), -14.0)
}

func TestPositionalTermPrefersCenter(t *testing.T) {
	is := is.New(t)
	center := mustParse(t, []string{
		"...",
		".BW",
		"...",
	}, game.Black)
	edge := mustParse(t, []string{
		"B..",
		"..W",
		"...",
	}, game.Black)
	e := Evaluator{PositionalWeight: 1}
	is.True(e.Evaluate(center, game.Black) > e.Evaluate(edge, game.Black))
}

func TestCenterWeights(t *testing.T) {
	is := is.New(t)
	w := CenterWeights(7)
	center := w[3*7+3]
	is.Equal(center, 100)
	// Monotone toward the center.
	is.True(w[0] < w[1*7+1])
	is.True(w[1*7+1] < center)
	// Far corners of a big board floor at zero.
	is.Equal(CenterWeights(15)[0], 0)
}

func TestCenterWeightsComputedOnce(t *testing.T) {
	is := is.New(t)
	a := CenterWeights(9)
	b := CenterWeights(9)
	is.True(&a[0] == &b[0]) // same backing array, not a recomputation
}
