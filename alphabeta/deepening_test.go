package alphabeta

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniig04/Projecte-PROP/eval"
	"github.com/daniig04/Projecte-PROP/game"
)

// cancelAfter flips the deadline flag once the solver has visited n
// moves, giving tests a deterministic mid-search cancellation point.
type cancelAfter struct {
	flag   *atomic.Bool
	n      int
	visits int
}

func (c *cancelAfter) Write(p []byte) (int, error) {
	c.visits++
	if c.visits >= c.n {
		c.flag.Store(true)
	}
	return len(p), nil
}

func TestDeepenStopsOnProvenWin(t *testing.T) {
	g := mustParse(t, []string{
		".....",
		".BW..",
		".....",
		".....",
		".....",
	}, game.Black)
	s := newTestSolver()
	best, completed := s.Deepen(g, game.Black)
	assert.Equal(t, 1, completed)
	assert.GreaterOrEqual(t, best.Score, WinScore)
	assert.Equal(t, []game.Point{{Row: 2, Col: 1}}, best.Path)
}

func TestDeepenKeepsLastCompletedDepth(t *testing.T) {
	// Empty 4x4 board: no captures are reachable in two plies, so depth 1
	// visits exactly 16 moves. Cancelling on visit 30 lands mid-depth-2.
	g, err := game.ParsePosition([]string{
		"....",
		"....",
		"....",
		"....",
	}, game.Black)
	require.NoError(t, err)

	var deadline atomic.Bool
	s := NewSolver(eval.DefaultEvaluator(), &deadline)
	s.SetLogStream(&cancelAfter{flag: &deadline, n: 30})

	best, completed := s.Deepen(g, game.Black)
	assert.Equal(t, 1, completed)
	require.Len(t, best.Path, 1)
	// The interrupted depth-2 pass must not have corrupted the result.
	assert.Equal(t, game.Point{Row: 1, Col: 1}, best.Path[0])
}

func TestDeepenWithPreFiredDeadline(t *testing.T) {
	g := mustParse(t, []string{
		"B..",
		"...",
		"..W",
	}, game.Black)
	var deadline atomic.Bool
	deadline.Store(true)
	s := NewSolver(eval.DefaultEvaluator(), &deadline)
	best, completed := s.Deepen(g, game.Black)
	assert.Zero(t, completed)
	assert.NotNil(t, best.Path)
	assert.Empty(t, best.Path)
}
