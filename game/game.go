// Package game implements the board state for an Oust-style placement
// game on a square board. A placement that captures adjacent enemy
// groups grants the mover an immediate extra placement, so a single
// logical turn can consist of several chained moves.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies a player, or an empty cell.
type Color uint8

const (
	None Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Point is a board coordinate. Since every move in this game is a stone
// placement, a Point doubles as a move.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

var (
	ErrGameOver     = errors.New("game is over")
	ErrOutOfBounds  = errors.New("placement out of bounds")
	ErrCellOccupied = errors.New("cell is occupied")
)

// Position is a snapshot of the board, the side to move, and the game
// outcome. The search engine never mutates a Position it was handed; it
// works on copies, one per explored branch.
type Position struct {
	size     int
	cells    []Color // row-major
	toMove   Color
	stones   [3]int // current stone count, indexed by Color
	placed   [3]int // total stones ever placed, indexed by Color
	gameOver bool
	winner   Color
}

// NewPosition returns an empty size×size board with Black to move.
func NewPosition(size int) *Position {
	return &Position{
		size:   size,
		cells:  make([]Color, size*size),
		toMove: Black,
	}
}

// Copy returns an independent deep copy. The copy shares nothing with the
// receiver, so sibling branches of a search tree cannot observe each
// other's trial moves.
func (g *Position) Copy() *Position {
	c := *g
	c.cells = make([]Color, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

func (g *Position) Size() int             { return g.size }
func (g *Position) CurrentPlayer() Color  { return g.toMove }
func (g *Position) GameOver() bool        { return g.gameOver }
func (g *Position) Winner() Color         { return g.winner }
func (g *Position) StoneCount(c Color) int { return g.stones[c] }

// At returns the contents of a cell.
func (g *Position) At(p Point) Color {
	return g.cells[p.Row*g.size+p.Col]
}

// Stones returns the coordinates of every stone of the given color.
func (g *Position) Stones(c Color) []Point {
	pts := make([]Point, 0, g.stones[c])
	for i, cell := range g.cells {
		if cell == c {
			pts = append(pts, Point{Row: i / g.size, Col: i % g.size})
		}
	}
	return pts
}

// LegalMoves enumerates every legal placement for the side to move. The
// returned slice is freshly allocated and owned by the caller. It is
// empty when the game is over.
func (g *Position) LegalMoves() []Point {
	if g.gameOver {
		return []Point{}
	}
	moves := make([]Point, 0, len(g.cells))
	for i, cell := range g.cells {
		if cell == None {
			moves = append(moves, Point{Row: i / g.size, Col: i % g.size})
		}
	}
	return moves
}

// PlaceStone plays a stone of the side to move at p, resolves captures,
// and advances the turn. Any capture keeps the turn with the mover.
func (g *Position) PlaceStone(p Point) error {
	if g.gameOver {
		return ErrGameOver
	}
	if p.Row < 0 || p.Row >= g.size || p.Col < 0 || p.Col >= g.size {
		return ErrOutOfBounds
	}
	idx := p.Row*g.size + p.Col
	if g.cells[idx] != None {
		return ErrCellOccupied
	}
	mover := g.toMove
	g.cells[idx] = mover
	g.stones[mover]++
	g.placed[mover]++

	captured := g.resolveCaptures(p, mover)
	if captured == 0 {
		g.toMove = mover.Opponent()
	}
	g.updateOutcome(mover)
	return nil
}

// resolveCaptures removes every enemy group adjacent to the just-placed
// stone's group that is strictly smaller than it. Returns the number of
// stones removed.
func (g *Position) resolveCaptures(p Point, mover Color) int {
	own := g.group(p)
	opp := mover.Opponent()
	captured := 0
	seen := make(map[Point]bool)
	for _, member := range own {
		for _, n := range g.neighbors(member) {
			if g.At(n) != opp || seen[n] {
				continue
			}
			enemy := g.group(n)
			for _, e := range enemy {
				seen[e] = true
			}
			if len(enemy) < len(own) {
				for _, e := range enemy {
					g.cells[e.Row*g.size+e.Col] = None
				}
				g.stones[opp] -= len(enemy)
				captured += len(enemy)
			}
		}
	}
	return captured
}

// group flood-fills the 4-connected group containing p.
func (g *Position) group(p Point) []Point {
	color := g.At(p)
	visited := map[Point]bool{p: true}
	stack := []Point{p}
	members := []Point{}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, cur)
		for _, n := range g.neighbors(cur) {
			if !visited[n] && g.At(n) == color {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return members
}

func (g *Position) neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	if p.Row > 0 {
		out = append(out, Point{p.Row - 1, p.Col})
	}
	if p.Row < g.size-1 {
		out = append(out, Point{p.Row + 1, p.Col})
	}
	if p.Col > 0 {
		out = append(out, Point{p.Row, p.Col - 1})
	}
	if p.Col < g.size-1 {
		out = append(out, Point{p.Row, p.Col + 1})
	}
	return out
}

func (g *Position) updateOutcome(mover Color) {
	opp := mover.Opponent()
	if g.placed[Black] > 0 && g.placed[White] > 0 && g.stones[opp] == 0 {
		g.gameOver = true
		g.winner = mover
		return
	}
	for _, cell := range g.cells {
		if cell == None {
			return
		}
	}
	// Board full: majority of stones wins, a tie is a draw.
	g.gameOver = true
	switch {
	case g.stones[Black] > g.stones[White]:
		g.winner = Black
	case g.stones[White] > g.stones[Black]:
		g.winner = White
	default:
		g.winner = None
	}
}

// ParsePosition builds a position from ASCII rows: '.' for empty, 'B'
// and 'W' (case-insensitive) for stones. Used by tests and the shell.
func ParsePosition(rows []string, toMove Color) (*Position, error) {
	size := len(rows)
	if size == 0 {
		return nil, errors.New("no rows")
	}
	g := NewPosition(size)
	g.toMove = toMove
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c, ch := range row {
			var color Color
			switch ch {
			case '.':
				continue
			case 'B', 'b':
				color = Black
			case 'W', 'w':
				color = White
			default:
				return nil, fmt.Errorf("bad cell %q at row %d col %d", ch, r, c)
			}
			g.cells[r*size+c] = color
			g.stones[color]++
			g.placed[color]++
		}
	}
	return g, nil
}

// String renders the board with the side to move, in the same format
// ParsePosition accepts.
func (g *Position) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			switch g.At(Point{r, c}) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%v to move\n", g.toMove)
	return sb.String()
}
