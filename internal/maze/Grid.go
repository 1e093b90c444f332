package maze

import "strings"

type Cell uint8

const (
	Wall Cell = iota
	Open
)

type Point struct {
	X, Y int
}

var Directions = []Point{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// Grid is the generated maze. It is never mutated once Generate returns it.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
}

func newWalledGrid(cols, rows int) *Grid {
	// Wall is the zero value, so a fresh slice is already fully walled.
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Start() Point { return Point{X: 1, Y: 1} }
func (g *Grid) Goal() Point  { return Point{X: g.cols - 2, Y: g.rows - 2} }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.cols+x]
}

// IsOpen reports whether (x, y) can be stood on. Coordinates outside the grid
// are never open.
func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// Neighbors returns the open cells orthogonally adjacent to p.
func (g *Grid) Neighbors(p Point) []Point {
	result := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		if g.IsOpen(p.X+d.X, p.Y+d.Y) {
			result = append(result, Point{X: p.X + d.X, Y: p.Y + d.Y})
		}
	}
	return result
}

func (g *Grid) OpenCount() int {
	count := 0
	for _, c := range g.cells {
		if c == Open {
			count++
		}
	}
	return count
}

func (g *Grid) set(p Point, c Cell) {
	g.cells[p.Y*g.cols+p.X] = c
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.IsOpen(x, y) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
