// Package maze generates thick-wall grid mazes with a randomized depth-first
// recursive backtracker.
//
// Odd coordinates are rooms, the cell between two rooms is the wall that gets
// carved to connect them. The carved rooms and passages form a spanning tree,
// so every open cell is reachable from the start cell.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const MinSize = 3

var ErrInvalidDimensions = errors.New("maze: invalid dimensions")

// Chooser returns an index in [0, n). It replaces uniform random selection
// when deterministic generation is needed.
type Chooser func(n int) int

type Generator struct {
	choose Chooser
}

type Option func(*Generator)

func WithChooser(c Chooser) Option {
	return func(g *Generator) {
		g.choose = c
	}
}

// WithSeed makes generation reproducible. A zero seed is replaced with the
// current time.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.choose = seededChooser(seed)
	}
}

func seededChooser(seed int64) Chooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return rng.Intn
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.choose == nil {
		g.choose = seededChooser(0)
	}
	return g
}

// Generate is a shortcut for NewGenerator().Generate.
func Generate(cols, rows int) (*Grid, error) {
	return NewGenerator().Generate(cols, rows)
}

// Generate carves a new maze of cols x rows cells. The returned grid has a
// walled border and open start and goal cells.
func (gen *Generator) Generate(cols, rows int) (*Grid, error) {
	if cols < MinSize || rows < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimensions, cols, rows, MinSize, MinSize)
	}

	grid := newWalledGrid(cols, rows)
	gen.carve(grid, grid.Start())
	forceEndpoints(grid)

	return grid, nil
}

func (gen *Generator) carve(grid *Grid, start Point) {
	grid.set(start, Open)
	stack := []Point{start}
	candidates := make([]Point, 0, len(Directions))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = unvisitedNeighbors(grid, curr, candidates[:0])

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[gen.pick(len(candidates))]
		grid.set(Point{X: (curr.X + next.X) / 2, Y: (curr.Y + next.Y) / 2}, Open)
		grid.set(next, Open)
		stack = append(stack, next)
	}
}

func (gen *Generator) pick(n int) int {
	i := gen.choose(n) % n
	if i < 0 {
		i += n
	}
	return i
}

// unvisitedNeighbors appends to dst the rooms two steps away from p that lie
// strictly inside the border and have not been carved yet.
func unvisitedNeighbors(grid *Grid, p Point, dst []Point) []Point {
	for _, d := range Directions {
		nx, ny := p.X+2*d.X, p.Y+2*d.Y
		if nx <= 0 || nx >= grid.cols-1 || ny <= 0 || ny >= grid.rows-1 {
			continue
		}
		if grid.At(nx, ny) == Wall {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}
	return dst
}

// forceEndpoints opens start and goal. An endpoint with an even coordinate is
// off the room lattice and would be sealed in, so it is joined to its nearest
// room by a straight corridor. Running it on a finished grid changes nothing.
func forceEndpoints(grid *Grid) {
	for _, p := range []Point{grid.Start(), grid.Goal()} {
		grid.set(p, Open)
		linkToRoom(grid, p)
	}
}

func linkToRoom(grid *Grid, p Point) {
	room := nearestRoom(p)
	for x := p.X; x != room.X; x-- {
		grid.set(Point{X: x, Y: p.Y}, Open)
	}
	for y := p.Y; y != room.Y; y-- {
		grid.set(Point{X: room.X, Y: y}, Open)
	}
}

func nearestRoom(p Point) Point {
	room := p
	if room.X%2 == 0 {
		room.X--
	}
	if room.Y%2 == 0 {
		room.Y--
	}
	return room
}
