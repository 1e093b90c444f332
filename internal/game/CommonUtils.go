package game

import "github.com/Mshel/sshmaze/internal/maze"

type Direction struct {
	Dx, Dy int
}

var (
	Up    = Direction{Dx: 0, Dy: -1}
	Down  = Direction{Dx: 0, Dy: 1}
	Left  = Direction{Dx: -1, Dy: 0}
	Right = Direction{Dx: 1, Dy: 0}
)

func GetManhattanDistance(p1, p2 maze.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
