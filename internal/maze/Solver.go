package maze

// Solve returns the shortest path of open cells from Start to Goal, both
// included. It returns nil when the goal cannot be reached.
func (g *Grid) Solve() []Point {
	return g.ShortestPath(g.Start(), g.Goal())
}

// ShortestPath runs a breadth first search over open cells.
func (g *Grid) ShortestPath(from, to Point) []Point {
	if !g.IsOpen(from.X, from.Y) || !g.IsOpen(to.X, to.Y) {
		return nil
	}

	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{from: true}
	queue := []Point{from}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Point{curr}
			for curr != from {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, next := range g.Neighbors(curr) {
			if visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}

	return nil
}

// Reachable returns every open cell connected to from.
func (g *Grid) Reachable(from Point) map[Point]bool {
	seen := make(map[Point]bool)
	if !g.IsOpen(from.X, from.Y) {
		return seen
	}

	seen[from] = true
	queue := []Point{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(curr) {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
