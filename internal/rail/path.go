package rail

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// FindPath runs a breadth-first search over the 4-connected rail graph
// (rail or station cells) and returns the minimum-hop path from start
// to goal inclusive, or ok=false if the cells are disconnected.
func FindPath(w RailWorld, start, goal Point) ([]Point, bool) {
	if !railCellAt(w, start.X, start.Y) || !railCellAt(w, goal.X, goal.Y) {
		return nil, false
	}
	if start == goal {
		return []Point{start}, true
	}

	ww, wh := w.Size()
	idx := func(p Point) int { return p.Y*ww + p.X }

	visited := make([]bool, ww*wh)
	parent := make([]int32, ww*wh)
	for i := range parent {
		parent[i] = -1
	}
	visited[idx(start)] = true

	frontier := make([]Point, 0, 64)
	frontier = append(frontier, start)

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for d := North; d <= West; d++ {
			dx, dy := d.Delta()
			next := Point{X: cur.X + dx, Y: cur.Y + dy}
			if next.X < 0 || next.Y < 0 || next.X >= ww || next.Y >= wh {
				continue
			}
			if visited[idx(next)] || !railCellAt(w, next.X, next.Y) {
				continue
			}
			visited[idx(next)] = true
			parent[idx(next)] = int32(idx(cur))
			if next == goal {
				return reconstructPath(parent, ww, start, goal), true
			}
			frontier = append(frontier, next)
		}
	}
	return nil, false
}

func reconstructPath(parent []int32, ww int, start, goal Point) []Point {
	rev := []Point{goal}
	cur := goal.Y*ww + goal.X
	for parent[cur] >= 0 {
		cur = int(parent[cur])
		rev = append(rev, Point{X: cur % ww, Y: cur / ww})
	}
	// rev ends at start; flip in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	if rev[0] != start {
		return nil
	}
	return rev
}
