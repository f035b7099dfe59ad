package nav

import (
	"container/heap"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
)

type cellDelta struct {
	dc, dr   int
	cost     float64
	diagonal bool
}

var neighborOffsets = [...]cellDelta{
	{dc: 0, dr: -1, cost: 1},
	{dc: 1, dr: 0, cost: 1},
	{dc: 0, dr: 1, cost: 1},
	{dc: -1, dr: 0, cost: 1},
	{dc: 1, dr: -1, cost: math.Sqrt2, diagonal: true},
	{dc: 1, dr: 1, cost: math.Sqrt2, diagonal: true},
	{dc: -1, dr: 1, cost: math.Sqrt2, diagonal: true},
	{dc: -1, dr: -1, cost: math.Sqrt2, diagonal: true},
}

// FindPath runs an 8-way A* from start to goal over the grid and returns a
// smoothed sequence of world-space waypoints, or nil when no route exists.
//
// The start must map inside the grid; that is the one hard failure. A blocked
// goal cell is relaxed to the nearest free cell on expanding square rings
// before the search runs. Diagonal steps are rejected when either orthogonal
// cell shared with the neighbor is blocked, so paths cannot clip through
// obstacle corners.
//
// Ties on f-score resolve by heap order, which is deterministic for identical
// inputs but otherwise unspecified; callers must not rely on a particular
// equal-cost path.
func FindPath(g *Grid, obstacles []geom.Obstacle, agentRadius float64, start, goal cp.Vector) []cp.Vector {
	if g == nil {
		return nil
	}

	startCol, startRow, ok := g.Locate(start)
	if !ok {
		return nil
	}
	goalCol, goalRow := g.LocateClamped(goal)

	relaxed := false
	if g.Blocked(goalCol, goalRow) {
		goalCol, goalRow, ok = relaxGoal(g, goalCol, goalRow)
		if !ok {
			return nil
		}
		relaxed = true
	}

	cells := astar(g, cell{startCol, startRow}, cell{goalCol, goalRow})
	if cells == nil {
		return nil
	}

	path := make([]cp.Vector, 0, len(cells)+1)
	path = append(path, start)
	for _, c := range cells {
		path = append(path, g.CellCenter(c.col, c.row))
	}
	if !relaxed {
		// land on the exact requested point instead of the goal cell center
		path[len(path)-1] = goal
	}
	path = dedupe(path)
	return Smooth(path, obstacles, agentRadius)
}

type cell struct {
	col, row int
}

// relaxGoal scans expanding square rings around a blocked goal cell for the
// nearest free cell. It gives up once the ring radius exceeds the larger grid
// dimension.
func relaxGoal(g *Grid, col, row int) (int, int, bool) {
	maxRadius := g.Cols
	if g.Rows > maxRadius {
		maxRadius = g.Rows
	}
	for radius := 1; radius <= maxRadius; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if dr > -radius && dr < radius && dc > -radius && dc < radius {
					continue // interior already scanned on a smaller ring
				}
				nc := col + dc
				nr := row + dr
				if g.InBounds(nc, nr) && !g.Blocked(nc, nr) {
					return nc, nr, true
				}
			}
		}
	}
	return 0, 0, false
}

// canStepDiagonal rejects a diagonal move when either of the orthogonal cells
// adjacent to both endpoints is blocked.
func canStepDiagonal(g *Grid, from cell, d cellDelta) bool {
	if !d.diagonal {
		return true
	}
	if g.Blocked(from.col+d.dc, from.row) {
		return false
	}
	if g.Blocked(from.col, from.row+d.dr) {
		return false
	}
	return true
}

func cellHeuristic(a, b cell) float64 {
	return math.Hypot(float64(a.col-b.col), float64(a.row-b.row))
}

type pathNode struct {
	cell   cell
	g      float64
	f      float64
	index  int
	parent *pathNode
}

type openQueue []*pathNode

func (q openQueue) Len() int           { return len(q) }
func (q openQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func astar(g *Grid, start, goal cell) []cell {
	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{cell: start, g: 0, f: cellHeuristic(start, goal)})

	gScore := map[int]float64{cellIndex(g, start): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := cellIndex(g, current.cell)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}

		if current.cell == goal {
			return reconstruct(current)
		}

		for _, d := range neighborOffsets {
			if !canStepDiagonal(g, current.cell, d) {
				continue
			}
			next := cell{current.cell.col + d.dc, current.cell.row + d.dr}
			if g.Blocked(next.col, next.row) {
				continue
			}
			idx := cellIndex(g, next)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentative := current.g + d.cost
			if prev, ok := gScore[idx]; ok && tentative >= prev {
				continue
			}
			gScore[idx] = tentative
			heap.Push(open, &pathNode{
				cell:   next,
				g:      tentative,
				f:      tentative + cellHeuristic(next, goal),
				parent: current,
			})
		}
	}
	return nil
}

func cellIndex(g *Grid, c cell) int {
	return c.row*g.Cols + c.col
}

func reconstruct(end *pathNode) []cell {
	path := make([]cell, 0, 32)
	for n := end; n != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func dedupe(path []cp.Vector) []cp.Vector {
	out := path[:0]
	for _, p := range path {
		if len(out) > 0 && p.Near(out[len(out)-1], 1e-6) {
			continue
		}
		out = append(out, p)
	}
	return out
}
