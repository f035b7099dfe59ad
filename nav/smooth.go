package nav

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
)

// Smooth reduces a waypoint path to the minimal sequence of line-of-sight
// hops: from each kept point it jumps to the furthest later point the agent
// can reach on a straight, obstacle-free segment. Endpoints are preserved and
// re-smoothing an already smoothed path returns it unchanged.
func Smooth(path []cp.Vector, obstacles []geom.Obstacle, agentRadius float64) []cp.Vector {
	if len(path) < 2 {
		return path
	}

	out := make([]cp.Vector, 0, len(path))
	out = append(out, path[0])

	i := 0
	for i < len(path)-1 {
		next := i + 1
		for j := len(path) - 1; j > next; j-- {
			if !geom.SegmentBlocked(obstacles, path[i], path[j], agentRadius) {
				next = j
				break
			}
		}
		out = append(out, path[next])
		i = next
	}
	return out
}
