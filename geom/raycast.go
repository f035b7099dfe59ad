package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Hit describes the first intersection of a segment with an inflated obstacle.
// Normal is the outward surface normal at the hit point, opposing the ray.
type Hit struct {
	Point  cp.Vector
	Normal cp.Vector
	T      float64
}

// FirstHit casts the segment start->end against every obstacle footprint
// inflated by agentRadius and returns the nearest hit by parametric distance.
// Hits are only accepted strictly inside the segment (0 < t < 1), so touching
// an obstacle exactly at an endpoint does not count.
func FirstHit(obstacles []Obstacle, start, end cp.Vector, agentRadius float64) (Hit, bool) {
	delta := end.Sub(start)
	if delta.X == 0 && delta.Y == 0 {
		return Hit{}, false
	}

	best := Hit{T: math.Inf(1)}
	found := false
	for _, o := range obstacles {
		var h Hit
		var ok bool
		switch o.Kind {
		case KindRect:
			h, ok = segmentRectHit(start, delta, o.InflatedBB(agentRadius))
		case KindCircle:
			h, ok = segmentCircleHit(start, delta, o.Center, o.Radius+agentRadius)
		}
		if ok && h.T < best.T {
			best = h
			found = true
		}
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}

// SegmentBlocked reports whether the segment start->end crosses any inflated
// obstacle. It is the boolean line-of-sight query used by path smoothing.
func SegmentBlocked(obstacles []Obstacle, start, end cp.Vector, agentRadius float64) bool {
	_, hit := FirstHit(obstacles, start, end, agentRadius)
	return hit
}

// segmentRectHit runs the slab method against an AABB. The entry parameter on
// the later axis picks the hit face, and the normal on that axis opposes the
// ray direction.
func segmentRectHit(start, delta cp.Vector, bb cp.BB) (Hit, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	normal := cp.Vector{}

	if delta.X != 0 {
		invD := 1.0 / delta.X
		t1 := (bb.L - start.X) * invD
		t2 := (bb.R - start.X) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			if delta.X > 0 {
				normal = cp.Vector{X: -1}
			} else {
				normal = cp.Vector{X: 1}
			}
		}
		tFar = math.Min(tFar, t2)
	} else if start.X < bb.L || start.X > bb.R {
		return Hit{}, false
	}

	if delta.Y != 0 {
		invD := 1.0 / delta.Y
		t1 := (bb.B - start.Y) * invD
		t2 := (bb.T - start.Y) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			if delta.Y > 0 {
				normal = cp.Vector{Y: -1}
			} else {
				normal = cp.Vector{Y: 1}
			}
		}
		tFar = math.Min(tFar, t2)
	} else if start.Y < bb.B || start.Y > bb.T {
		return Hit{}, false
	}

	if tNear > tFar || tNear <= 0 || tNear >= 1 {
		return Hit{}, false
	}
	return Hit{
		Point:  start.Add(delta.Mult(tNear)),
		Normal: normal,
		T:      tNear,
	}, true
}

// segmentCircleHit solves the 2D ray-sphere quadratic against an inflated
// radius and keeps the smaller root inside (0,1).
func segmentCircleHit(start, delta, center cp.Vector, radius float64) (Hit, bool) {
	f := start.Sub(center)

	a := delta.Dot(delta)
	b := 2 * f.Dot(delta)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return Hit{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := (-b - sqrtDisc) / (2 * a)
	if t <= 0 || t >= 1 {
		t = (-b + sqrtDisc) / (2 * a)
	}
	if t <= 0 || t >= 1 {
		return Hit{}, false
	}

	point := start.Add(delta.Mult(t))
	normal := point.Sub(center)
	if normal.LengthSq() > 0 {
		normal = normal.Normalize()
	}
	return Hit{Point: point, Normal: normal, T: t}, true
}
