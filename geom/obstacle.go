package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kind selects the collision shape of an obstacle.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
)

// Obstacle is a static collider in the room. Rectangles are axis-aligned and
// described by their center and full extents; circles by center and radius.
// All collision tests fold the agent radius into the shape (Minkowski
// expansion), so the moving agent is always treated as a point.
type Obstacle struct {
	Kind   Kind
	Center cp.Vector
	Width  float64
	Height float64
	Radius float64
}

func Rect(center cp.Vector, width, height float64) Obstacle {
	return Obstacle{Kind: KindRect, Center: center, Width: width, Height: height}
}

func Circle(center cp.Vector, radius float64) Obstacle {
	return Obstacle{Kind: KindCircle, Center: center, Radius: radius}
}

// ContainsInflated reports whether p lies inside the obstacle footprint
// expanded by agentRadius.
func (o Obstacle) ContainsInflated(p cp.Vector, agentRadius float64) bool {
	switch o.Kind {
	case KindRect:
		hw := o.Width/2 + agentRadius
		hh := o.Height/2 + agentRadius
		return math.Abs(p.X-o.Center.X) <= hw && math.Abs(p.Y-o.Center.Y) <= hh
	case KindCircle:
		r := o.Radius + agentRadius
		return p.DistanceSq(o.Center) <= r*r
	}
	return false
}

// InflatedBB returns the axis-aligned bounding box of the inflated footprint.
func (o Obstacle) InflatedBB(agentRadius float64) cp.BB {
	switch o.Kind {
	case KindRect:
		hw := o.Width/2 + agentRadius
		hh := o.Height/2 + agentRadius
		return cp.BB{L: o.Center.X - hw, B: o.Center.Y - hh, R: o.Center.X + hw, T: o.Center.Y + hh}
	default:
		r := o.Radius + agentRadius
		return cp.BB{L: o.Center.X - r, B: o.Center.Y - r, R: o.Center.X + r, T: o.Center.Y + r}
	}
}

// ClampToBB clamps p into bounds. The cp.BB convention here matches screen
// coordinates: B is the minimum Y and T the maximum Y.
func ClampToBB(p cp.Vector, bounds cp.BB) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(p.X, bounds.L, bounds.R),
		Y: cp.Clamp(p.Y, bounds.B, bounds.T),
	}
}
