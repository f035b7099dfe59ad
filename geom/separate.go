package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Separate pushes p out of every inflated obstacle footprint it overlaps and
// clamps the result to bounds. Rectangles push along the axis of least
// penetration, circles push radially; margin keeps the corrected point a
// little clear of the surface so the next query doesn't re-trigger.
// Corrections compound: rectangles are applied first, then circles, so a point
// shoved out of one shape into another still separates. The second return
// value reports whether p moved.
func Separate(p cp.Vector, obstacles []Obstacle, agentRadius, margin float64, bounds cp.BB) (cp.Vector, bool) {
	out := p

	for _, o := range obstacles {
		if o.Kind != KindRect {
			continue
		}
		out = pushOutOfRect(out, o, agentRadius, margin)
	}
	for _, o := range obstacles {
		if o.Kind != KindCircle {
			continue
		}
		out = pushOutOfCircle(out, o, agentRadius, margin)
	}

	out = ClampToBB(out, bounds)
	return out, !out.Near(p, 1e-9)
}

func pushOutOfRect(p cp.Vector, o Obstacle, agentRadius, margin float64) cp.Vector {
	hw := o.Width/2 + agentRadius
	hh := o.Height/2 + agentRadius
	dx := p.X - o.Center.X
	dy := p.Y - o.Center.Y
	if math.Abs(dx) > hw || math.Abs(dy) > hh {
		return p
	}

	penX := hw - math.Abs(dx)
	penY := hh - math.Abs(dy)
	if penX <= penY {
		if dx >= 0 {
			p.X += penX + margin
		} else {
			p.X -= penX + margin
		}
	} else {
		if dy >= 0 {
			p.Y += penY + margin
		} else {
			p.Y -= penY + margin
		}
	}
	return p
}

func pushOutOfCircle(p cp.Vector, o Obstacle, agentRadius, margin float64) cp.Vector {
	r := o.Radius + agentRadius
	offset := p.Sub(o.Center)
	distSq := offset.LengthSq()
	if distSq > r*r {
		return p
	}
	if distSq == 0 {
		// dead center, pick an arbitrary push direction
		offset = cp.Vector{X: 1}
	} else {
		offset = offset.Normalize()
	}
	return o.Center.Add(offset.Mult(r + margin))
}
