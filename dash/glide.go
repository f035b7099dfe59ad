package dash

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
)

// glideTangentMin is the tangential speed below which a hit counts as
// head-on and the glide degenerates to a stop at the wall.
const glideTangentMin = 1e-3

// segment is one leg of a glide or tween trajectory, played back by linear
// interpolation over its duration.
type segment struct {
	from     cp.Vector
	to       cp.Vector
	duration time.Duration
}

func (s segment) at(elapsed time.Duration) cp.Vector {
	if s.duration <= 0 {
		return s.to
	}
	t := float64(elapsed) / float64(s.duration)
	if t >= 1 {
		return s.to
	}
	return s.from.Add(s.to.Sub(s.from).Mult(t))
}

// buildGlide turns a straight dash request into segments. With a clear line
// it is a single tween segment (glided=false). On a hit the requested
// displacement is split into its normal component (dropped) and tangential
// component (kept): segment one runs to just short of the hit, segment two
// slides along the surface for the remaining travel distance, clamped to
// room bounds. A near head-on hit produces only segment one.
func buildGlide(start, target cp.Vector, obstacles []geom.Obstacle, bounds cp.BB, agentRadius, speed float64, tun Tuning) (segs []segment, glided bool) {
	hit, ok := geom.FirstHit(obstacles, start, target, agentRadius)
	if !ok {
		return []segment{makeSegment(start, target, speed, tun)}, false
	}

	stop := hit.Point.Add(hit.Normal.Mult(tun.GlideEpsilon))
	segs = []segment{makeSegment(start, stop, speed, tun)}

	delta := target.Sub(start)
	tangent := delta.Sub(hit.Normal.Mult(delta.Dot(hit.Normal)))
	if tangent.Length() < glideTangentMin {
		return segs, true
	}

	remaining := delta.Length() - start.Distance(stop)
	if remaining <= 0 {
		return segs, true
	}

	end := geom.ClampToBB(stop.Add(tangent.Normalize().Mult(remaining)), bounds)
	segs = append(segs, makeSegment(stop, end, speed, tun))
	return segs, true
}

func makeSegment(from, to cp.Vector, speed float64, tun Tuning) segment {
	dur := tun.MinSegmentDuration
	if speed > 0 {
		if d := time.Duration(from.Distance(to) / speed * float64(time.Second)); d > dur {
			dur = d
		}
	}
	return segment{from: from, to: to, duration: dur}
}
