package dash

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/geom"
)

var glideBounds = cp.BB{L: -1000, B: -1000, R: 1000, T: 1000}

func TestBuildGlideClearLine(t *testing.T) {
	tun := DefaultTuning()
	start := cp.Vector{X: 0, Y: 0}
	target := cp.Vector{X: 120, Y: 0}

	segs, glided := buildGlide(start, target, nil, glideBounds, 10, 100, tun)
	if glided {
		t.Fatal("clear line reported as glide")
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if !segs[0].to.Near(target, 1e-9) {
		t.Fatalf("segment ends at %v, want %v", segs[0].to, target)
	}
	if want := 1200 * time.Millisecond; segs[0].duration != want {
		t.Fatalf("duration = %v, want %v", segs[0].duration, want)
	}
}

func TestBuildGlideHeadOnStopsShort(t *testing.T) {
	tun := DefaultTuning()
	obstacles := []geom.Obstacle{geom.Rect(cp.Vector{X: 100, Y: 0}, 40, 40)}

	segs, glided := buildGlide(cp.Vector{}, cp.Vector{X: 120, Y: 0}, obstacles, glideBounds, 10, 100, tun)
	if !glided {
		t.Fatal("head-on dash into wall not reported as glide")
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 (no tangential component)", len(segs))
	}
	// inflated face at x=70, backed off by the glide epsilon
	want := cp.Vector{X: 70 - tun.GlideEpsilon, Y: 0}
	if !segs[0].to.Near(want, 1e-9) {
		t.Fatalf("stops at %v, want %v", segs[0].to, want)
	}
}

func TestBuildGlideSlidesAlongWall(t *testing.T) {
	tun := DefaultTuning()
	obstacles := []geom.Obstacle{geom.Rect(cp.Vector{X: 100, Y: 0}, 40, 40)}
	start := cp.Vector{}
	target := cp.Vector{X: 200, Y: 40}

	segs, glided := buildGlide(start, target, obstacles, glideBounds, 10, 100, tun)
	if !glided {
		t.Fatal("oblique dash into wall not reported as glide")
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}

	stop := segs[0].to
	if math.Abs(stop.X-(70-tun.GlideEpsilon)) > 1e-9 {
		t.Fatalf("first segment stops at x=%v, want %v", stop.X, 70-tun.GlideEpsilon)
	}
	if !segs[1].from.Near(stop, 1e-9) {
		t.Fatalf("second segment starts at %v, want %v", segs[1].from, stop)
	}
	// slide is tangential to the hit face: pure +Y, no further approach in X
	if math.Abs(segs[1].to.X-stop.X) > 1e-9 {
		t.Fatalf("slide drifts in X: %v -> %v", segs[1].from, segs[1].to)
	}
	if segs[1].to.Y <= stop.Y {
		t.Fatalf("slide does not follow tangential component: %v -> %v", segs[1].from, segs[1].to)
	}

	// total travel matches the requested displacement length
	total := start.Distance(stop) + stop.Distance(segs[1].to)
	if want := target.Sub(start).Length(); math.Abs(total-want) > 1e-9 {
		t.Fatalf("travel distance = %v, want %v", total, want)
	}
}

func TestBuildGlideSlideClampedToBounds(t *testing.T) {
	tun := DefaultTuning()
	obstacles := []geom.Obstacle{geom.Rect(cp.Vector{X: 100, Y: 0}, 40, 40)}
	bounds := cp.BB{L: -10, B: -10, R: 300, T: 100}

	segs, _ := buildGlide(cp.Vector{}, cp.Vector{X: 200, Y: 40}, obstacles, bounds, 10, 100, tun)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[1].to.Y != bounds.T {
		t.Fatalf("slide end y = %v, want clamped to %v", segs[1].to.Y, bounds.T)
	}
}

func TestMakeSegmentDurationFloor(t *testing.T) {
	tun := DefaultTuning()
	seg := makeSegment(cp.Vector{}, cp.Vector{X: 1, Y: 0}, 1000, tun)
	if seg.duration != tun.MinSegmentDuration {
		t.Fatalf("duration = %v, want floor %v", seg.duration, tun.MinSegmentDuration)
	}
}

func TestSegmentAt(t *testing.T) {
	seg := segment{from: cp.Vector{X: 10, Y: 0}, to: cp.Vector{X: 30, Y: 0}, duration: time.Second}
	if got := seg.at(0); !got.Near(seg.from, 1e-9) {
		t.Fatalf("at(0) = %v, want %v", got, seg.from)
	}
	if got := seg.at(500 * time.Millisecond); !got.Near(cp.Vector{X: 20, Y: 0}, 1e-9) {
		t.Fatalf("at(half) = %v, want midpoint", got)
	}
	if got := seg.at(2 * time.Second); !got.Near(seg.to, 1e-9) {
		t.Fatalf("at(past end) = %v, want %v", got, seg.to)
	}
}
