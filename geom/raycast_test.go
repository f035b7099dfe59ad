package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestFirstHitRect(t *testing.T) {
	obstacles := []Obstacle{Rect(cp.Vector{X: 100, Y: 0}, 40, 40)}

	cases := []struct {
		name       string
		start, end cp.Vector
		radius     float64
		wantHit    bool
		wantPoint  cp.Vector
		wantNormal cp.Vector
	}{
		{
			name:       "dead_center",
			start:      cp.Vector{X: 0, Y: 0},
			end:        cp.Vector{X: 200, Y: 0},
			radius:     10,
			wantHit:    true,
			wantPoint:  cp.Vector{X: 70, Y: 0},
			wantNormal: cp.Vector{X: -1, Y: 0},
		},
		{
			name:       "from_right",
			start:      cp.Vector{X: 200, Y: 0},
			end:        cp.Vector{X: 0, Y: 0},
			radius:     10,
			wantHit:    true,
			wantPoint:  cp.Vector{X: 130, Y: 0},
			wantNormal: cp.Vector{X: 1, Y: 0},
		},
		{
			name:       "from_above",
			start:      cp.Vector{X: 100, Y: -100},
			end:        cp.Vector{X: 100, Y: 100},
			radius:     0,
			wantHit:    true,
			wantPoint:  cp.Vector{X: 100, Y: -20},
			wantNormal: cp.Vector{X: 0, Y: -1},
		},
		{
			name:    "stops_short",
			start:   cp.Vector{X: 0, Y: 0},
			end:     cp.Vector{X: 50, Y: 0},
			radius:  10,
			wantHit: false,
		},
		{
			name:    "parallel_miss",
			start:   cp.Vector{X: 0, Y: 60},
			end:     cp.Vector{X: 200, Y: 60},
			radius:  10,
			wantHit: false,
		},
		{
			name:    "ends_exactly_on_boundary",
			start:   cp.Vector{X: 0, Y: 0},
			end:     cp.Vector{X: 70, Y: 0},
			radius:  10,
			wantHit: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := FirstHit(obstacles, c.start, c.end, c.radius)
			if ok != c.wantHit {
				t.Fatalf("hit = %v, want %v", ok, c.wantHit)
			}
			if !ok {
				return
			}
			if !hit.Point.Near(c.wantPoint, 1e-9) {
				t.Fatalf("point = %v, want %v", hit.Point, c.wantPoint)
			}
			if !hit.Normal.Near(c.wantNormal, 1e-9) {
				t.Fatalf("normal = %v, want %v", hit.Normal, c.wantNormal)
			}
			if hit.T <= 0 || hit.T >= 1 {
				t.Fatalf("t = %v, want strictly inside (0,1)", hit.T)
			}
		})
	}
}

func TestFirstHitCircle(t *testing.T) {
	obstacles := []Obstacle{Circle(cp.Vector{X: 100, Y: 0}, 20)}

	hit, ok := FirstHit(obstacles, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 200, Y: 0}, 10)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !hit.Point.Near(cp.Vector{X: 70, Y: 0}, 1e-9) {
		t.Fatalf("point = %v, want (70, 0)", hit.Point)
	}
	if !hit.Normal.Near(cp.Vector{X: -1, Y: 0}, 1e-9) {
		t.Fatalf("normal = %v, want (-1, 0)", hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Fatalf("normal not unit length: %v", hit.Normal)
	}
}

func TestFirstHitPicksNearestObstacle(t *testing.T) {
	obstacles := []Obstacle{
		Rect(cp.Vector{X: 300, Y: 0}, 40, 40),
		Circle(cp.Vector{X: 100, Y: 0}, 20),
	}

	hit, ok := FirstHit(obstacles, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 400, Y: 0}, 0)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !hit.Point.Near(cp.Vector{X: 80, Y: 0}, 1e-9) {
		t.Fatalf("point = %v, want the circle hit at (80, 0)", hit.Point)
	}
}

func TestSegmentBlocked(t *testing.T) {
	obstacles := []Obstacle{Rect(cp.Vector{X: 100, Y: 100}, 60, 60)}

	if !SegmentBlocked(obstacles, cp.Vector{X: 0, Y: 100}, cp.Vector{X: 200, Y: 100}, 5) {
		t.Fatalf("segment through obstacle should be blocked")
	}
	if SegmentBlocked(obstacles, cp.Vector{X: 0, Y: 0}, cp.Vector{X: 200, Y: 0}, 5) {
		t.Fatalf("segment clear of obstacle should not be blocked")
	}
}
