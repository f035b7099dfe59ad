package geom

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func testBounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: 800, T: 600}
}

func TestSeparateFromRect(t *testing.T) {
	obstacles := []Obstacle{Rect(cp.Vector{X: 400, Y: 300}, 100, 100)}

	cases := []struct {
		name string
		p    cp.Vector
		want cp.Vector
	}{
		// half extents inflated to 60, margin 1
		{"push_right", cp.Vector{X: 445, Y: 300}, cp.Vector{X: 461, Y: 300}},
		{"push_left", cp.Vector{X: 355, Y: 300}, cp.Vector{X: 339, Y: 300}},
		{"push_down", cp.Vector{X: 400, Y: 352}, cp.Vector{X: 400, Y: 361}},
		{"push_up", cp.Vector{X: 400, Y: 248}, cp.Vector{X: 400, Y: 239}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, moved := Separate(c.p, obstacles, 10, 1, testBounds())
			if !moved {
				t.Fatalf("expected point to move")
			}
			if !got.Near(c.want, 1e-9) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for _, o := range obstacles {
				if o.ContainsInflated(got, 10) {
					t.Fatalf("separated point %v still inside obstacle", got)
				}
			}
		})
	}
}

func TestSeparateFromCircle(t *testing.T) {
	obstacles := []Obstacle{Circle(cp.Vector{X: 200, Y: 200}, 30)}

	got, moved := Separate(cp.Vector{X: 210, Y: 200}, obstacles, 10, 1, testBounds())
	if !moved {
		t.Fatalf("expected point to move")
	}
	if !got.Near(cp.Vector{X: 241, Y: 200}, 1e-9) {
		t.Fatalf("got %v, want (241, 200)", got)
	}

	// dead center still resolves to a point outside the footprint
	got, moved = Separate(cp.Vector{X: 200, Y: 200}, obstacles, 10, 1, testBounds())
	if !moved {
		t.Fatalf("expected dead-center point to move")
	}
	if obstacles[0].ContainsInflated(got, 10) {
		t.Fatalf("dead-center point %v still inside obstacle", got)
	}
}

func TestSeparateNoOverlap(t *testing.T) {
	obstacles := []Obstacle{
		Rect(cp.Vector{X: 400, Y: 300}, 100, 100),
		Circle(cp.Vector{X: 200, Y: 200}, 30),
	}

	p := cp.Vector{X: 100, Y: 500}
	got, moved := Separate(p, obstacles, 10, 1, testBounds())
	if moved {
		t.Fatalf("free point should not move, got %v", got)
	}
}

func TestSeparateClampsToBounds(t *testing.T) {
	got, moved := Separate(cp.Vector{X: -50, Y: 700}, nil, 10, 1, testBounds())
	if !moved {
		t.Fatalf("out-of-bounds point should move")
	}
	if !got.Near(cp.Vector{X: 0, Y: 600}, 1e-9) {
		t.Fatalf("got %v, want (0, 600)", got)
	}
}
