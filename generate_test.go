package growth

import (
	"math"
	"testing"
)

func TestPointsOnCircle(t *testing.T) {
	center := Pt(3, -2)
	const radius = 10.0
	const n = 16

	pts := PointsOnCircle(center, radius, n)
	if len(pts) != n {
		t.Fatalf("got %d points, want %d", len(pts), n)
	}
	diff(t, Pt(center.X+radius, center.Y), pts[0], approx())

	for i, pt := range pts {
		if d := center.Distance(pt); math.Abs(d-radius) > 1e-9 {
			t.Errorf("point %d at distance %v from center, want %v", i, d, radius)
		}
	}

	// Even spacing: every consecutive chord has the same length as the wrap
	// chord.
	want := pts[n-1].Distance(pts[0])
	for i := range n - 1 {
		if got := pts[i].Distance(pts[i+1]); math.Abs(got-want) > 1e-9 {
			t.Errorf("chord %d has length %v, want %v", i, got, want)
		}
	}
}

func TestPointsOnCircleDegenerate(t *testing.T) {
	if pts := PointsOnCircle(Pt(0, 0), 10, 0); pts != nil {
		t.Errorf("got %v for zero points, want nil", pts)
	}
	if pts := PointsOnCircle(Pt(0, 0), 10, -3); pts != nil {
		t.Errorf("got %v for negative count, want nil", pts)
	}
	diff(t, []Point{Pt(1, 2)}, PointsOnCircle(Pt(1, 2), 0, 1))
}
