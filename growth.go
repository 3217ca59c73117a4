package growth

import (
	"fmt"
	"math"
	"slices"
)

// Params are the tuning parameters of a simulation. They are validated by
// [New] and immutable for the lifetime of a [Growth].
type Params struct {
	// MaxForce caps the magnitude of the net force on a point. Must be
	// finite and non-negative.
	MaxForce float64
	// MaxSpeed caps the distance a point moves in one step. Must be finite
	// and non-negative.
	MaxSpeed float64
	// DesiredSeparation is the radius of the neighbor query that feeds the
	// separation force. Must be finite and non-negative.
	DesiredSeparation float64
	// CohesionWeight scales the spring force pulling a point toward its
	// curve neighbors. Must be finite and non-negative.
	CohesionWeight float64
	// AlignmentWeight scales the optional tangent-smoothing force. The zero
	// value disables it, matching the two-force model of the original
	// algorithm. Must be finite and non-negative.
	AlignmentWeight float64
	// MaxEdgeLength is the subdivision threshold: any edge longer than this
	// is split at its midpoint at the end of a step. Must be finite and
	// positive.
	MaxEdgeLength float64
	// Falloff weighs separation neighbors by distance. nil means
	// [InverseDistance].
	Falloff FalloffFunc
	// Open marks the curve as an open polyline. The zero value is a closed
	// loop, with the last point connected back to the first.
	Open bool
}

// DefaultParams returns a parameter combination that is known to produce
// pleasing growth from small starting shapes, taken from the original
// implementation.
func DefaultParams() Params {
	return Params{
		MaxForce:          1.5,
		MaxSpeed:          1.0,
		DesiredSeparation: 14.0,
		CohesionWeight:    1.1,
		MaxEdgeLength:     5.0,
	}
}

func (params Params) falloff() FalloffFunc {
	if params.Falloff == nil {
		return InverseDistance
	}
	return params.Falloff
}

func (params Params) validate() error {
	scalars := []struct {
		name string
		v    float64
	}{
		{"MaxForce", params.MaxForce},
		{"MaxSpeed", params.MaxSpeed},
		{"DesiredSeparation", params.DesiredSeparation},
		{"CohesionWeight", params.CohesionWeight},
		{"AlignmentWeight", params.AlignmentWeight},
		{"MaxEdgeLength", params.MaxEdgeLength},
	}
	for _, s := range scalars {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return fmt.Errorf("growth: %s must be finite, got %v", s.name, s.v)
		}
		if s.v < 0 {
			return fmt.Errorf("growth: %s must not be negative, got %v", s.name, s.v)
		}
	}
	if params.MaxEdgeLength == 0 {
		return fmt.Errorf("growth: MaxEdgeLength must be positive")
	}
	return nil
}

// Growth is a differential growth simulation. It owns an ordered sequence of
// points forming an open or closed curve and advances it one discrete time
// step per call to [Growth.Step].
//
// A Growth is not safe for concurrent use.
type Growth struct {
	pts    []Point
	params Params
	steps  int
}

// New returns a simulation of the curve described by pts, which must contain
// at least two points. The slice is copied; the caller keeps ownership of
// its argument. New reports an error if the curve is too short or any
// parameter violates its constraint, and such errors are the only ones the
// simulation can produce: once construction succeeds, stepping never fails.
func New(pts []Point, params Params) (*Growth, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("growth: need at least 2 starting points, got %d", len(pts))
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Growth{
		pts:    slices.Clone(pts),
		params: params,
	}, nil
}

// Step advances the simulation by one unit of time: it rebuilds the spatial
// index over the current positions, computes the net force on every point
// from the pre-step snapshot, moves every point by its force clamped to
// MaxSpeed, and finally splits every edge that exceeds MaxEdgeLength at its
// midpoint. No point moves farther than MaxSpeed in a single step, and the
// point count never decreases.
func (g *Growth) Step() {
	ix := BuildIndex(g.pts)

	forces := make([]Vec2, len(g.pts))
	for i := range g.pts {
		forces[i] = netForce(g.pts, ix, i, g.params)
	}

	moved := make([]Point, len(g.pts))
	for i, pt := range g.pts {
		moved[i] = pt.Translate(forces[i].Clamp(g.params.MaxSpeed))
	}

	g.pts = subdivide(moved, g.params.MaxEdgeLength, g.params.Open)
	g.steps++
}

// Points returns a copy of the current point sequence. Consecutive points
// are connected by curve edges; for a closed curve the last point connects
// back to the first.
func (g *Growth) Points() []Point {
	return slices.Clone(g.pts)
}

// Len returns the current number of points.
func (g *Growth) Len() int {
	return len(g.pts)
}

// Steps returns the number of completed calls to [Growth.Step].
func (g *Growth) Steps() int {
	return g.steps
}

// Params returns the simulation's parameters.
func (g *Growth) Params() Params {
	return g.params
}

// adjacent returns the curve indices neighboring index i on a curve of n
// points. A neighbor that doesn't exist (past either end of an open curve)
// is -1. Adjacency is purely positional: i connects to i-1 and i+1, with
// wraparound when the curve is closed.
func adjacent(i, n int, open bool) (prev, next int) {
	prev = i - 1
	if prev < 0 {
		if open {
			prev = -1
		} else {
			prev = n - 1
		}
	}
	next = i + 1
	if next == n {
		if open {
			next = -1
		} else {
			next = 0
		}
	}
	return prev, next
}

// subdivide walks every edge of the curve, including the wrap edge when
// closed, and inserts the edge's midpoint after its first endpoint if the
// edge is longer than maxEdge. Edge lengths are measured against the input
// snapshot, so an edge is split at most once per pass no matter how long it
// is; an over-length sub-edge splits on the next step. Zero-length edges are
// never split.
func subdivide(pts []Point, maxEdge float64, open bool) []Point {
	out := make([]Point, 0, len(pts)+len(pts)/4)
	for i, pt := range pts {
		out = append(out, pt)
		j := i + 1
		if j == len(pts) {
			if open {
				break
			}
			j = 0
		}
		if pt.Distance(pts[j]) > maxEdge {
			out = append(out, pt.Midpoint(pts[j]))
		}
	}
	return out
}
