package growth

// A FalloffFunc weighs a separation neighbor by its distance. It is only
// called with distances in (0, DesiredSeparation], never with zero.
type FalloffFunc func(dist float64) float64

// InverseDistance weighs neighbors by 1/d, so closer neighbors push linearly
// harder. This is the falloff the original algorithm uses and the default
// when [Params.Falloff] is nil.
func InverseDistance(dist float64) float64 {
	return 1 / dist
}

// InverseSquare weighs neighbors by 1/d², emphasizing very close neighbors
// more strongly than [InverseDistance].
func InverseSquare(dist float64) float64 {
	return 1 / (dist * dist)
}

// netForce computes the force acting on point i: separation from nearby
// points, cohesion toward its curve neighbors, and optionally alignment with
// their tangents. All three read only the pre-step snapshot pts, so the
// result is independent of the order in which points are processed. The
// magnitude of the result never exceeds MaxForce.
func netForce(pts []Point, ix *SpatialIndex, i int, params Params) Vec2 {
	force := separation(pts, ix, i, params)
	force = force.Add(cohesion(pts, i, params))
	if params.AlignmentWeight != 0 {
		force = force.Add(alignment(pts, i, params))
	}
	return force.Clamp(params.MaxForce)
}

// separation accumulates, for every point within DesiredSeparation of point
// i, a unit vector pointing away from it, weighted by the falloff function.
// The point's curve-adjacent neighbors are excluded; keeping them at
// distance is cohesion's job, and repelling them would cancel out the spring
// attraction along the curve. The accumulated vector is averaged over the
// neighbor count, scaled to MaxSpeed and clamped to MaxForce. No neighbors
// means no force.
func separation(pts []Point, ix *SpatialIndex, i int, params Params) Vec2 {
	prev, next := adjacent(i, len(pts), params.Open)
	falloff := params.falloff()

	var sum Vec2
	count := 0
	for j, d := range ix.Within(pts[i], params.DesiredSeparation) {
		if j == prev || j == next {
			continue
		}
		away := pts[i].Sub(pts[j]).Normalize()
		sum = sum.Add(away.Mul(falloff(d)))
		count++
	}
	if count == 0 {
		return Vec2{}
	}
	sum = sum.Div(float64(count))
	if sum.Hypot2() == 0 {
		// Opposing neighbors canceled out exactly.
		return Vec2{}
	}
	return sum.WithHypot(params.MaxSpeed).Clamp(params.MaxForce)
}

// cohesion steers point i toward the midpoint of its two curve neighbors,
// or toward its single neighbor at the endpoint of an open curve. This is
// the spring that keeps the curve connected and roughly evenly spaced.
func cohesion(pts []Point, i int, params Params) Vec2 {
	prev, next := adjacent(i, len(pts), params.Open)
	var target Point
	switch {
	case prev >= 0 && next >= 0:
		target = pts[prev].Midpoint(pts[next])
	case prev >= 0:
		target = pts[prev]
	case next >= 0:
		target = pts[next]
	default:
		return Vec2{}
	}
	return seek(pts[i], target, params).Mul(params.CohesionWeight)
}

// seek returns a steering force toward target: the desired displacement
// scaled to MaxSpeed, clamped to MaxForce. A zero desired displacement
// yields a zero force.
func seek(from, target Point, params Params) Vec2 {
	desired := target.Sub(from)
	if desired.Hypot2() == 0 {
		return Vec2{}
	}
	return desired.WithHypot(params.MaxSpeed).Clamp(params.MaxForce)
}

// alignment steers point i's local tangent toward the average tangent of its
// curve neighbors, smoothing sharp kinks. Endpoints of an open curve have no
// well-defined kink and get no force.
func alignment(pts []Point, i int, params Params) Vec2 {
	prev, next := adjacent(i, len(pts), params.Open)
	if prev < 0 || next < 0 {
		return Vec2{}
	}
	avg := tangent(pts, prev, params.Open).
		Add(tangent(pts, next, params.Open)).
		Div(2)
	steer := avg.Sub(tangent(pts, i, params.Open))
	if steer.Hypot2() == 0 {
		return Vec2{}
	}
	return steer.WithHypot(params.MaxSpeed).
		Clamp(params.MaxForce).
		Mul(params.AlignmentWeight)
}

// tangent returns the unit tangent of the curve at point i, estimated from
// the chord between its neighbors, or from the single incident edge at the
// endpoint of an open curve. Degenerate chords yield a zero vector.
func tangent(pts []Point, i int, open bool) Vec2 {
	prev, next := adjacent(i, len(pts), open)
	var a, b Point
	switch {
	case prev >= 0 && next >= 0:
		a, b = pts[prev], pts[next]
	case next >= 0:
		a, b = pts[i], pts[next]
	case prev >= 0:
		a, b = pts[prev], pts[i]
	default:
		return Vec2{}
	}
	chord := b.Sub(a)
	if chord.Hypot2() == 0 {
		return Vec2{}
	}
	return chord.Normalize()
}
