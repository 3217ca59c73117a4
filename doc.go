// Package growth implements the differential growth algorithm: an iterative
// simulation that evolves a polyline of 2D points toward organic,
// space-filling shapes.
//
// # Differential growth
//
// This package is a manual, idiomatic Go port of the [differential-growth]
// Rust crate. Each point of the curve is pushed away from nearby points
// (separation), pulled toward the midpoint of its two curve neighbors
// (cohesion), and optionally steered toward its neighbors' average tangent
// (alignment). After every point has moved, edges that have stretched beyond a
// maximum length are split at their midpoint, so the curve gains resolution
// exactly where it grows.
//
// A basic familiarity with the algorithm helps with choosing parameters:
//
//   - https://inconvergent.net/generative/differential-line/
//   - https://inconvergent.net/2016/shepherding-random-growth/
//
// # Usage
//
// Supply a starting sequence of at least two points and a [Params] value, then
// repeatedly advance the simulation and read back the result:
//
//	points := growth.PointsOnCircle(growth.Pt(0, 0), 10, 10)
//	g, err := growth.New(points, growth.DefaultParams())
//	if err != nil {
//		// invalid starting points or parameters
//	}
//	for range 500 {
//		g.Step()
//	}
//	// Draw a line between consecutive points of g.Points(), and close the
//	// loop between the last point and the first.
//
// The choice of parameters matters a great deal; values that are too large or
// too small, or combined badly, can make the algorithm look like it doesn't
// work at all. [DefaultParams] returns a combination that is known to behave
// well.
//
// Point count is strictly non-decreasing across steps and has no built-in
// upper bound; the caller controls resource growth by deciding how many steps
// to run. Points carry no velocity between steps. Every step recomputes
// movement from forces alone, so the system has no momentum. Adding a damped
// per-point velocity would be a natural extension but is not part of the
// minimal model.
//
// See the examples directory for a program that renders the growing curve
// with [Ebitengine].
//
// [differential-growth]: https://crates.io/crates/differential-growth
// [Ebitengine]: https://ebitengine.org/
package growth
