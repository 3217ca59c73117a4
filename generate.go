package growth

import "math"

// PointsOnCircle returns n points evenly spaced on the circle with the given
// center and radius, in counter-clockwise order starting at angle 0. The
// result is a convenient starting curve for a simulation; n of 0 or less
// yields nil.
func PointsOnCircle(center Point, radius float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Pt(center.X+radius*cos, center.Y+radius*sin)
	}
	return pts
}
