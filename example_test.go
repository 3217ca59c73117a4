package growth_test

import (
	"fmt"

	"honnef.co/go/growth"
)

func Example() {
	// Generate a set of starting points. Any ordered sequence of at least
	// two points works; these could just as well be points drawn with the
	// mouse.
	points := growth.PointsOnCircle(growth.Pt(0, 0), 10, 10)

	g, err := growth.New(points, growth.DefaultParams())
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Len())

	// Advance the simulation. The curve densifies as it grows; draw it by
	// connecting consecutive points of g.Points() and closing the loop.
	for range 10 {
		g.Step()
	}
	fmt.Println(g.Len() > len(points))

	// Output:
	// 10
	// true
}

func ExampleNew_openCurve() {
	// A horizontal line treated as an open curve: the endpoints have a
	// single neighbor each and no wrap edge connects them.
	points := []growth.Point{growth.Pt(0, 0), growth.Pt(20, 0), growth.Pt(40, 0)}
	params := growth.DefaultParams()
	params.Open = true

	g, err := growth.New(points, params)
	if err != nil {
		panic(err)
	}
	g.Step()
	fmt.Println(g.Len() >= len(points))

	// Output:
	// true
}
