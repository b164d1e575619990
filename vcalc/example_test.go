package vcalc_test

import (
	"fmt"

	"github.com/katalvlaran/fdiff/field"
	"github.com/katalvlaran/fdiff/grid"
	"github.com/katalvlaran/fdiff/vcalc"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCurl2D
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A rigid rotation F = (-y, x) on a 5×5 grid over [-1, 1]².
//	Its curl is 2 everywhere; linear data is differentiated exactly,
//	boundaries included.
func ExampleCurl2D() {
	g, _ := grid.Cube(-1, 1, 5, 2)
	fx, _ := g.Sample(func(p []float64) float64 { return -p[1] })
	fy, _ := g.Sample(func(p []float64) float64 { return p[0] })

	c, err := vcalc.Curl2D(fx, fy, vcalc.WithGrid(g))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := c.At(0, 4)
	fmt.Printf("shape=%v curl(corner)=%.1f\n", c.Shape(), v)
	// Output:
	// shape=[5 5] curl(corner)=2.0
}

// ExampleDivergence computes ∇·(x, y, z) = 3 on a small cube.
func ExampleDivergence() {
	g, _ := grid.Cube(0, 1, 4, 3)
	mesh, _ := g.Meshgrid() // (x, y, z) coordinate fields

	div, err := vcalc.Divergence(mesh, vcalc.WithGrid(g))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := div.At(1, 2, 3)
	fmt.Printf("%.1f\n", v)
	// Output:
	// 3.0
}

// ExampleGradient shows the spacing-length check.
func ExampleGradient() {
	f, _ := field.New(3, 3)
	_, err := vcalc.Gradient([]*field.Field{f, f}, vcalc.WithAxisSpacing(0.1))
	fmt.Println(err)
	// Output:
	// vcalc.Gradient: len(h) = 1, ndim = 2: vcalc: spacing length must equal ndim (vcalc: invalid input)
}
