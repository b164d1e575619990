// Package fdiff is a small finite-difference toolkit for sampled fields:
// gradients, divergence and curl of vector fields on uniform n-d grids, plus
// 1-D differentiation and quadrature helpers.
//
// 🚀 What is fdiff?
//
//	A pure Go library built on gonum and ctessum/sparse that brings together:
//		• Fields: n-d row-major float64 arrays with axis slicing
//		• Grids: uniform axes, meshgrid, sampling of analytic functions
//		• Stencils: second-order forward, backward and central differences
//		• Vector calculus: gradient, divergence, partial, curl (2-D and 3-D)
//		• 1-D differentiation: seven formulas, tabulated or analytic input
//		• Quadrature: composite trapezoidal rule
//
// ✨ Guarantees
//
//   - Operators never mutate inputs; every call returns fresh fields
//   - Interior points use the central stencil, edges the one-sided ones,
//     so output shape equals input shape and accuracy is O(h²) throughout
//   - Bad input is an error (errors.Is against package sentinels),
//     bad option values panic at construction
//
// Layout:
//
//	field/      : Field type, element-wise ops, validators
//	grid/       : uniform grids, Linspace, Meshgrid, Sample, Interior
//	stencil/    : the three 3-point stencils, n-d and 1-D
//	vcalc/      : Gradient, Divergence, Partial, Curl, Curl2D, Curl3D
//	numdiff/    : Discrete and Continuous differentiation by method key
//	quadrature/ : Trapezoid, Samples
//	examples/   : runnable demo
//
// Quick example:
//
//	g, _ := grid.Cube(-2, 2, 101, 3)
//	fx, _ := g.Sample(func(p []float64) float64 { return math.Cos(p[0] + 2*p[1]) })
//	fy, _ := g.Sample(func(p []float64) float64 { return math.Sin(p[0] - 2*p[1]) })
//	fz, _ := g.Sample(func(p []float64) float64 { return p[2] * p[0] })
//	div, err := vcalc.Divergence([]*field.Field{fx, fy, fz}, vcalc.WithGrid(g))
//
//	go get github.com/katalvlaran/fdiff
package fdiff
