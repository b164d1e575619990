// Package vcalc approximates gradient, divergence and curl of fields sampled
// on a uniform rectilinear grid with second-order finite differences.
//
// 🚀 What is vcalc?
//
//	Given the components of a vector field as field.Field values (Fx, Fy
//	[, Fz]) of one common shape, vcalc combines the stencils of package
//	stencil into partial derivatives:
//	  • interior points  : 2-point central difference
//	  • first/last slice : 3-point forward/backward difference
//	so every output has the same shape as its inputs and truncation error
//	O(h²) everywhere, boundaries included.
//
// ✨ Operators:
//   - Gradient   : ∂F_i/∂x_i for each field i (one derivative per field)
//   - Divergence : Σ_i ∂F_i/∂x_i
//   - Curl       : scalar curl in 2-D, vector curl in 3-D
//   - Curl2D, Curl3D : typed entry points with fixed arity
//   - Partial    : ∂f/∂x_axis for any single field and axis
//
// ⚙️ Usage:
//
//	g, _ := grid.Cube(-2, 2, 101, 3)
//	mesh, _ := g.Meshgrid()
//	// ... build fx, fy, fz from mesh ...
//	div, err := vcalc.Divergence([]*field.Field{fx, fy, fz}, vcalc.WithGrid(g))
//	if errors.Is(err, vcalc.ErrInvalidInput) {
//	  // shapes, counts or spacing did not line up
//	}
//
// Spacing: no option means unit spacing, WithSpacing(h) applies h to every
// axis, WithAxisSpacing(h0, h1, ...) / WithGrid(g) give one step per axis.
//
// All operators are pure: inputs are read-only, outputs freshly allocated,
// and concurrent calls on shared inputs are safe.
package vcalc
