package vcalc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdiff/field"
	"github.com/katalvlaran/fdiff/grid"
	"github.com/katalvlaran/fdiff/vcalc"
)

// sample evaluates fn on g or fails the test.
func sample(t testing.TB, g *grid.Grid, fn func(x []float64) float64) *field.Field {
	t.Helper()
	f, err := g.Sample(fn)
	require.NoError(t, err)

	return f
}

// requireConst asserts every sample of f is within tol of want.
func requireConst(t *testing.T, f *field.Field, want, tol float64, msg string) {
	t.Helper()
	for i, v := range f.Data() {
		require.InDelta(t, want, v, tol, "%s: sample %d", msg, i)
	}
}

// TestGradient_LinearExact: stencils are exact on linear data, boundaries included.
func TestGradient_LinearExact(t *testing.T) {
	x, _ := grid.Linspace(-1, 1, 9)
	y, _ := grid.Linspace(0, 3, 7)
	g, err := grid.New(x, y)
	require.NoError(t, err)

	fx := sample(t, g, func(p []float64) float64 { return 3*p[0] - 2*p[1] + 1 })
	fy := sample(t, g, func(p []float64) float64 { return 0.5*p[0] + 4*p[1] })

	grad, err := vcalc.Gradient([]*field.Field{fx, fy}, vcalc.WithGrid(g))
	require.NoError(t, err)
	require.Len(t, grad, 2)
	assert.Equal(t, fx.Shape(), grad[0].Shape())
	requireConst(t, grad[0], 3, 1e-12, "dFx/dx")
	requireConst(t, grad[1], 4, 1e-12, "dFy/dy")
}

// TestGradient_BoundaryStencils checks the first and last samples on x²
// against hand-computed one-sided values.
func TestGradient_BoundaryStencils(t *testing.T) {
	f, err := field.FromSlice([]float64{0, 1, 4, 9, 16}, 5)
	require.NoError(t, err)

	grad, err := vcalc.Gradient([]*field.Field{f})
	require.NoError(t, err)
	// x² is differentiated exactly by all three stencils: 2x at x = 0..4.
	assert.InDeltaSlice(t, []float64{0, 2, 4, 6, 8}, grad[0].Data(), 1e-12)
}

// TestGradient_MinimumExtent: three samples along an axis is the smallest legal size.
func TestGradient_MinimumExtent(t *testing.T) {
	f, err := field.FromSlice([]float64{1, 2, 4}, 3)
	require.NoError(t, err)
	grad, err := vcalc.Gradient([]*field.Field{f}, vcalc.WithSpacing(0.5))
	require.NoError(t, err)
	// forward: (-3+8-4)/1 = 1; central: (4-1)/1 = 3; backward: (12-8+1)/1 = 5
	assert.InDeltaSlice(t, []float64{1, 3, 5}, grad[0].Data(), 1e-12)

	short, err := field.FromSlice([]float64{1, 2}, 2)
	require.NoError(t, err)
	_, err = vcalc.Gradient([]*field.Field{short})
	assert.ErrorIs(t, err, vcalc.ErrInvalidInput)
	assert.ErrorIs(t, err, vcalc.ErrTooFewSamples)
}

// TestGradient_Validation covers every precondition in the shared check.
func TestGradient_Validation(t *testing.T) {
	mk := func(shape ...int) *field.Field {
		f, err := field.New(shape...)
		require.NoError(t, err)
		return f
	}
	f33 := mk(3, 3)
	f333 := mk(3, 3, 3)

	cases := []struct {
		name   string
		fields []*field.Field
		opts   []vcalc.Option
		want   error
	}{
		{"no fields", nil, nil, vcalc.ErrNoFields},
		{"nil field", []*field.Field{f33, nil}, nil, vcalc.ErrNilField},
		{"count vs ndim", []*field.Field{f33, f33, f33}, nil, vcalc.ErrFieldCount},
		{"ndim mismatch", []*field.Field{f333, f333, f33}, nil, vcalc.ErrNdimMismatch},
		{"shape mismatch", []*field.Field{f33, mk(3, 4)}, nil, vcalc.ErrShapeMismatch},
		{"spacing length", []*field.Field{f33, f33}, []vcalc.Option{vcalc.WithAxisSpacing(1, 2, 3)}, vcalc.ErrSpacingLength},
		{"empty spacing", []*field.Field{f33, f33}, []vcalc.Option{vcalc.WithAxisSpacing()}, vcalc.ErrSpacingLength},
		{"too few samples", []*field.Field{mk(3, 2), mk(3, 2)}, nil, vcalc.ErrTooFewSamples},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vcalc.Gradient(tc.fields, tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, vcalc.ErrInvalidInput)
			assert.ErrorIs(t, err, tc.want)

			_, err = vcalc.Divergence(tc.fields, tc.opts...)
			assert.ErrorIs(t, err, tc.want, "Divergence shares the check")
			_, err = vcalc.Curl(tc.fields, tc.opts...)
			assert.ErrorIs(t, err, vcalc.ErrInvalidInput, "Curl shares the check")
		})
	}
}

// TestGradient_InputsUntouched verifies operators never write to inputs.
func TestGradient_InputsUntouched(t *testing.T) {
	g, err := grid.Cube(0, 1, 5, 2)
	require.NoError(t, err)
	fx := sample(t, g, func(p []float64) float64 { return math.Sin(p[0] * p[1]) })
	fy := sample(t, g, func(p []float64) float64 { return math.Exp(p[0]) })
	bx, by := fx.Clone(), fy.Clone()

	_, err = vcalc.Gradient([]*field.Field{fx, fy})
	require.NoError(t, err)
	_, err = vcalc.Curl([]*field.Field{fx, fy})
	require.NoError(t, err)

	assert.Equal(t, bx.Data(), fx.Data())
	assert.Equal(t, by.Data(), fy.Data())
}

// TestDivergence_EqualsSumOfGradient checks the identity by construction.
func TestDivergence_EqualsSumOfGradient(t *testing.T) {
	x, _ := grid.Linspace(0, 2, 11)
	y, _ := grid.Linspace(-1, 1, 13)
	z, _ := grid.Linspace(0, 1, 6)
	g, err := grid.New(x, y, z)
	require.NoError(t, err)
	fs := []*field.Field{
		sample(t, g, func(p []float64) float64 { return math.Cos(p[0]) * p[1] }),
		sample(t, g, func(p []float64) float64 { return p[1] * p[1] * p[2] }),
		sample(t, g, func(p []float64) float64 { return math.Exp(-p[2]) }),
	}

	grad, err := vcalc.Gradient(fs, vcalc.WithGrid(g))
	require.NoError(t, err)
	sum, err := field.Sum(grad...)
	require.NoError(t, err)
	div, err := vcalc.Divergence(fs, vcalc.WithGrid(g))
	require.NoError(t, err)

	assert.Equal(t, sum.Data(), div.Data())
}

// TestDivergence_EndToEnd reproduces the reference scenario:
// x=y=z=linspace(-2,2,101), F = (cos(x+2y), sin(x-2y), z·x),
// ∇·F = -sin(x+2y) - 2cos(x-2y) + x.
func TestDivergence_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("101³ grid; skipped in -short mode")
	}
	g, err := grid.Cube(-2, 2, 101, 3)
	require.NoError(t, err)
	h := g.Spacing()[0]
	require.InDelta(t, 0.04, h, 1e-15)

	fs := []*field.Field{
		sample(t, g, func(p []float64) float64 { return math.Cos(p[0] + 2*p[1]) }),
		sample(t, g, func(p []float64) float64 { return math.Sin(p[0] - 2*p[1]) }),
		sample(t, g, func(p []float64) float64 { return p[2] * p[0] }),
	}
	div, err := vcalc.Divergence(fs, vcalc.WithSpacing(h))
	require.NoError(t, err)
	exact := sample(t, g, func(p []float64) float64 {
		return -math.Sin(p[0]+2*p[1]) - 2*math.Cos(p[0]-2*p[1]) + p[0]
	})

	// interior: central truncation ≤ (h²/6)·(1 + 8)
	worst := 0.0
	require.NoError(t, g.Interior(1, func(idx []int, _ []float64) {
		got, _ := div.At(idx...)
		want, _ := exact.At(idx...)
		worst = math.Max(worst, math.Abs(got-want))
	}))
	assert.Less(t, worst, 3e-3, "interior max error")
	assert.Greater(t, worst, 0.0)

	// everywhere, one-sided boundaries included: ≤ (h²/3)·(1 + 8)
	all, err := field.MaxAbsDiff(div, exact)
	require.NoError(t, err)
	assert.Less(t, all, 1e-2, "max error incl. boundaries")
}

// TestPartial_AnyAxis differentiates one field along each axis.
func TestPartial_AnyAxis(t *testing.T) {
	g, err := grid.Cube(0, 1, 5, 2)
	require.NoError(t, err)
	f := sample(t, g, func(p []float64) float64 { return 2*p[0] - 7*p[1] })

	dx, err := vcalc.Partial(f, 0, vcalc.WithGrid(g))
	require.NoError(t, err)
	requireConst(t, dx, 2, 1e-12, "df/dx")
	dy, err := vcalc.Partial(f, 1, vcalc.WithGrid(g))
	require.NoError(t, err)
	requireConst(t, dy, -7, 1e-12, "df/dy")

	_, err = vcalc.Partial(f, 2)
	assert.ErrorIs(t, err, vcalc.ErrAxisOutOfRange)
	assert.ErrorIs(t, err, vcalc.ErrInvalidInput)
	_, err = vcalc.Partial(nil, 0)
	assert.ErrorIs(t, err, vcalc.ErrNilField)
	_, err = vcalc.Partial(f, 0, vcalc.WithAxisSpacing(1))
	assert.ErrorIs(t, err, vcalc.ErrSpacingLength)

	thin, err := field.New(5, 2)
	require.NoError(t, err)
	_, err = vcalc.Partial(thin, 1)
	assert.ErrorIs(t, err, vcalc.ErrTooFewSamples)
	_, err = vcalc.Partial(thin, 0)
	assert.NoError(t, err, "only the differenced axis needs 3 samples")
}

// TestSpacing_Options checks the uniform, per-axis and default steps.
func TestSpacing_Options(t *testing.T) {
	f, err := field.FromSlice([]float64{0, 1, 2, 3}, 4)
	require.NoError(t, err)
	fs := []*field.Field{f}

	grad, err := vcalc.Gradient(fs)
	require.NoError(t, err)
	requireConst(t, grad[0], 1, 1e-15, "default spacing")

	grad, err = vcalc.Gradient(fs, vcalc.WithSpacing(0.25))
	require.NoError(t, err)
	requireConst(t, grad[0], 4, 1e-15, "uniform spacing")

	grad, err = vcalc.Gradient(fs, vcalc.WithSpacing(0.25), vcalc.WithAxisSpacing(2))
	require.NoError(t, err)
	requireConst(t, grad[0], 0.5, 1e-15, "last option wins")
}

// TestSpacing_PanicsOnNonsense: non-positive or non-finite steps are programmer errors.
func TestSpacing_PanicsOnNonsense(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.PanicsWithValue(t, "vcalc: WithSpacing: h must be finite and > 0", func() { vcalc.WithSpacing(h) })
		assert.PanicsWithValue(t, "vcalc: WithAxisSpacing: every h must be finite and > 0", func() { vcalc.WithAxisSpacing(1, h) })
	}
	assert.PanicsWithValue(t, "vcalc: WithGrid: grid is nil", func() { vcalc.WithGrid(nil) })
}
