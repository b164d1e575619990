// Package quadrature integrates sampled or analytic 1-D functions with the
// composite trapezoidal rule.
//
//	area, err := quadrature.Trapezoid(math.Sin, 0, math.Pi, 0) // ≈ 2
package quadrature

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// DefaultIntervals is used by Trapezoid when n == 0.
const DefaultIntervals = 1000

var (
	// ErrBadIntervals indicates a negative interval count.
	ErrBadIntervals = errors.New("quadrature: interval count must be >= 0")

	// ErrNonFinite indicates a NaN or infinite bound.
	ErrNonFinite = errors.New("quadrature: bounds must be finite")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quadrature: function is nil")

	// ErrBadSamples indicates x/y of different lengths, fewer than two
	// points, or x not sorted ascending.
	ErrBadSamples = errors.New("quadrature: need >= 2 sorted samples of equal length")
)

// Trapezoid integrates f over [a, b] using n uniform intervals (n+1 points).
// b < a yields the negated integral over [b, a].
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if n < 0 {
		return 0, fmt.Errorf("quadrature: n=%d: %w", n, ErrBadIntervals)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("quadrature: [%g, %g]: %w", a, b, ErrNonFinite)
	}
	if n == 0 {
		n = DefaultIntervals
	}

	sign := 1.0
	if b < a {
		a, b, sign = b, a, -1
	}
	if a == b {
		return 0, nil
	}

	x := floats.Span(make([]float64, n+1), a, b)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = f(xi)
	}

	return sign * integrate.Trapezoidal(x, y), nil
}

// Samples integrates tabulated data y(x); x must be sorted ascending.
func Samples(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) < 2 || !sort.Float64sAreSorted(x) {
		return 0, ErrBadSamples
	}

	return integrate.Trapezoidal(x, y), nil
}
