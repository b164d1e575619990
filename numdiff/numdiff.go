package numdiff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fdiff/stencil"
)

// Discrete differentiates tabulated data y_i = f(x_i). X is expected to be
// uniformly spaced; the step used is the mean of consecutive differences.
type Discrete struct {
	X []float64
	Y []float64
}

// Step returns the mean spacing of X.
// Errors: ErrLengthMismatch, ErrTooFewSamples (fewer than 2 points),
// ErrBadStep (mean spacing not finite and > 0).
func (d Discrete) Step() (float64, error) {
	if len(d.X) != len(d.Y) {
		return 0, fmt.Errorf("numdiff: len(x)=%d, len(y)=%d: %w", len(d.X), len(d.Y), ErrLengthMismatch)
	}
	if len(d.X) < 2 {
		return 0, fmt.Errorf("numdiff: %d points: %w", len(d.X), ErrTooFewSamples)
	}
	steps := make([]float64, len(d.X)-1)
	for i := range steps {
		steps[i] = d.X[i+1] - d.X[i]
	}
	h := stat.Mean(steps, nil)
	if !validStep(h) {
		return 0, fmt.Errorf("numdiff: mean step %g: %w", h, ErrBadStep)
	}

	return h, nil
}

// Diff applies method to every full window of Y. The result has
// len(Y) - method.Width() + 1 values; value k is the estimate at X[k + anchor]
// (see Abscissae).
//
// Algorithm:
//  1. h ← mean(diff(X)).
//  2. 3-point first-derivative methods delegate to package stencil.
//  3. other methods slide their weight window along Y.
//
// Complexity: O(len(Y)·width).
func (d Discrete) Diff(method Method) ([]float64, error) {
	if !method.valid() {
		return nil, fmt.Errorf("numdiff: %v: %w", method, ErrUnknownMethod)
	}
	h, err := d.Step()
	if err != nil {
		return nil, err
	}
	if w := method.Width(); len(d.Y) < w {
		return nil, fmt.Errorf("numdiff: %v needs %d samples, got %d: %w", method, w, len(d.Y), ErrTooFewSamples)
	}

	switch method {
	case Central2pt1st:
		return stencil.Central2Slice(d.Y, h)
	case Forward3pt1st:
		return stencil.Forward3Slice(d.Y, h)
	case Backward3pt1st:
		return stencil.Backward3Slice(d.Y, h)
	}

	f := formulas[method]
	scale := math.Pow(h, float64(f.order))
	out := make([]float64, len(d.Y)-len(f.weights)+1)
	for k := range out {
		var s float64
		for j, w := range f.weights {
			s += w * d.Y[k+j]
		}
		out[k] = s / scale
	}

	return out, nil
}

// Abscissae returns the X positions that Diff(method)'s values belong to.
func (d Discrete) Abscissae(method Method) ([]float64, error) {
	if !method.valid() {
		return nil, fmt.Errorf("numdiff: %v: %w", method, ErrUnknownMethod)
	}
	if len(d.X) != len(d.Y) {
		return nil, ErrLengthMismatch
	}
	f := formulas[method]
	n := len(d.X) - len(f.weights) + 1
	if n < 1 {
		return nil, ErrTooFewSamples
	}

	return append([]float64(nil), d.X[f.anchor:f.anchor+n]...), nil
}

// Continuous differentiates a function F with a fixed step H.
type Continuous struct {
	F func(x float64) float64
	H float64
}

// At estimates the method's derivative of F at x. The stencil is anchored at
// x: forward methods sample x, x+H, ...; backward methods x, x-H, ...
// Evaluation goes through gonum's fd.Derivative.
func (c Continuous) At(method Method, x float64) (float64, error) {
	if !method.valid() {
		return 0, fmt.Errorf("numdiff: %v: %w", method, ErrUnknownMethod)
	}
	if c.F == nil {
		return 0, ErrNilFunc
	}
	if !validStep(c.H) {
		return 0, fmt.Errorf("numdiff: H=%g: %w", c.H, ErrBadStep)
	}

	return fd.Derivative(c.F, x, &fd.Settings{
		Formula: method.fdFormula(c.H),
		Step:    c.H,
	}), nil
}

func validStep(h float64) bool { return !math.IsNaN(h) && !math.IsInf(h, 0) && h > 0 }
