package stencil

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fdiff/field"
)

// Width is the number of samples each stencil consumes.
const Width = 3

var (
	// ErrBadStep indicates a spacing that is not a finite positive number.
	ErrBadStep = errors.New("stencil: spacing must be finite and > 0")

	// ErrTooFewSamples aliases field.ErrTooFewSamples so errors.Is matches
	// either name.
	ErrTooFewSamples = field.ErrTooFewSamples

	// ErrAxisOutOfRange aliases field.ErrAxisOutOfRange.
	ErrAxisOutOfRange = field.ErrAxisOutOfRange

	// ErrNilField aliases field.ErrNilField.
	ErrNilField = field.ErrNilField
)

// kernel combines one window (y0, y1, y2) into a derivative estimate;
// h2 is twice the spacing.
type kernel func(y0, y1, y2, h2 float64) float64

func forward(y0, y1, y2, h2 float64) float64  { return (-3*y0 + 4*y1 - y2) / h2 }
func backward(y0, y1, y2, h2 float64) float64 { return (3*y2 - 4*y1 + y0) / h2 }
func central(y0, _, y2, h2 float64) float64   { return (y2 - y0) / h2 }

// Forward3 applies the 3-point forward stencil along axis of y.
// out[k] estimates the derivative at sample k, for k in [0, n-2).
func Forward3(y *field.Field, h float64, axis int) (*field.Field, error) {
	return apply("Forward3", y, h, axis, forward)
}

// Backward3 applies the 3-point backward stencil along axis of y.
// out[k] estimates the derivative at sample k+2, for k in [0, n-2).
func Backward3(y *field.Field, h float64, axis int) (*field.Field, error) {
	return apply("Backward3", y, h, axis, backward)
}

// Central2 applies the 2-point central stencil along axis of y.
// out[k] estimates the derivative at interior sample k+1, for k in [0, n-2).
func Central2(y *field.Field, h float64, axis int) (*field.Field, error) {
	return apply("Central2", y, h, axis, central)
}

// apply slides fn along axis and writes a fresh Field of extent n-2.
// Stage 1 (Validate): nil, axis, extent ≥ Width, step.
// Stage 2 (Execute): one pass over outer blocks, window index, inner run.
// Complexity: O(N) time, O(N) output memory.
func apply(name string, y *field.Field, h float64, axis int, fn kernel) (*field.Field, error) {
	if err := field.ValidateMinExtent(y, axis, Width); err != nil {
		return nil, fmt.Errorf("stencil.%s: %w", name, err)
	}
	if err := validateStep(h); err != nil {
		return nil, fmt.Errorf("stencil.%s: %w", name, err)
	}

	outer, n, inner, err := y.AxisLayout(axis)
	if err != nil {
		return nil, fmt.Errorf("stencil.%s: %w", name, err)
	}
	m := n - (Width - 1)
	dims := y.Shape()
	dims[axis] = m
	out, err := field.New(dims...)
	if err != nil {
		return nil, fmt.Errorf("stencil.%s: %w", name, err)
	}

	src, dst := y.Data(), out.Data()
	h2 := 2 * h
	for o := 0; o < outer; o++ {
		for k := 0; k < m; k++ {
			s := (o*n + k) * inner // window start in the source block
			d := (o*m + k) * inner // matching row in the output block
			for j := 0; j < inner; j++ {
				dst[d+j] = fn(src[s+j], src[s+j+inner], src[s+j+2*inner], h2)
			}
		}
	}

	return out, nil
}

// Forward3Slice is Forward3 on 1-D data; the result has len(y)-2 values.
func Forward3Slice(y []float64, h float64) ([]float64, error) {
	return applySlice("Forward3Slice", y, h, forward)
}

// Backward3Slice is Backward3 on 1-D data; the result has len(y)-2 values.
func Backward3Slice(y []float64, h float64) ([]float64, error) {
	return applySlice("Backward3Slice", y, h, backward)
}

// Central2Slice is Central2 on 1-D data; the result has len(y)-2 values.
func Central2Slice(y []float64, h float64) ([]float64, error) {
	return applySlice("Central2Slice", y, h, central)
}

func applySlice(name string, y []float64, h float64, fn kernel) ([]float64, error) {
	if len(y) < Width {
		return nil, fmt.Errorf("stencil.%s: %d samples: %w", name, len(y), ErrTooFewSamples)
	}
	if err := validateStep(h); err != nil {
		return nil, fmt.Errorf("stencil.%s: %w", name, err)
	}
	out := make([]float64, len(y)-(Width-1))
	h2 := 2 * h
	for k := range out {
		out[k] = fn(y[k], y[k+1], y[k+2], h2)
	}

	return out, nil
}

// validateStep rejects NaN, ±Inf, zero and negative spacing.
func validateStep(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("h=%g: %w", h, ErrBadStep)
	}

	return nil
}
