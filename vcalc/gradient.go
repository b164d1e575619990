package vcalc

import (
	"fmt"

	"github.com/katalvlaran/fdiff/field"
	"github.com/katalvlaran/fdiff/stencil"
)

// Gradient differentiates field i along axis i, for every i.
//
// Description:
//
//	fields are the Ndim components of one vector field sampled on a uniform
//	grid; all must share one shape of dimensionality Ndim == len(fields).
//	Output i has that same shape and holds ∂F_i/∂x_i. This is the
//	"one directional derivative per field" gradient that Divergence sums;
//	use Partial for an arbitrary (field, axis) pair.
//
// Algorithm Outline (per field i, axis i, n samples along it):
//  1. indices 1..n-2   ← Central2 over the whole axis.
//  2. index 0          ← Forward3 over samples 0..2.
//  3. index n-1        ← Backward3 over samples n-3..n-1.
//  4. every other axis is carried through whole.
//
// Complexity:
//
//	Time   = O(Ndim·N)
//	Memory = O(Ndim·N) for the outputs
//
// Errors (all match ErrInvalidInput):
//   - ErrNoFields, ErrNilField
//   - ErrFieldCount    : len(fields) != fields[0].Ndim()
//   - ErrNdimMismatch  : fields differ in Ndim
//   - ErrShapeMismatch : fields differ in extents
//   - ErrSpacingLength : WithAxisSpacing length != Ndim
//   - ErrTooFewSamples : an axis has fewer than 3 samples
func Gradient(fields []*field.Field, opts ...Option) ([]*field.Field, error) {
	hs, err := checkFields("Gradient", fields, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	out := make([]*field.Field, len(fields))
	for i, f := range fields {
		if out[i], err = partial(f, i, hs[i]); err != nil {
			return nil, fmt.Errorf("vcalc.Gradient: field %d: %w", i, err)
		}
	}

	return out, nil
}

// Divergence returns Σ_i ∂F_i/∂x_i, the element-wise sum of Gradient's
// outputs. It validates exactly as Gradient does.
func Divergence(fields []*field.Field, opts ...Option) (*field.Field, error) {
	grad, err := Gradient(fields, opts...)
	if err != nil {
		return nil, err
	}
	div, err := field.Sum(grad...)
	if err != nil {
		return nil, fmt.Errorf("vcalc.Divergence: %w", err)
	}

	return div, nil
}

// Partial returns ∂f/∂x_axis with the same interior/boundary rule as
// Gradient. Spacing options are resolved against f.Ndim(); only the step of
// axis is used.
//
// Errors (all match ErrInvalidInput): ErrNilField, ErrAxisOutOfRange,
// ErrSpacingLength, ErrTooFewSamples.
func Partial(f *field.Field, axis int, opts ...Option) (*field.Field, error) {
	const op = "Partial"
	if f == nil {
		return nil, invalidf(op, ErrNilField, "field is nil")
	}
	if axis < 0 || axis >= f.Ndim() {
		return nil, invalidf(op, ErrAxisOutOfRange, "axis %d, ndim %d", axis, f.Ndim())
	}
	hs, err := gatherOptions(opts...).resolve(op, f.Ndim())
	if err != nil {
		return nil, err
	}
	if n, _ := f.Dim(axis); n < stencil.Width {
		return nil, invalidf(op, ErrTooFewSamples, "axis %d has %d samples, need %d", axis, n, stencil.Width)
	}

	return partial(f, axis, hs[axis])
}

// checkFields runs the shared precondition check and returns one step per axis.
// Stage order: presence → count vs ndim → ndim → shape → spacing → extent.
// Nothing is indexed before every check has passed.
func checkFields(op string, fields []*field.Field, o Options) ([]float64, error) {
	if len(fields) == 0 {
		return nil, invalidf(op, ErrNoFields, "got 0 fields")
	}
	for i, f := range fields {
		if f == nil {
			return nil, invalidf(op, ErrNilField, "field %d is nil", i)
		}
	}
	ndim := fields[0].Ndim()
	if len(fields) != ndim {
		return nil, invalidf(op, ErrFieldCount, "len(fields) (%d) must be equal to the ndim of the fields (%d)", len(fields), ndim)
	}
	for i, f := range fields[1:] {
		if f.Ndim() != ndim {
			return nil, invalidf(op, ErrNdimMismatch, "field %d has ndim %d, field 0 has %d", i+1, f.Ndim(), ndim)
		}
	}
	shape := fields[0].Shape()
	for i, f := range fields[1:] {
		if field.ValidateSameShape(fields[0], f) != nil {
			return nil, invalidf(op, ErrShapeMismatch, "field %d has shape %v, field 0 has %v", i+1, f.Shape(), shape)
		}
	}
	hs, err := o.resolve(op, ndim)
	if err != nil {
		return nil, err
	}
	for axis, n := range shape {
		if n < stencil.Width {
			return nil, invalidf(op, ErrTooFewSamples, "axis %d has %d samples, need %d", axis, n, stencil.Width)
		}
	}

	return hs, nil
}

// partial assembles central interior and one-sided boundaries along axis.
// Preconditions (checked by callers): f non-nil, axis valid, extent ≥ 3, h valid.
func partial(f *field.Field, axis int, h float64) (*field.Field, error) {
	n, err := f.Dim(axis)
	if err != nil {
		return nil, err
	}
	out, err := field.New(f.Shape()...)
	if err != nil {
		return nil, err
	}

	// Stage 1: interior, indices 1..n-2.
	mid, err := stencil.Central2(f, h, axis)
	if err != nil {
		return nil, err
	}
	if err = out.SetRange(axis, 1, mid); err != nil {
		return nil, err
	}

	// Stage 2: first slice from the first three samples.
	head, err := f.Take(axis, 0, stencil.Width)
	if err != nil {
		return nil, err
	}
	first, err := stencil.Forward3(head, h, axis)
	if err != nil {
		return nil, err
	}
	if err = out.SetRange(axis, 0, first); err != nil {
		return nil, err
	}

	// Stage 3: last slice from the last three samples.
	tail, err := f.Take(axis, n-stencil.Width, n)
	if err != nil {
		return nil, err
	}
	last, err := stencil.Backward3(tail, h, axis)
	if err != nil {
		return nil, err
	}
	if err = out.SetRange(axis, n-1, last); err != nil {
		return nil, err
	}

	return out, nil
}
