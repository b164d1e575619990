// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//  - Provide a single source of truth for the shape/axis checks shared by
//    the element-wise kernels, the stencils and the vector-calculus operators.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.

package field

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the field reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(f *Field) error {
	if f == nil {
		return validatorErrorf("ValidateNotNil", ErrNilField)
	}

	return nil
}

// ValidateSameShape ensures a and b have the same number of axes and the
// same extent along each. Assumes both are non-nil.
// Complexity: O(ndim).
func ValidateSameShape(a, b *Field) error {
	if a.Ndim() != b.Ndim() {
		return validatorErrorf("ValidateSameShape: Ndim", ErrDimensionMismatch)
	}
	for k, d := range a.arr.Shape {
		if d != b.arr.Shape[k] {
			return validatorErrorf(fmt.Sprintf("ValidateSameShape: axis %d", k), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateAxis ensures 0 ≤ axis < f.Ndim(). Assumes f is non-nil.
func ValidateAxis(f *Field, axis int) error {
	if axis < 0 || axis >= f.Ndim() {
		return validatorErrorf(fmt.Sprintf("ValidateAxis: %d of %d", axis, f.Ndim()), ErrAxisOutOfRange)
	}

	return nil
}

// ValidateMinExtent ensures f has at least want samples along axis.
// Composite: NotNil → Axis → extent.
func ValidateMinExtent(f *Field, axis, want int) error {
	if err := ValidateNotNil(f); err != nil {
		return err
	}
	if err := ValidateAxis(f, axis); err != nil {
		return err
	}
	if n := f.arr.Shape[axis]; n < want {
		return validatorErrorf(fmt.Sprintf("ValidateMinExtent: axis %d has %d < %d", axis, n, want), ErrTooFewSamples)
	}

	return nil
}

// validateOperands runs NotNil on every operand and SameShape against the first.
func validateOperands(fs []*Field) error {
	if len(fs) == 0 {
		return ErrNoOperands
	}
	for i, f := range fs {
		if err := ValidateNotNil(f); err != nil {
			return fmt.Errorf("operand %d: %w", i, err)
		}
		if i > 0 {
			if err := ValidateSameShape(fs[0], f); err != nil {
				return fmt.Errorf("operand %d: %w", i, err)
			}
		}
	}

	return nil
}
