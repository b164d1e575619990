// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//   - Element-wise kernels over Fields of identical shape.
//   - Every kernel allocates a fresh output; operands are never mutated.
//
// The flat loops are delegated to gonum's floats package, which operates on
// the row-major buffers directly.

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// opErrorf wraps an error with the kernel name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("field.%s: %w", op, err)
}

// Add returns a + b.
// Errors: ErrNilField, ErrDimensionMismatch.
// Complexity: O(N).
func Add(a, b *Field) (*Field, error) {
	if err := validateOperands([]*Field{a, b}); err != nil {
		return nil, opErrorf("Add", err)
	}
	out := a.zeroLike()
	floats.AddTo(out.arr.Elements, a.arr.Elements, b.arr.Elements)

	return out, nil
}

// Sub returns a - b.
// Errors: ErrNilField, ErrDimensionMismatch.
// Complexity: O(N).
func Sub(a, b *Field) (*Field, error) {
	if err := validateOperands([]*Field{a, b}); err != nil {
		return nil, opErrorf("Sub", err)
	}
	out := a.zeroLike()
	floats.SubTo(out.arr.Elements, a.arr.Elements, b.arr.Elements)

	return out, nil
}

// Scale returns c * a.
func Scale(c float64, a *Field) (*Field, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf("Scale", err)
	}
	out := a.zeroLike()
	floats.ScaleTo(out.arr.Elements, c, a.arr.Elements)

	return out, nil
}

// Sum returns the element-wise sum of all fields. Summation order is the
// argument order, so results are reproducible.
// Errors: ErrNoOperands, ErrNilField, ErrDimensionMismatch.
// Complexity: O(len(fs)*N).
func Sum(fs ...*Field) (*Field, error) {
	if err := validateOperands(fs); err != nil {
		return nil, opErrorf("Sum", err)
	}
	out := fs[0].Clone()
	for _, f := range fs[1:] {
		floats.Add(out.arr.Elements, f.arr.Elements)
	}

	return out, nil
}

// MaxAbsDiff returns max |a[i] - b[i]| (the L∞ distance).
func MaxAbsDiff(a, b *Field) (float64, error) {
	if err := validateOperands([]*Field{a, b}); err != nil {
		return 0, opErrorf("MaxAbsDiff", err)
	}

	return floats.Distance(a.arr.Elements, b.arr.Elements, math.Inf(1)), nil
}

// AllClose reports whether a and b have the same shape and every pair of
// samples is within tol, absolutely or relatively.
func AllClose(a, b *Field, tol float64) bool {
	if validateOperands([]*Field{a, b}) != nil {
		return false
	}

	return floats.EqualApprox(a.arr.Elements, b.arr.Elements, tol)
}

// Apply returns a new field with fn applied to every sample of a.
func Apply(a *Field, fn func(v float64) float64) (*Field, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf("Apply", err)
	}
	out := a.zeroLike()
	for i, v := range a.arr.Elements {
		out.arr.Elements[i] = fn(v)
	}

	return out, nil
}

// zeroLike allocates a zero Field with the same shape as f.
// f's shape is valid by construction, so New cannot fail here.
func (f *Field) zeroLike() *Field {
	out, _ := New(f.arr.Shape...)

	return out
}
