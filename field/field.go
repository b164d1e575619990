// SPDX-License-Identifier: MIT

// Package field - Field storage (row-major n-d) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit offset formula Σ idx[k]*stride[k].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed (last axis fastest) so results are bit-for-bit reproducible.

package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxDim      = "Dim"
	ctxLayout   = "AxisLayout"
	ctxTake     = "Take"
	ctxSetRange = "SetRange"
)

// fieldErrorf wraps an error with a uniform Field method context.
func fieldErrorf(method string, err error) error {
	return fmt.Errorf("Field.%s: %w", method, err)
}

// Field is a dense n-dimensional array of float64 samples.
//   - arr holds the samples; arr.Elements is row-major, arr.Shape the extents.
//   - strides[k] is the flat distance between neighbours along axis k.
type Field struct {
	arr     *sparse.DenseArray
	strides []int // row-major strides; strides[ndim-1] == 1
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Field)(nil)

// New creates a zero-filled Field with the given extents.
// Stage 1 (Validate): at least one axis, every extent ≥ 1.
// Stage 2 (Prepare): allocate storage and row-major strides.
// Complexity: O(N) time and memory, N = product of extents.
func New(shape ...int) (*Field, error) {
	if err := validateShape(shape); err != nil {
		return nil, fieldErrorf(ctxNew, err)
	}
	// Own the shape slice; callers may reuse theirs.
	dims := append([]int(nil), shape...)

	return &Field{
		arr:     sparse.ZerosDense(dims...),
		strides: rowMajorStrides(dims),
	}, nil
}

// FromSlice creates a Field with the given shape and copies data into it.
// data is read in row-major order (last axis fastest) and is not retained.
//
// Errors: ErrBadShape for an invalid shape; ErrDimensionMismatch when
// len(data) differs from the product of the extents.
func FromSlice(data []float64, shape ...int) (*Field, error) {
	f, err := New(shape...)
	if err != nil {
		return nil, fieldErrorf(ctxFrom, err)
	}
	if len(data) != len(f.arr.Elements) {
		return nil, fieldErrorf(ctxFrom, fmt.Errorf("%d values for %d samples: %w",
			len(data), len(f.arr.Elements), ErrDimensionMismatch))
	}
	copy(f.arr.Elements, data)

	return f, nil
}

// FromDenseArray wraps an existing sparse.DenseArray without copying.
// The Field shares storage with a; later writes through either are visible
// in both.
func FromDenseArray(a *sparse.DenseArray) (*Field, error) {
	if a == nil {
		return nil, fieldErrorf(ctxFrom, ErrNilField)
	}
	if err := validateShape(a.Shape); err != nil {
		return nil, fieldErrorf(ctxFrom, err)
	}
	if len(a.Elements) != product(a.Shape) {
		return nil, fieldErrorf(ctxFrom, ErrDimensionMismatch)
	}

	return &Field{arr: a, strides: rowMajorStrides(a.Shape)}, nil
}

// DenseArray returns the backing sparse.DenseArray (shared, not copied).
func (f *Field) DenseArray() *sparse.DenseArray { return f.arr }

// Ndim returns the number of axes.
func (f *Field) Ndim() int { return len(f.arr.Shape) }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.arr.Elements) }

// Shape returns a copy of the extents.
func (f *Field) Shape() []int { return append([]int(nil), f.arr.Shape...) }

// Data returns the row-major sample buffer. The slice is shared with the
// Field, not copied.
func (f *Field) Data() []float64 { return f.arr.Elements }

// Dim returns the extent of axis.
func (f *Field) Dim(axis int) (int, error) {
	if axis < 0 || axis >= f.Ndim() {
		return 0, fieldErrorf(ctxDim, ErrAxisOutOfRange)
	}

	return f.arr.Shape[axis], nil
}

// offset computes the flat offset of idx or returns ErrOutOfRange.
// Complexity: O(ndim).
func (f *Field) offset(idx []int) (int, error) {
	if len(idx) != f.Ndim() {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= f.arr.Shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * f.strides[k]
	}

	return off, nil
}

// At retrieves the sample at idx.
// Returns ErrOutOfRange when len(idx) != Ndim() or any index is out of bounds.
func (f *Field) At(idx ...int) (float64, error) {
	off, err := f.offset(idx)
	if err != nil {
		return 0, fieldErrorf(ctxAt, fmt.Errorf("%v: %w", idx, err))
	}

	return f.arr.Elements[off], nil
}

// Set assigns v at idx.
// Returns ErrOutOfRange when len(idx) != Ndim() or any index is out of bounds.
func (f *Field) Set(v float64, idx ...int) error {
	off, err := f.offset(idx)
	if err != nil {
		return fieldErrorf(ctxSet, fmt.Errorf("%v: %w", idx, err))
	}
	f.arr.Elements[off] = v

	return nil
}

// Clone returns a deep copy of f.
// Complexity: O(N).
func (f *Field) Clone() *Field {
	dims := f.Shape()
	a := sparse.ZerosDense(dims...)
	copy(a.Elements, f.arr.Elements)

	return &Field{arr: a, strides: rowMajorStrides(dims)}
}

// AxisLayout describes how samples along axis are laid out in Data():
// the buffer is outer blocks of n*inner values; inside each block the k-th
// sample along axis starts at k*inner and spans inner contiguous values.
//
// Stencils use this to walk one axis without building index tuples.
func (f *Field) AxisLayout(axis int) (outer, n, inner int, err error) {
	if axis < 0 || axis >= f.Ndim() {
		return 0, 0, 0, fieldErrorf(ctxLayout, ErrAxisOutOfRange)
	}
	shape := f.arr.Shape
	outer = product(shape[:axis])
	inner = f.strides[axis]

	return outer, shape[axis], inner, nil
}

// Take returns a copy of the samples with index in [start, stop) along axis;
// every other axis is kept whole.
//
// Errors: ErrAxisOutOfRange, ErrEmptyRange (start < 0, stop > extent or
// start >= stop).
// Complexity: O(outer*(stop-start)*inner).
func (f *Field) Take(axis, start, stop int) (*Field, error) {
	outer, n, inner, err := f.AxisLayout(axis)
	if err != nil {
		return nil, fieldErrorf(ctxTake, err)
	}
	if start < 0 || stop > n || start >= stop {
		return nil, fieldErrorf(ctxTake, fmt.Errorf("[%d, %d) of %d: %w", start, stop, n, ErrEmptyRange))
	}
	m := stop - start
	dims := f.Shape()
	dims[axis] = m
	out, err := New(dims...)
	if err != nil {
		return nil, fieldErrorf(ctxTake, err)
	}

	src, dst := f.arr.Elements, out.arr.Elements
	for o := 0; o < outer; o++ {
		from := (o*n + start) * inner // first sample of the range in this block
		to := o * m * inner
		copy(dst[to:to+m*inner], src[from:from+m*inner])
	}

	return out, nil
}

// SetRange writes src into f along axis starting at index start.
// src must match f on every other axis and fit within f along axis.
//
// Errors: ErrNilField, ErrAxisOutOfRange, ErrDimensionMismatch, ErrEmptyRange.
func (f *Field) SetRange(axis, start int, src *Field) error {
	if src == nil {
		return fieldErrorf(ctxSetRange, ErrNilField)
	}
	outer, n, inner, err := f.AxisLayout(axis)
	if err != nil {
		return fieldErrorf(ctxSetRange, err)
	}
	if src.Ndim() != f.Ndim() {
		return fieldErrorf(ctxSetRange, ErrDimensionMismatch)
	}
	for k, d := range src.arr.Shape {
		if k != axis && d != f.arr.Shape[k] {
			return fieldErrorf(ctxSetRange, fmt.Errorf("axis %d: %d vs %d: %w", k, d, f.arr.Shape[k], ErrDimensionMismatch))
		}
	}
	m := src.arr.Shape[axis]
	if start < 0 || start+m > n {
		return fieldErrorf(ctxSetRange, fmt.Errorf("[%d, %d) of %d: %w", start, start+m, n, ErrEmptyRange))
	}

	s, d := src.arr.Elements, f.arr.Elements
	for o := 0; o < outer; o++ {
		to := (o*n + start) * inner
		from := o * m * inner
		copy(d[to:to+m*inner], s[from:from+m*inner])
	}

	return nil
}

// String implements fmt.Stringer with nested brackets, one level per axis.
// Complexity: O(N).
func (f *Field) String() string {
	var b strings.Builder
	f.format(&b, 0, 0)

	return b.String()
}

// format writes the sub-array rooted at flat offset off along axis.
func (f *Field) format(b *strings.Builder, axis, off int) {
	b.WriteByte('[')
	n := f.arr.Shape[axis]
	for k := 0; k < n; k++ {
		if k > 0 {
			b.WriteString(", ")
		}
		if axis == f.Ndim()-1 {
			b.WriteString(strconv.FormatFloat(f.arr.Elements[off+k], 'g', -1, 64))
			continue
		}
		f.format(b, axis+1, off+k*f.strides[axis])
	}
	b.WriteByte(']')
}

// ---------- shape helpers ----------

// validateShape checks the public shape contract.
func validateShape(shape []int) error {
	if len(shape) == 0 {
		return ErrBadShape
	}
	for _, d := range shape {
		if d < 1 {
			return fmt.Errorf("%v: %w", shape, ErrBadShape)
		}
	}

	return nil
}

// rowMajorStrides returns strides with the last axis varying fastest.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = s
		s *= shape[k]
	}

	return strides
}

// product returns the product of dims (1 for an empty slice).
func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}
