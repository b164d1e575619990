// SPDX-License-Identifier: MIT

// Package field provides the n-dimensional sample array that every operator
// in fdiff reads and returns.
//
// 🚀 What is a Field?
//
//	A Field is a dense, row-major array of float64 samples laid out on a
//	uniform grid. A scalar field is one Field; a vector field is one Field
//	per spatial component (Fx, Fy, Fz), all with the same shape.
//
// ✨ Key features:
//   - strict constructors: every extent must be ≥ 1, at least one axis
//   - safe accessors: At/Set return sentinel errors instead of panicking
//   - axis helpers: AxisLayout, Take and SetRange address one axis while
//     leaving every other axis intact
//   - element-wise kernels: Add, Sub, Scale, Sum, MaxAbsDiff, AllClose
//
// ⚙️ Usage:
//
//	f, err := field.New(101, 101, 101)
//	if err != nil {
//	  // handle ErrBadShape
//	}
//	_ = f.Set(1.5, 10, 20, 30)
//	edge, _ := f.Take(0, 0, 3) // first three slices along axis 0
//
// Storage is a github.com/ctessum/sparse DenseArray, so Fields exchange
// data with the gridded-array code that already uses that package.
//
// Complexity quicksheet:
//   - New/Clone: O(N); At/Set: O(ndim); Take/SetRange: O(size of range).
package field
