// Package stencil implements the three second-order finite-difference
// formulas for a first derivative from uniformly spaced samples.
//
// For a window of three consecutive samples y0, y1, y2 with spacing h:
//
//	Forward3  : (-3·y0 + 4·y1 - y2) / 2h   derivative at y0
//	Backward3 : ( 3·y2 - 4·y1 + y0) / 2h   derivative at y2
//	Central2  : (        y2 -   y0) / 2h   derivative at y1
//
// All three have truncation error O(h²) and are exact for linear data.
//
// Each stencil slides the window along one axis of an n-dimensional
// field.Field, leaving every other axis intact, and returns a new Field whose
// extent along that axis is two less than the input's. The *Slice variants do
// the same on plain 1-D []float64 data.
//
// Errors:
//   - ErrTooFewSamples  : fewer than 3 samples along the axis.
//   - ErrAxisOutOfRange : axis outside [0, Ndim).
//   - ErrBadStep        : h not finite and > 0.
//   - ErrNilField       : nil input.
package stencil
