// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All public functions return these sentinels (possibly wrapped with call
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// No function panics on user-triggered error conditions.

package field

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (no axes, or an extent < 1).
	ErrBadShape = errors.New("field: invalid shape")

	// ErrOutOfRange indicates an index outside the valid bounds of an axis,
	// or an index tuple of the wrong length.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// or a data slice whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrNilField indicates that a nil *Field (receiver or argument) was used.
	ErrNilField = errors.New("field: nil field")

	// ErrAxisOutOfRange indicates an axis index outside [0, Ndim).
	ErrAxisOutOfRange = errors.New("field: axis out of range")

	// ErrEmptyRange indicates a [start, stop) range that selects no samples
	// or reaches past the end of the axis.
	ErrEmptyRange = errors.New("field: empty or invalid axis range")

	// ErrTooFewSamples indicates an axis shorter than an operation requires.
	ErrTooFewSamples = errors.New("field: too few samples along axis")

	// ErrNoOperands is returned by variadic kernels called with no fields.
	ErrNoOperands = errors.New("field: no operands")
)
