// SPDX-License-Identifier: MIT
// Package vcalc: sentinel error set.
// Every validation failure returned by Gradient, Divergence, Curl and Partial
// matches ErrInvalidInput AND one specific sentinel below via errors.Is.

package vcalc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fdiff/field"
)

var (
	// ErrInvalidInput is the umbrella for every caller-supplied precondition
	// violation. Match it to handle "bad input" generically.
	ErrInvalidInput = errors.New("vcalc: invalid input")

	// ErrNoFields indicates an operator called with no fields at all.
	ErrNoFields = errors.New("vcalc: no fields")

	// ErrFieldCount indicates the number of fields differs from their dimensionality.
	ErrFieldCount = errors.New("vcalc: number of fields must equal their ndim")

	// ErrNdimMismatch indicates fields with different numbers of axes.
	ErrNdimMismatch = errors.New("vcalc: all fields must have the same ndim")

	// ErrShapeMismatch indicates fields with the same ndim but different extents.
	ErrShapeMismatch = errors.New("vcalc: all fields must have the same shape")

	// ErrSpacingLength indicates a per-axis spacing whose length differs from ndim.
	ErrSpacingLength = errors.New("vcalc: spacing length must equal ndim")

	// ErrCurlDimension indicates Curl on fields that are neither 2-D nor 3-D.
	ErrCurlDimension = errors.New("vcalc: curl is only defined for 2 or 3 dimensions")

	// ErrNilField aliases field.ErrNilField.
	ErrNilField = field.ErrNilField

	// ErrTooFewSamples aliases field.ErrTooFewSamples (fewer than 3 samples
	// along a differenced axis).
	ErrTooFewSamples = field.ErrTooFewSamples

	// ErrAxisOutOfRange aliases field.ErrAxisOutOfRange (Partial only).
	ErrAxisOutOfRange = field.ErrAxisOutOfRange
)

// invalidf builds an error matching both ErrInvalidInput and cause.
func invalidf(op string, cause error, format string, args ...any) error {
	return fmt.Errorf("vcalc.%s: %s: %w (%w)", op, fmt.Sprintf(format, args...), cause, ErrInvalidInput)
}
