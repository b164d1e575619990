// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/fdiff.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrNoAxes indicates a grid built without any axis.
	ErrNoAxes = errors.New("grid: at least one axis is required")
	// ErrTooFewPoints indicates an axis (or Linspace request) with fewer than 2 points.
	ErrTooFewPoints = errors.New("grid: an axis needs at least two points")
	// ErrNotIncreasing indicates axis coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: axis coordinates must be strictly increasing")
	// ErrNonUniform indicates an axis whose spacing is not constant within tolerance.
	ErrNonUniform = errors.New("grid: axis spacing is not uniform")
	// ErrNonFinite indicates a NaN or ±Inf coordinate or bound.
	ErrNonFinite = errors.New("grid: coordinates must be finite")
	// ErrBadMargin indicates a negative Interior margin.
	ErrBadMargin = errors.New("grid: margin must be >= 0")
)

// DefaultTolerance is the relative spacing tolerance used by DefaultGridOptions.
const DefaultTolerance = 1e-9

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Tolerance bounds |Δx_i - Δx_0| / |Δx_0| for every step of an axis.
	Tolerance float64
}

// DefaultGridOptions returns GridOptions with Tolerance=DefaultTolerance.
func DefaultGridOptions() GridOptions {
	return GridOptions{Tolerance: DefaultTolerance}
}

// Grid is a uniform rectilinear grid. It is immutable once built.
// axes[k] holds the coordinates along axis k; spacing[k] their common step.
type Grid struct {
	axes    [][]float64
	spacing []float64
	shape   []int
}
