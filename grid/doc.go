// Package grid describes uniform rectilinear grids and samples functions
// onto them as field.Field values.
//
// What:
//
//   - Linspace builds an evenly spaced axis (numpy-style, endpoints included).
//   - Grid bundles one axis per dimension, checks every axis is uniformly
//     spaced, and reports the per-axis spacing the vector-calculus
//     operators need.
//   - Meshgrid returns coordinate fields with "ij" indexing: field k holds
//     the axis-k coordinate, and axis k of every field varies along axis k.
//   - Sample evaluates fn(x) at every grid point into a new Field.
//   - Interior visits points at least `margin` samples from each boundary,
//     which is where one-sided boundary stencils no longer contribute.
//
// Why:
//
//   - Tests and demos compare finite-difference results against closed-form
//     derivatives; all of them need the same grid plumbing.
//
// Complexity:
//
//   - Meshgrid: O(Ndim·N), Sample: O(N·cost(fn)), Interior: O(N).
//
// Options:
//
//   - GridOptions.Tolerance: relative tolerance on spacing uniformity.
//
// Errors:
//
//   - ErrTooFewPoints: an axis has fewer than 2 points.
//   - ErrNotIncreasing: an axis is not strictly increasing.
//   - ErrNonUniform: spacing varies by more than Tolerance.
//   - ErrNoAxes: New called without axes.
//   - ErrBadMargin: negative Interior margin.
package grid
