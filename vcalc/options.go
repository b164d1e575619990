// SPDX-License-Identifier: MIT

// Package vcalc: functional configuration of grid spacing.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - the documented default (DefaultSpacing),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions and resolve, which turn options into one step per axis.
//
// Notes:
//   - No option ⇒ unit spacing on every axis.
//   - WithSpacing(h) ⇒ h on every axis, whatever the dimensionality.
//   - WithAxisSpacing(h0, h1, ...) ⇒ one step per axis; the count is checked
//     against the fields at call time and a mismatch is ErrSpacingLength
//     (a caller error, returned, not panicked).
//   - The last spacing option applied wins.
package vcalc

import (
	"math"

	"github.com/katalvlaran/fdiff/grid"
)

// DefaultSpacing is the step used along every axis when no option is given.
const DefaultSpacing = 1.0

const (
	panicSpacingInvalid = "vcalc: WithSpacing: h must be finite and > 0"
	panicAxisInvalid    = "vcalc: WithAxisSpacing: every h must be finite and > 0"
	panicGridNil        = "vcalc: WithGrid: grid is nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported; public entry points accept ...Option.
type Options struct {
	uniform float64   // step for every axis when perAxis is nil
	perAxis []float64 // explicit per-axis steps, or nil
}

// WithSpacing sets the same step h on every axis.
// Panics with a stable message if h is NaN, ±Inf or ≤ 0.
func WithSpacing(h float64) Option {
	if !validStep(h) {
		panic(panicSpacingInvalid)
	}

	return func(o *Options) {
		o.uniform = h
		o.perAxis = nil
	}
}

// WithAxisSpacing sets one step per axis, in axis order.
// Panics with a stable message if any h is NaN, ±Inf or ≤ 0.
func WithAxisSpacing(h ...float64) Option {
	for _, v := range h {
		if !validStep(v) {
			panic(panicAxisInvalid)
		}
	}
	hs := append([]float64{}, h...) // own the steps; never nil

	return func(o *Options) { o.perAxis = hs }
}

// WithGrid takes the per-axis steps from g.
// Panics if g is nil.
func WithGrid(g *grid.Grid) Option {
	if g == nil {
		panic(panicGridNil)
	}

	return WithAxisSpacing(g.Spacing()...)
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{uniform: DefaultSpacing}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolve returns one step per axis for ndim axes.
func (o Options) resolve(op string, ndim int) ([]float64, error) {
	if o.perAxis != nil {
		if len(o.perAxis) != ndim {
			return nil, invalidf(op, ErrSpacingLength, "len(h) = %d, ndim = %d", len(o.perAxis), ndim)
		}

		return o.perAxis, nil
	}
	hs := make([]float64, ndim)
	for k := range hs {
		hs[k] = o.uniform
	}

	return hs, nil
}

func validStep(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h > 0
}
