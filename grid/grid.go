package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fdiff/field"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
// Returns ErrTooFewPoints if n < 2, ErrNonFinite for NaN/Inf bounds.
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid: Linspace n=%d: %w", n, ErrTooFewPoints)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("grid: Linspace [%g, %g]: %w", start, stop, ErrNonFinite)
	}

	return floats.Span(make([]float64, n), start, stop), nil
}

// New builds a Grid from one coordinate slice per axis using
// DefaultGridOptions. The slices are deep-copied.
func New(axes ...[]float64) (*Grid, error) {
	return NewWithOptions(DefaultGridOptions(), axes...)
}

// NewWithOptions builds a Grid, validating that each axis has at least two
// points, is finite, strictly increasing and uniformly spaced within
// opts.Tolerance.
// Complexity: O(Σ len(axis)).
func NewWithOptions(opts GridOptions, axes ...[]float64) (*Grid, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	g := &Grid{
		axes:    make([][]float64, len(axes)),
		spacing: make([]float64, len(axes)),
		shape:   make([]int, len(axes)),
	}
	for k, ax := range axes {
		h, err := uniformStep(ax, opts.Tolerance)
		if err != nil {
			return nil, fmt.Errorf("grid: axis %d: %w", k, err)
		}
		g.axes[k] = append([]float64(nil), ax...) // deep copy to keep the grid immutable
		g.spacing[k] = h
		g.shape[k] = len(ax)
	}

	return g, nil
}

// Cube builds an ndim-dimensional grid with the same Linspace(start, stop, n)
// along every axis.
func Cube(start, stop float64, n, ndim int) (*Grid, error) {
	if ndim < 1 {
		return nil, ErrNoAxes
	}
	ax, err := Linspace(start, stop, n)
	if err != nil {
		return nil, err
	}
	axes := make([][]float64, ndim)
	for k := range axes {
		axes[k] = ax
	}

	return New(axes...)
}

// uniformStep returns the mean step of ax after checking the axis contract.
func uniformStep(ax []float64, tol float64) (float64, error) {
	n := len(ax)
	if n < 2 {
		return 0, ErrTooFewPoints
	}
	for _, v := range ax {
		if !finite(v) {
			return 0, ErrNonFinite
		}
	}
	h := (ax[n-1] - ax[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		d := ax[i] - ax[i-1]
		if d <= 0 {
			return 0, ErrNotIncreasing
		}
		if math.Abs(d-h) > tol*h {
			return 0, fmt.Errorf("step %d is %g, mean %g: %w", i, d, h, ErrNonUniform)
		}
	}

	return h, nil
}

// Ndim returns the number of axes.
func (g *Grid) Ndim() int { return len(g.axes) }

// Shape returns a copy of the number of points per axis.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// Axis returns a copy of the coordinates along axis k.
// Panics if k is out of range, like slice indexing.
func (g *Grid) Axis(k int) []float64 { return append([]float64(nil), g.axes[k]...) }

// Spacing returns a copy of the per-axis step sizes.
func (g *Grid) Spacing() []float64 { return append([]float64(nil), g.spacing...) }

// Meshgrid returns Ndim coordinate fields in "ij" indexing: the k-th field
// holds the axis-k coordinate of every point.
// Complexity: O(Ndim·N).
func (g *Grid) Meshgrid() ([]*field.Field, error) {
	out := make([]*field.Field, g.Ndim())
	for k := range out {
		f, err := field.New(g.shape...)
		if err != nil {
			return nil, fmt.Errorf("grid: Meshgrid: %w", err)
		}
		out[k] = f
	}

	g.walk(func(off int, idx []int, x []float64) {
		for k, f := range out {
			f.Data()[off] = x[k]
		}
	})

	return out, nil
}

// Sample evaluates fn at every grid point and returns the samples as a Field
// shaped like the grid. The slice passed to fn is reused between calls; fn
// must not retain it.
// Complexity: O(N·cost(fn)).
func (g *Grid) Sample(fn func(x []float64) float64) (*field.Field, error) {
	f, err := field.New(g.shape...)
	if err != nil {
		return nil, fmt.Errorf("grid: Sample: %w", err)
	}
	data := f.Data()
	g.walk(func(off int, _ []int, x []float64) {
		data[off] = fn(x)
	})

	return f, nil
}

// Interior calls fn for every point whose index is at least margin away from
// both ends of every axis. idx and x are reused between calls.
// Returns ErrBadMargin for margin < 0. A margin that leaves no interior
// points is not an error; fn is simply never called.
func (g *Grid) Interior(margin int, fn func(idx []int, x []float64)) error {
	if margin < 0 {
		return fmt.Errorf("grid: Interior margin=%d: %w", margin, ErrBadMargin)
	}
	g.walk(func(_ int, idx []int, x []float64) {
		for k, i := range idx {
			if i < margin || i >= g.shape[k]-margin {
				return
			}
		}
		fn(idx, x)
	})

	return nil
}

// walk visits every point in row-major order (last axis fastest), passing
// its flat offset, index tuple and coordinates.
func (g *Grid) walk(visit func(off int, idx []int, x []float64)) {
	nd := g.Ndim()
	idx := make([]int, nd)
	x := make([]float64, nd)
	for k := range x {
		x[k] = g.axes[k][0]
	}
	total := 1
	for _, n := range g.shape {
		total *= n
	}

	for off := 0; off < total; off++ {
		visit(off, idx, x)
		// odometer increment from the last axis
		for k := nd - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < g.shape[k] {
				x[k] = g.axes[k][idx[k]]
				break
			}
			idx[k] = 0
			x[k] = g.axes[k][0]
		}
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
