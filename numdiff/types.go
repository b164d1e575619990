package numdiff

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
)

var (
	// ErrUnknownMethod indicates a Method value or key outside the known set.
	ErrUnknownMethod = errors.New("numdiff: unknown method")

	// ErrLengthMismatch indicates X and Y of different lengths.
	ErrLengthMismatch = errors.New("numdiff: x and y must have the same length")

	// ErrTooFewSamples indicates fewer samples than the method's window.
	ErrTooFewSamples = errors.New("numdiff: too few samples for method")

	// ErrBadStep indicates a step that is not finite and > 0, including a
	// mean spacing derived from non-increasing X.
	ErrBadStep = errors.New("numdiff: step must be finite and > 0")

	// ErrNilFunc indicates a Continuous with no function.
	ErrNilFunc = errors.New("numdiff: function is nil")
)

// Method selects a finite-difference formula.
//
//   - Central2pt1st: 2-point central,  1st derivative, O(h²).
//   - Central4pt1st: 4-point central,  1st derivative, O(h⁴).
//   - Forward3pt1st: 3-point forward,  1st derivative, O(h²).
//   - Backward3pt1st: 3-point backward, 1st derivative, O(h²).
//   - Central3pt2nd: 3-point central,  2nd derivative, O(h²).
//   - Forward4pt2nd: 4-point forward,  2nd derivative, O(h²).
//   - Backward4pt2nd: 4-point backward, 2nd derivative, O(h²).
type Method int

const (
	Central2pt1st Method = iota
	Central4pt1st
	Forward3pt1st
	Backward3pt1st
	Central3pt2nd
	Forward4pt2nd
	Backward4pt2nd
)

// formula describes a method as weights over a window of consecutive
// samples y[k], ..., y[k+len(weights)-1]; the estimate belongs to sample
// k+anchor and is Σ weights[j]·y[k+j] / h^order.
type formula struct {
	key     string
	weights []float64
	anchor  int
	order   int
}

var formulas = [...]formula{
	Central2pt1st:  {"2pc1d", []float64{-0.5, 0, 0.5}, 1, 1},
	Central4pt1st:  {"4pc1d", []float64{1.0 / 12, -8.0 / 12, 0, 8.0 / 12, -1.0 / 12}, 2, 1},
	Forward3pt1st:  {"3pf1d", []float64{-1.5, 2, -0.5}, 0, 1},
	Backward3pt1st: {"3pb1d", []float64{0.5, -2, 1.5}, 2, 1},
	Central3pt2nd:  {"3pc2d", []float64{1, -2, 1}, 1, 2},
	Forward4pt2nd:  {"4pf2d", []float64{2, -5, 4, -1}, 0, 2},
	Backward4pt2nd: {"4pb2d", []float64{-1, 4, -5, 2}, 3, 2},
}

// Methods returns every supported method in declaration order.
func Methods() []Method {
	out := make([]Method, len(formulas))
	for i := range out {
		out[i] = Method(i)
	}

	return out
}

// ParseMethod maps a short key ("2pc1d", "4pc1d", "3pf1d", "3pb1d",
// "3pc2d", "4pf2d", "4pb2d") to its Method.
func ParseMethod(key string) (Method, error) {
	for i, f := range formulas {
		if f.key == key {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("numdiff: %q: %w", key, ErrUnknownMethod)
}

// String returns the method's short key.
func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return formulas[m].key
}

// Width returns the number of samples the method consumes per estimate.
func (m Method) Width() int {
	if !m.valid() {
		return 0
	}

	return len(formulas[m].weights)
}

// Order returns the order of the derivative the method estimates.
func (m Method) Order() int {
	if !m.valid() {
		return 0
	}

	return formulas[m].order
}

func (m Method) valid() bool { return m >= 0 && int(m) < len(formulas) }

// fdFormula converts the method into a gonum finite-difference formula
// anchored at the evaluation point, dropping zero weights.
func (m Method) fdFormula(step float64) fd.Formula {
	f := formulas[m]
	pts := make([]fd.Point, 0, len(f.weights))
	for j, w := range f.weights {
		if w == 0 {
			continue
		}
		pts = append(pts, fd.Point{Loc: float64(j - f.anchor), Coeff: w})
	}

	return fd.Formula{Stencil: pts, Derivative: f.order, Step: step}
}
