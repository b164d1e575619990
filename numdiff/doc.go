// Package numdiff estimates first and second derivatives of 1-D data.
//
// Two inputs are supported:
//
//   - Discrete{X, Y}: tabulated samples; Diff slides the chosen formula along
//     Y using the mean spacing of X and returns one estimate per full window.
//   - Continuous{F, H}: a function and a step; At evaluates the formula
//     anchored at a point through gonum.org/v1/gonum/diff/fd.
//
// Seven formulas are available, addressable by Method constant or by short
// key through ParseMethod ("2pc1d", "4pc1d", "3pf1d", "3pb1d", "3pc2d",
// "4pf2d", "4pb2d": points, direction, derivative order).
//
// Usage:
//
//	d := numdiff.Discrete{X: x, Y: y}
//	dy, err := d.Diff(numdiff.Central4pt1st)
//	at, _ := d.Abscissae(numdiff.Central4pt1st) // x positions of dy
//
//	c := numdiff.Continuous{F: math.Sin, H: 1e-3}
//	cos0, _ := c.At(numdiff.Central2pt1st, 0)
package numdiff
