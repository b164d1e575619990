package stencil_test

import (
	"fmt"

	"github.com/katalvlaran/fdiff/stencil"
)

// ExampleCentral2Slice differentiates y = x² sampled at x = 0, 0.5, ..., 2.
// Central differences are exact for quadratics, so the interior estimates
// equal 2x at x = 0.5, 1, 1.5.
func ExampleCentral2Slice() {
	y := []float64{0, 0.25, 1, 2.25, 4}
	d, err := stencil.Central2Slice(y, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	// Output:
	// [1 2 3]
}

// ExampleForward3Slice shows the one-sided estimate at the left boundary.
func ExampleForward3Slice() {
	y := []float64{0, 0.25, 1}
	d, _ := stencil.Forward3Slice(y, 0.5)
	fmt.Println(d)
	// Output:
	// [0]
}
