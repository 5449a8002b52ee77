package knot_test

import (
	"fmt"

	"github.com/aeronauty/spacing/knot"
)

// ExampleNormalize demonstrates repairing a raw editor knot list:
// unsorted positions, a spacing dragged down to zero, and endpoints that
// drifted off the domain boundaries.
func ExampleNormalize() {
	seq, err := knot.Normalize([]knot.Knot{
		{S: 0.98, F: 0.4},
		{S: 0.03, F: 1.0},
		{S: 0.5, F: 0.0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, k := range seq {
		fmt.Printf("S=%.2f F=%.2f\n", k.S, k.F)
	}
	// Output:
	// S=0.00 F=1.00
	// S=0.50 F=0.01
	// S=1.00 F=0.40
}
