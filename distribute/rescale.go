package distribute

import (
	"math"

	"github.com/aeronauty/spacing/knot"
)

// Rescale normalizes a knot sequence and its parametric positions so the
// total parametric length is exactly 1. With TN = T[last]:
//
//	F'ⱼ = Fⱼ·TN    T'ⱼ = Tⱼ/TN
//
// Scaling F by TN changes only the absolute scale of the spacing
// function, never its shape: integrating 1/F' reproduces T' with unit
// total length, which is what the inverter assumes.
//
// Contracts:
//   - len(t) == len(seq), both ≥ 2 ⇒ knot.ErrInvalidKnotData.
//   - TN must be positive and finite ⇒ ErrDegenerateScale.
//
// Both outputs are fresh slices; inputs are never mutated.
//
// Complexity: O(k) time and space.
func Rescale(seq knot.Sequence, t []float64) (knot.Sequence, []float64, error) {
	if len(seq) < 2 || len(t) != len(seq) {
		return nil, nil, knot.ErrInvalidKnotData
	}

	tn := t[len(t)-1]
	if tn <= 0 || math.IsNaN(tn) || math.IsInf(tn, 0) {
		return nil, nil, ErrDegenerateScale
	}

	scaledSeq := make(knot.Sequence, len(seq))
	scaledT := make([]float64, len(t))
	for j := range seq {
		scaledSeq[j] = knot.Knot{S: seq[j].S, F: seq[j].F * tn}
		scaledT[j] = t[j] / tn
	}

	return scaledSeq, scaledT, nil
}
