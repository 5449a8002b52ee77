// Package distribute - unified entry point for the spacing pipeline.
//
// Distribute chains the three stages — ParametricPositions, Rescale,
// Invert — behind the single operation collaborators call. The stages
// stay exported so each can be exercised and reused on its own.
//
// Design principles:
//   - Strict sentinels: only errors from errors.go and knot.ErrInvalidKnotData.
//   - Validation up front; the stages then run on trusted data.
//   - No logging, no fallback output: on error the caller decides what to
//     render (conventionally the uniform sequence i/(n−1)).
package distribute

import "github.com/aeronauty/spacing/knot"

// Distribute computes n point positions on [0,1] whose local spacing
// follows the piecewise-linear spacing function described by seq.
//
// seq is expected to already satisfy the Sequence invariants — run raw
// input through knot.Normalize first. Distribute re-checks the cheap
// invariants rather than trusting the caller:
//
//   - fewer than two knots ⇒ knot.ErrInvalidKnotData
//   - n < 2 ⇒ ErrInvalidPointCount
//   - any F ≤ 0 ⇒ ErrNonPositiveSpacing
//   - degenerate integrated length ⇒ ErrDegenerateScale
//
// The result has exactly n entries, is non-decreasing, and starts and
// ends at exactly 0 and 1.
//
// Complexity: O(k·n) time worst case for k knots, O(k + n) space.
func Distribute(seq knot.Sequence, n int) ([]float64, error) {
	if len(seq) < 2 {
		return nil, knot.ErrInvalidKnotData
	}
	if n < 2 {
		return nil, ErrInvalidPointCount
	}

	// Stage 1 - unscaled parametric positions (checks F > 0).
	t, err := ParametricPositions(seq)
	if err != nil {
		return nil, err
	}

	// Stage 2 - rescale to unit parametric length.
	scaledSeq, scaledT, err := Rescale(seq, t)
	if err != nil {
		return nil, err
	}

	// Stage 3 - invert per uniform target.
	return Invert(scaledSeq, scaledT, n)
}
