// Package distribute - closed-form segment integration of 1/F(s).
//
// Within one segment [Sⱼ, Sⱼ₊₁] the spacing function is linear, so the
// parametric increment has an exact antiderivative:
//
//	ΔT = ∫ ds/F(s) = (ΔS/ΔF)·ln(Fⱼ₊₁/Fⱼ)
//
// As Fⱼ₊₁ → Fⱼ the expression tends to ΔS/Fⱼ but evaluates as 0/0, so a
// second branch replaces it with a Padé form of the same limit. The two
// branches agree to better than 1e−9 at the switch point.
//
// Design principles:
//   - Deterministic, side-effect free; inputs never mutated.
//   - Strict sentinels only; no fmt.Errorf where a sentinel suffices.
//   - O(k) time for k knots, O(k) space for the output.
package distribute

import (
	"math"

	"github.com/aeronauty/spacing/knot"
)

// asymptoticThreshold routes segment formulas between the exact
// closed form and its asymptotic expansion. Both the integrator (on
// ε = ΔF/Fⱼ) and the inverter (on Bⱼ = ΔF/ΔS) switch at this magnitude.
// The value is part of the numerical design; do not tune it.
const asymptoticThreshold = 1e-3

// ParametricPositions integrates 1/F(s) knot by knot and returns the
// unscaled parametric position T at each knot, with T[0] = 0 and
// T[j+1] = T[j] + ΔTⱼ.
//
// Contracts:
//   - seq must hold at least two knots ⇒ knot.ErrInvalidKnotData.
//   - every F must be positive ⇒ ErrNonPositiveSpacing.
//
// Complexity: O(k) time, O(k) space.
func ParametricPositions(seq knot.Sequence) ([]float64, error) {
	if len(seq) < 2 {
		return nil, knot.ErrInvalidKnotData
	}
	for j := range seq {
		if seq[j].F <= 0 {
			return nil, ErrNonPositiveSpacing
		}
	}

	t := make([]float64, len(seq))
	for j := 0; j+1 < len(seq); j++ {
		t[j+1] = t[j] + segmentDelta(seq[j], seq[j+1])
	}

	return t, nil
}

// segmentDelta computes ΔT for one segment, routing on ε = ΔF/Fⱼ.
func segmentDelta(a, b knot.Knot) float64 {
	eps := (b.F - a.F) / a.F
	if math.Abs(eps) >= asymptoticThreshold {
		return segmentDeltaExact(a, b)
	}

	return segmentDeltaSeries(a, b)
}

// segmentDeltaExact is the well-conditioned branch: (ΔS/ΔF)·ln(F₁/F₀).
// Only called with |ΔF/F₀| ≥ asymptoticThreshold, so ΔF ≠ 0.
func segmentDeltaExact(a, b knot.Knot) float64 {
	return (b.S - a.S) / (b.F - a.F) * math.Log(b.F/a.F)
}

// segmentDeltaSeries is the near-constant-spacing branch: a third-order
// Padé form of ln(1+ε)/ε that stays finite and accurate as ε → 0, where
// the exact expression suffers catastrophic cancellation.
func segmentDeltaSeries(a, b knot.Knot) float64 {
	eps := (b.F - a.F) / a.F

	return (b.S - a.S) / a.F * (1 + eps/6) / (1 + 2*eps/3)
}
