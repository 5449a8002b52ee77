// Package distribute - per-point inversion of the integrated spacing map.
//
// Given rescaled knots and parametric positions T with T[last] = 1, each
// uniform target t ∈ (0,1) lies in exactly one segment, where the
// integral has the closed-form inverse
//
//	s = Sⱼ + Fⱼ·(e^ε − 1)/Bⱼ    with Bⱼ = ΔF/ΔS, ε = Bⱼ·(t − Tⱼ)
//
// As Bⱼ → 0 the expression is a removable 0/0 singularity, so a series
// branch takes over below the shared threshold.
//
// Design principles:
//   - Deterministic, side-effect free; inputs never mutated.
//   - Half-open segment tie-break Tⱼ < t ≤ Tⱼ₊₁, so knot-aligned targets
//     resolve consistently to the segment on their left.
//   - O(k) scan per target; knot counts are tens, not millions, so a
//     binary search would buy nothing.
package distribute

import (
	"math"

	"github.com/aeronauty/spacing/knot"
)

// Invert maps n uniformly spaced parametric targets tᵢ = i/(n−1) back to
// physical positions sᵢ using the scaled knots and parametric positions
// produced by Rescale.
//
// The two boundary points are assigned directly — s₀ = 0, s_{n−1} = 1 —
// rather than computed, so the output carries no residual roundoff at the
// domain ends. This is deliberate policy, not an optimization.
//
// Contracts:
//   - len(t) == len(seq), both ≥ 2 ⇒ knot.ErrInvalidKnotData.
//   - n ≥ 2 ⇒ ErrInvalidPointCount.
//
// Complexity: O(k·n) time worst case, O(n) space.
func Invert(seq knot.Sequence, t []float64, n int) ([]float64, error) {
	if len(seq) < 2 || len(t) != len(seq) {
		return nil, knot.ErrInvalidKnotData
	}
	if n < 2 {
		return nil, ErrInvalidPointCount
	}

	si := make([]float64, n)
	si[0] = 0
	si[n-1] = 1

	step := 1 / float64(n-1)
	for i := 1; i < n-1; i++ {
		ti := float64(i) * step
		j := locateSegment(t, ti)
		si[i] = invertInSegment(seq[j], seq[j+1], t[j], ti)
	}

	return si, nil
}

// locateSegment returns the index j of the segment whose half-open
// parametric interval (T[j], T[j+1]] contains ti. Targets at or below
// T[0] resolve to segment 0; if roundoff pushes ti past T[last], the
// last segment absorbs it.
func locateSegment(t []float64, ti float64) int {
	for j := 0; j+1 < len(t); j++ {
		if t[j] < ti && ti <= t[j+1] {
			return j
		}
	}

	return len(t) - 2
}

// invertInSegment solves for the physical position inside one segment,
// routing on the segment slope Bⱼ = ΔF/ΔS.
func invertInSegment(a, b knot.Knot, ta, ti float64) float64 {
	bj := (b.F - a.F) / (b.S - a.S)
	if math.Abs(bj) >= asymptoticThreshold {
		return invertExact(a, b, ta, ti)
	}

	return invertSeries(a, b, ta, ti)
}

// invertExact is the well-conditioned branch: s = Sⱼ + Fⱼ·(e^ε − 1)/Bⱼ.
func invertExact(a, b knot.Knot, ta, ti float64) float64 {
	bj := (b.F - a.F) / (b.S - a.S)
	eps := bj * (ti - ta)

	return a.S + a.F*(math.Exp(eps)-1)/bj
}

// invertSeries is the near-constant-spacing branch: the 4-term truncation
// of (e^ε − 1)/ε keeps the same analytic function accurate as Bⱼ → 0.
func invertSeries(a, b knot.Knot, ta, ti float64) float64 {
	bj := (b.F - a.F) / (b.S - a.S)
	eps := bj * (ti - ta)

	return a.S + a.F*(1+eps/2+eps*eps/6+eps*eps*eps/24)*(ti-ta)
}
