// Package distribute places n points on [0,1] so that their local spacing
// follows a piecewise-linear spacing function F(s) described by knots.
//
// 🚀 How does it work?
//
//	The problem is inverse: spacing is prescribed as a function of
//	position, not of point index. The pipeline solves it in three pure
//	stages, all in closed form:
//	  1. Integrate 1/F(s) over each linear segment to get a parametric
//	     position T at every knot (ParametricPositions).
//	  2. Rescale spacings and parametric positions so the total
//	     parametric length is exactly 1 (Rescale).
//	  3. For each uniform parametric target tᵢ = i/(n−1), locate the
//	     containing segment and invert the integral analytically to get
//	     the physical position sᵢ (Invert).
//	Distribute chains the three stages behind one call.
//
// ✨ Key features:
//   - Closed-form per-segment integration: ΔT = (ΔS/ΔF)·ln(F₁/F₀)
//   - Asymptotic branches where adjacent spacings are nearly equal and
//     the exact expressions become removable 0/0 singularities
//   - Exact unit endpoints: s₀ = 0 and s_{n−1} = 1 by assignment, never
//     by formula, so no boundary roundoff survives
//   - Typed sentinel errors; no logging, no fallbacks inside the core
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/aeronauty/spacing/distribute"
//	  "github.com/aeronauty/spacing/knot"
//	)
//
//	seq, _ := knot.Normalize(rawKnots)
//	si, err := distribute.Distribute(seq, 65)
//	if err != nil {
//	  // ErrInvalidPointCount, ErrNonPositiveSpacing, ErrDegenerateScale,
//	  // or knot.ErrInvalidKnotData
//	}
//
// On failure, callers that must render something (interactive editors)
// conventionally fall back to the uniform sequence sᵢ = i/(n−1). That
// recovery is a caller policy; this package never substitutes output.
//
// Performance:
//
//   - Time:   O(k·n) worst case for k knots (linear segment scan per
//     target); k is small (tens) by construction, so effectively O(n)
//   - Memory: O(k + n)
//
// All functions are pure and reentrant; concurrent calls need no
// coordination.
package distribute
