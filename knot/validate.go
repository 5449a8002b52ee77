// Package knot - normalization of raw knot lists into valid Sequences.
//
// Normalize is the single entry point collaborators (editors, import
// parsers) call before handing knots to the distribute package. It is a
// repair pass, not a gatekeeper: every defect an interactive editor can
// produce (unsorted, out-of-range, too-small, too-few) is fixed in a
// defined way, and only non-numeric data is rejected.
//
// Design principles:
//   - Deterministic, side-effect free; the input slice is never mutated.
//   - No logging, no panics - only ErrInvalidKnotData from errors.go.
//   - O(k log k) time for k knots (dominated by the sort), O(k) space.
package knot

import "sort"

// Normalize turns an arbitrary candidate knot list into a valid Sequence.
//
// Contract, in order of application:
//  1. Non-numeric values (NaN, ±Inf) anywhere ⇒ ErrInvalidKnotData.
//  2. Fewer than two knots ⇒ the canonical uniform pair (0,1),(1,1).
//  3. Sort ascending by S (stable, so duplicate-S knots keep their order).
//  4. Clamp every S into [0,1].
//  5. Force S[0] = 0 and S[last] = 1, overwriting whatever was supplied.
//  6. Floor every F at MinSpacing.
//
// Steps 3–6 are normalization, not error recovery: the output always
// satisfies the Sequence invariants documented in types.go.
func Normalize(candidate []Knot) (Sequence, error) {
	for i := range candidate {
		if !isFinite(candidate[i].S) || !isFinite(candidate[i].F) {
			return nil, ErrInvalidKnotData
		}
	}

	// Canonical default: uniform spacing over the whole domain.
	if len(candidate) < 2 {
		return Sequence{{S: 0, F: 1}, {S: 1, F: 1}}, nil
	}

	out := make(Sequence, len(candidate))
	copy(out, candidate)

	sort.SliceStable(out, func(i, j int) bool { return out[i].S < out[j].S })

	var k int // loop index
	for k = range out {
		out[k].S = clamp01(out[k].S)
		if out[k].F < MinSpacing {
			out[k].F = MinSpacing
		}
	}

	// Endpoints are forced, not checked: the domain is [0,1] by definition.
	out[0].S = 0
	out[len(out)-1].S = 1

	return out, nil
}

// clamp01 clamps v into the closed unit interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
