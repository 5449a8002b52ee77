// Package knot defines the control points of a piecewise-linear spacing
// function and the normalization rules that make a raw knot list safe to
// integrate.
//
// A Knot is an ordered pair (S, F): S is a position in [0,1], F a positive
// spacing weight. Smaller F means points cluster more tightly around S.
// A Sequence of at least two knots, sorted ascending by S with S[0]=0 and
// S[last]=1, fully describes the spacing function F(s) by linear
// interpolation between adjacent knots.
//
// ✨ Key features:
//   - New: validated constructor — rejects NaN/±Inf instead of letting
//     malformed values propagate into the integrator
//   - Normalize: caller-friendly repair of editor/import input — sorts,
//     clamps positions into [0,1], forces the endpoints, floors spacings
//     at MinSpacing, and substitutes a canonical uniform pair when fewer
//     than two knots are supplied
//   - Sequence helpers: Clone, Positions, Spacings
//
// Normalize deliberately repairs rather than rejects: out-of-order,
// out-of-range, or too-small values are editor noise, not caller bugs.
// The only hard failure is non-numeric data (ErrInvalidKnotData).
//
// ⚙️ Usage:
//
//	import "github.com/aeronauty/spacing/knot"
//
//	seq, err := knot.Normalize([]knot.Knot{
//	  {S: 1.0, F: 0.3},  // unsorted input is fine
//	  {S: 0.0, F: 1.0},
//	  {S: 0.5, F: 0.1},
//	})
//	// seq is sorted, endpoints forced to 0 and 1, every F ≥ MinSpacing
//
// All functions are pure: inputs are never mutated, outputs are fresh
// slices, and concurrent use needs no coordination.
package knot
