package knot

import "math"

// MinSpacing is the floor applied to every spacing weight F during
// normalization. It guarantees the downstream integrator never divides by
// zero or takes the log of a non-positive value. Flooring (rather than
// rejecting) non-positive F is intentional caller-friendliness: editor
// input routinely dips to zero mid-drag.
const MinSpacing = 0.01

// Knot is one control point (S, F) of a piecewise-linear spacing function.
//
//   - S — position in [0,1].
//   - F — positive spacing weight; smaller F ⇒ finer local point density.
type Knot struct {
	S float64
	F float64
}

// Sequence is an ordered list of knots describing the full spacing
// function. A valid Sequence has length ≥ 2, S values sorted ascending,
// S[0] == 0, S[len-1] == 1, and every F > 0. Normalize produces valid
// sequences from arbitrary input; the distribute package assumes them.
type Sequence []Knot

// New builds a single validated knot. It fails with ErrInvalidKnotData if
// either coordinate is NaN or ±Inf. Range and ordering are Sequence-level
// concerns handled by Normalize, not here.
func New(s, f float64) (Knot, error) {
	if !isFinite(s) || !isFinite(f) {
		return Knot{}, ErrInvalidKnotData
	}

	return Knot{S: s, F: f}, nil
}

// Clone returns a fresh copy of the sequence. Callers that mutate knots
// in place (editors) should clone before handing a sequence to compute.
func (q Sequence) Clone() Sequence {
	if q == nil {
		return nil
	}
	out := make(Sequence, len(q))
	copy(out, q)

	return out
}

// Positions returns the S coordinates of the sequence as a fresh slice.
func (q Sequence) Positions() []float64 {
	out := make([]float64, len(q))
	for i := range q {
		out[i] = q[i].S
	}

	return out
}

// Spacings returns the F coordinates of the sequence as a fresh slice.
func (q Sequence) Spacings() []float64 {
	out := make([]float64, len(q))
	for i := range q {
		out[i] = q[i].F
	}

	return out
}

// isFinite reports whether v is an ordinary float64 (not NaN, not ±Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
