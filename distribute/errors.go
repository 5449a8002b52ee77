package distribute

import "errors"

var (
	// ErrInvalidPointCount indicates a requested output count below two.
	ErrInvalidPointCount = errors.New("distribute: point count must be at least 2")
	// ErrNonPositiveSpacing indicates a knot with F ≤ 0 reached the
	// integrator. Unreachable after knot.Normalize; seeing it means the
	// caller bypassed normalization with a hand-built sequence.
	ErrNonPositiveSpacing = errors.New("distribute: spacing weights must be positive")
	// ErrDegenerateScale indicates the total parametric length came out
	// non-positive or non-finite (malformed knot geometry).
	ErrDegenerateScale = errors.New("distribute: degenerate parametric length")
)
