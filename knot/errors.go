package knot

import "errors"

var (
	// ErrInvalidKnotData indicates non-numeric knot values (NaN or ±Inf),
	// or a sequence too short for the strict (non-normalizing) code paths.
	ErrInvalidKnotData = errors.New("knot: invalid knot data")
)
