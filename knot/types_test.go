package knot_test

import (
	"testing"

	"github.com/aeronauty/spacing/knot"
	"github.com/stretchr/testify/assert"
)

// TestSequence_Clone verifies Clone returns an independent copy.
func TestSequence_Clone(t *testing.T) {
	orig := knot.Sequence{{S: 0, F: 1}, {S: 1, F: 0.5}}
	cp := orig.Clone()

	cp[0].F = 99
	assert.Equal(t, 1.0, orig[0].F, "mutating the clone must not touch the original")
	assert.Nil(t, knot.Sequence(nil).Clone(), "nil stays nil")
}

// TestSequence_Accessors verifies Positions and Spacings projections.
func TestSequence_Accessors(t *testing.T) {
	seq := knot.Sequence{{S: 0, F: 1}, {S: 0.25, F: 0.1}, {S: 1, F: 2}}

	assert.Equal(t, []float64{0, 0.25, 1}, seq.Positions())
	assert.Equal(t, []float64{1, 0.1, 2}, seq.Spacings())
}
