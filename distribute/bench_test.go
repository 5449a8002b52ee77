package distribute_test

import (
	"testing"

	"github.com/aeronauty/spacing/distribute"
	"github.com/aeronauty/spacing/knot"
)

// benchmarkDistribute runs the full pipeline on k evenly placed knots
// with alternating fine/coarse spacing and n output points.
func benchmarkDistribute(b *testing.B, k, n int) {
	seq := make(knot.Sequence, k)
	for j := 0; j < k; j++ {
		f := 1.0
		if j%2 == 1 {
			f = 0.05 // alternate fine spacing to exercise both branches
		}
		seq[j] = knot.Knot{S: float64(j) / float64(k-1), F: f}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distribute.Distribute(seq, n); err != nil {
			b.Fatalf("Distribute failed: %v", err)
		}
	}
}

// BenchmarkDistribute_TypicalEditor matches the interactive sweet spot:
// a handful of knots, a mid-sized grid.
func BenchmarkDistribute_TypicalEditor(b *testing.B) {
	benchmarkDistribute(b, 5, 65)
}

// BenchmarkDistribute_ManyKnots stresses the linear segment scan.
func BenchmarkDistribute_ManyKnots(b *testing.B) {
	benchmarkDistribute(b, 40, 200)
}

// BenchmarkNormalize measures the repair pass on unsorted input.
func BenchmarkNormalize(b *testing.B) {
	raw := make([]knot.Knot, 32)
	for j := range raw {
		raw[j] = knot.Knot{S: float64((j * 7) % 32), F: float64(j%5) - 1}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knot.Normalize(raw); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}
