package distribute

// Re-export private segment formulas so branch-continuity tests can pin
// both sides of the asymptotic switch without widening the public API.

const AsymptoticThreshold = asymptoticThreshold

var (
	SegmentDelta       = segmentDelta
	SegmentDeltaExact  = segmentDeltaExact
	SegmentDeltaSeries = segmentDeltaSeries

	LocateSegment   = locateSegment
	InvertInSegment = invertInSegment
	InvertExact     = invertExact
	InvertSeries    = invertSeries
)
