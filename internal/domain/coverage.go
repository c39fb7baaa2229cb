package domain

// CoverageBucket groups a coverage percentage for presentation.
type CoverageBucket string

const (
	CoverageExcellent CoverageBucket = "excellent"
	CoverageGood      CoverageBucket = "good"
	CoverageLimited   CoverageBucket = "limited"
	CoverageLow       CoverageBucket = "low"
)

// ClampCoverage limits a coverage percentage to [0, 100] for display.
// The value itself is computed by the extraction backend; this layer only
// guards against out-of-range noise.
func ClampCoverage(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BucketCoverage classifies a coverage percentage. Input is clamped first.
func BucketCoverage(pct float64) CoverageBucket {
	pct = ClampCoverage(pct)
	switch {
	case pct >= 80:
		return CoverageExcellent
	case pct >= 60:
		return CoverageGood
	case pct >= 40:
		return CoverageLimited
	default:
		return CoverageLow
	}
}
