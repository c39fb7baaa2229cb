package ranking

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Display formatting thresholds. These are part of the view contract: the
// table renders "2.5M" for a 2,500,000 market cap and "500.0K" for 500,000.
const (
	millionBoundary  = 1_000_000
	thousandBoundary = 1_000

	// Prices below this render in scientific notation; micro-cap tokens
	// routinely trade at 1e-7 and fixed-point would show all zeros.
	scientificPriceBelow = 0.01
)

// FormatCompact abbreviates a quantity at the 10^6 ("M") and 10^3 ("K")
// boundaries with one decimal. Values under 1,000 render plain with one
// decimal. The sign survives abbreviation (netflow can be negative).
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= millionBoundary:
		return fmt.Sprintf("%.1fM", v/millionBoundary)
	case abs >= thousandBoundary:
		return fmt.Sprintf("%.1fK", v/thousandBoundary)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

// FormatUSDCompact is FormatCompact with a dollar prefix.
func FormatUSDCompact(v float64) string {
	if v < 0 {
		return "-$" + FormatCompact(-v)
	}
	return "$" + FormatCompact(v)
}

// FormatPrice renders a token price: scientific notation below one cent,
// otherwise fixed-point with four decimals.
func FormatPrice(v float64) string {
	if v != 0 && math.Abs(v) < scientificPriceBelow {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
	return fmt.Sprintf("%.4f", v)
}

// FormatScore renders a category or total score with one decimal, the
// precision the comparison table uses.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatRankScore renders a backend rank score with four decimals; rank
// scores separate rows that agree to one decimal.
func FormatRankScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount(v int) string {
	return humanize.Comma(int64(v))
}

// ShortAddress truncates a token address for table display: first eight
// characters plus an ellipsis. Short identifiers pass through unchanged.
func ShortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8] + "..."
}
