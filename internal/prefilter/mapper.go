// Package prefilter translates the backend's machine-readable pre-filter
// verdict into a presentation-ready explanation.
package prefilter

// Status is the presentation state of a pre-filter verdict.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Explanation is the human-readable form of a pre-filter outcome.
type Explanation struct {
	Status   Status
	Messages []string
}

// Passed reports whether the explanation describes a passing verdict.
func (e Explanation) Passed() bool { return e.Status == StatusPassed }

// failureReasons maps the nine known check identifiers to display strings.
// Identifiers are the backend's wire names; the strings match the product's
// published requirement wording.
var failureReasons = map[string]string{
	"age_gt_1h":              "Token is younger than 1 hour",
	"degen_audit_pass":       "Failed security audit (honeypot/blacklist/high tax)",
	"liquidity_locked_100":   "Liquidity is not 100% locked",
	"volume_5m_usd_gte_5000": "Volume (5m) is less than $5,000",
	"holders_gt_100":         "Has 100 or fewer holders",
	"lp_count_gt_1":          "Has only 1 liquidity pool",
	"lp_mcap_ratio_gt_002":   "LP/MCap ratio is less than 2%",
	"top10_pct_lt_30":        "Top 10 holders own 30% or more",
	"bundle_pct_lt_40":       "Bundle percentage is 40% or higher",
}

// KnownChecks returns the identifiers the mapper has explanations for.
func KnownChecks() []string {
	checks := make([]string, 0, len(failureReasons))
	for id := range failureReasons {
		checks = append(checks, id)
	}
	return checks
}

// Explain converts an outcome into its presentation form. A passing outcome
// always yields empty messages, whatever noise FailedChecks carries. Unknown
// identifiers are surfaced verbatim so new backend checks degrade gracefully
// instead of breaking the display.
func Explain(passed bool, failedChecks []string) Explanation {
	if passed {
		return Explanation{Status: StatusPassed, Messages: []string{}}
	}

	messages := make([]string, 0, len(failedChecks))
	for _, check := range failedChecks {
		if reason, ok := failureReasons[check]; ok {
			messages = append(messages, reason)
		} else {
			messages = append(messages, check)
		}
	}

	return Explanation{Status: StatusFailed, Messages: messages}
}
