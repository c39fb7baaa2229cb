package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainPassed(t *testing.T) {
	e := Explain(true, nil)
	assert.Equal(t, StatusPassed, e.Status)
	assert.True(t, e.Passed())
	assert.Empty(t, e.Messages)
}

// A passing verdict ignores any identifiers the backend left in the payload.
func TestExplainPassedIgnoresNoise(t *testing.T) {
	e := Explain(true, []string{"holders_gt_100", "garbage_check"})
	assert.Equal(t, StatusPassed, e.Status)
	assert.Empty(t, e.Messages)
}

func TestExplainKnownChecks(t *testing.T) {
	e := Explain(false, []string{"age_gt_1h", "volume_5m_usd_gte_5000"})

	assert.Equal(t, StatusFailed, e.Status)
	assert.False(t, e.Passed())
	assert.Equal(t, []string{
		"Token is younger than 1 hour",
		"Volume (5m) is less than $5,000",
	}, e.Messages)
}

func TestExplainPreservesOrder(t *testing.T) {
	e := Explain(false, []string{"bundle_pct_lt_40", "age_gt_1h", "top10_pct_lt_30"})

	assert.Equal(t, []string{
		"Bundle percentage is 40% or higher",
		"Token is younger than 1 hour",
		"Top 10 holders own 30% or more",
	}, e.Messages)
}

// Unknown identifiers surface verbatim so new backend checks still display.
func TestExplainUnknownCheckVerbatim(t *testing.T) {
	e := Explain(false, []string{"dev_wallet_lt_5", "holders_gt_100"})

	assert.Equal(t, []string{
		"dev_wallet_lt_5",
		"Has 100 or fewer holders",
	}, e.Messages)
}

// A failure with no identifiers is an opaque failure, not a pass.
func TestExplainOpaqueFailure(t *testing.T) {
	e := Explain(false, nil)
	assert.Equal(t, StatusFailed, e.Status)
	assert.Empty(t, e.Messages)
}

func TestKnownChecksCoversAllNine(t *testing.T) {
	checks := KnownChecks()
	assert.Len(t, checks, 9)
	for _, id := range checks {
		e := Explain(false, []string{id})
		assert.NotEqual(t, []string{id}, e.Messages, "identifier %q should map to a readable reason", id)
	}
}
