package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/prefilter"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/reconcile"
)

func TestScenariosAreDeterministic(t *testing.T) {
	first := Scenarios()
	second := Scenarios()
	require.Equal(t, first, second, "fixture generation must be reproducible")

	ids := make([]string, 0, len(first))
	for _, s := range first {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"high-quality", "average-token", "failed-prefilter", "risky-token"}, ids)
}

func TestScenarioRecordsCarryEveryOptionalField(t *testing.T) {
	for _, s := range Scenarios() {
		t.Run(s.ID, func(t *testing.T) {
			require.NotEmpty(t, s.Token.Address)
			assert.NotNil(t, s.Token.AgeMinutes)
			assert.NotNil(t, s.Token.Audit)
			assert.NotNil(t, s.Token.LiquidityLockedPercent)
			assert.NotNil(t, s.Token.Volume5mUSD)
			assert.NotNil(t, s.Token.HoldersCount)
			assert.NotNil(t, s.Token.LPCount)
			assert.NotNil(t, s.Token.LPMcapRatio)
			assert.NotNil(t, s.Token.Top10HoldersPercent)
			assert.NotNil(t, s.Token.BundlePercent)
			require.NotNil(t, s.Metrics)
			assert.False(t, s.Metrics.IsEmpty())
			assert.Greater(t, s.Coverage, 0.0)
		})
	}
}

func TestFailedPrefilterScenarioFailsExactlyItsClaimedChecks(t *testing.T) {
	scenario := ScenarioByAddress()["FailedPrefilter00000001"]
	require.Equal(t, "failed-prefilter", scenario.ID)

	failed := evaluatePrefilter(reconcile.Resolve(scenario.Token))
	assert.Equal(t, []string{
		"age_gt_1h",
		"liquidity_locked_100",
		"volume_5m_usd_gte_5000",
		"holders_gt_100",
		"lp_count_gt_1",
		"lp_mcap_ratio_gt_002",
		"top10_pct_lt_30",
		"bundle_pct_lt_40",
	}, failed)

	explanation := prefilter.Explain(false, failed)
	assert.Len(t, explanation.Messages, len(failed), "every failed check must have a display string")
	for _, msg := range explanation.Messages {
		assert.NotContains(t, failed, msg, "raw identifiers must not leak into the display")
	}
}

func TestHighQualityScenarioPassesEveryCheck(t *testing.T) {
	scenario := ScenarioByAddress()["DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"]
	require.Equal(t, "high-quality", scenario.ID)

	failed := evaluatePrefilter(reconcile.Resolve(scenario.Token))
	assert.Empty(t, failed)
}

func TestRiskyScenarioPassesAgeAndAudit(t *testing.T) {
	scenario := ScenarioByAddress()["RISKYxxx123456789"]
	require.Equal(t, "risky-token", scenario.ID)

	failed := evaluatePrefilter(reconcile.Resolve(scenario.Token))
	assert.NotContains(t, failed, "age_gt_1h")
	assert.NotContains(t, failed, "degen_audit_pass")
	assert.Contains(t, failed, "liquidity_locked_100")
	assert.Contains(t, failed, "holders_gt_100")
	assert.Contains(t, failed, "bundle_pct_lt_40")
}

func TestRankingFixturesCoverEveryTab(t *testing.T) {
	fixtures := RankingFixtures()
	for _, tab := range []domain.RankingTab{domain.TabNew, domain.TabSurging, domain.TabAll} {
		rows := fixtures[tab]
		require.Len(t, rows, 3, "tab %s", tab)
		for _, row := range rows {
			assert.NotEmpty(t, row.ID)
			assert.NotEmpty(t, row.Symbol)
			assert.Positive(t, row.McNow)
			assert.Positive(t, row.VolToMc)
			assert.Nil(t, row.Score, "request fixtures carry no backend score")
		}
	}
}
