package demo

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/analysis"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/clients/scoring"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/reconcile"
)

func startStub(t *testing.T) *scoring.Client {
	t.Helper()
	srv := httptest.NewServer(NewServer(zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return scoring.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestStubExtractServesScenarioFixtures(t *testing.T) {
	client := startStub(t)

	data, err := client.Extract(context.Background(), "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
	require.NoError(t, err)

	assert.Equal(t, "BONK", data.CombinedData.Symbol)
	assert.Equal(t, 92.5, data.Coverage.Percentage)
	require.NotNil(t, data.ScoringData)
	assert.False(t, data.ScoringData.IsEmpty())
}

func TestStubExtractUnknownTokenIsLogicalFailure(t *testing.T) {
	client := startStub(t)

	_, err := client.Extract(context.Background(), "UnknownAddress999")

	var dataErr *scoring.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "no data", dataErr.Reason)
}

func TestStubScoreAppliesRealThresholds(t *testing.T) {
	client := startStub(t)
	byAddress := ScenarioByAddress()

	passing := reconcile.Resolve(byAddress["DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"].Token)
	result, err := client.Score(context.Background(), passing, nil)
	require.NoError(t, err)
	assert.True(t, result.Outcome.Passed)
	assert.Empty(t, result.Outcome.FailedChecks)
	assert.Equal(t, 84.2, result.Scores.Total)
	assert.Equal(t, 80.1, result.Scores.Timeframes["1h"])
	assert.NotEmpty(t, result.Scores.ReportMarkdown)

	failing := reconcile.Resolve(byAddress["FailedPrefilter00000001"].Token)
	result, err = client.Score(context.Background(), failing, nil)
	require.NoError(t, err)
	assert.False(t, result.Outcome.Passed)
	assert.Len(t, result.Outcome.FailedChecks, 8)
	assert.NotContains(t, result.Outcome.FailedChecks, "degen_audit_pass")
}

func TestStubScoreMissingAddressIsValidationDetail(t *testing.T) {
	client := startStub(t)

	_, err := client.Score(context.Background(), domain.ReconciledTokenRecord{}, nil)

	var svcErr *scoring.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 422, svcErr.StatusCode)
	assert.Equal(t, "token.token_address is required", svcErr.Detail)
}

func TestStubRankOrdersByGrowthAndScoresDescending(t *testing.T) {
	client := startStub(t)
	rows := RankingFixtures()[domain.TabSurging]

	result, err := client.Rank(context.Background(), domain.TabSurging, rows)
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)

	assert.Equal(t, "SURGE1xxx", result.Rows[0].ID)
	assert.Equal(t, "SURGE2xxx", result.Rows[1].ID)
	assert.Equal(t, "SURGE3xxx", result.Rows[2].ID)

	require.NotNil(t, result.Rows[0].Score)
	assert.Equal(t, 95.0, *result.Rows[0].Score)
	assert.Equal(t, 90.0, *result.Rows[1].Score)
	assert.Equal(t, 85.0, *result.Rows[2].Score)
}

func TestStubRankEmptyRowsRejected(t *testing.T) {
	client := startStub(t)

	_, err := client.Rank(context.Background(), domain.TabAll, nil)
	require.Error(t, err, "the client rejects empty row sets before any request")
}

func TestEndToEndScenariosThroughOrchestrator(t *testing.T) {
	client := startStub(t)
	orch := analysis.New(client, analysis.Hooks{}, zerolog.Nop())

	view, err := orch.Analyze(context.Background(), "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
	require.NoError(t, err)
	assert.True(t, view.Passed())
	require.NotNil(t, view.Scores)
	assert.Equal(t, "84.2", view.Scores.Total)
	assert.Equal(t, domain.CoverageExcellent, view.CoverageBucket)

	view, err = orch.Analyze(context.Background(), "FailedPrefilter00000001")
	require.NoError(t, err)
	assert.False(t, view.Passed())
	assert.Nil(t, view.Scores)
	assert.Equal(t, []string{
		"Token is younger than 1 hour",
		"Liquidity is not 100% locked",
		"Volume (5m) is less than $5,000",
		"Has 100 or fewer holders",
		"Has only 1 liquidity pool",
		"LP/MCap ratio is less than 2%",
		"Top 10 holders own 30% or more",
		"Bundle percentage is 40% or higher",
	}, view.Prefilter.Messages)

	rankView, err := orch.Rank(context.Background(), domain.TabNew, RankingFixtures()[domain.TabNew])
	require.NoError(t, err)
	require.Len(t, rankView.Rows, 3)
	assert.Equal(t, 1, rankView.Rows[0].Rank)
	assert.Equal(t, "NEW1xxx", rankView.Rows[0].ID)
	assert.True(t, rankView.Stats.Defined)
	assert.Equal(t, 90.0, rankView.Stats.Mean)
	assert.Equal(t, 95.0, rankView.Stats.Max)
}
