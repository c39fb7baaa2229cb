package scoring

import "github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"

// extractRequest is the body of POST /extract.
type extractRequest struct {
	TokenAddress string `json:"token_address"`
}

// extractEnvelope is the raw wire shape of an extract response. Success may
// be false even on HTTP 200 when extraction logically failed.
type extractEnvelope struct {
	Success bool         `json:"success"`
	Data    *ExtractData `json:"data"`
	Message string       `json:"message"`
}

// ExtractData is the usable portion of a successful extraction.
type ExtractData struct {
	CombinedData domain.RawTokenRecord `json:"combined_data"`
	ScoringData  *domain.MetricsBundle `json:"scoring_data,omitempty"`
	Coverage     Coverage              `json:"coverage"`
}

// Coverage reports what fraction of the expected fields extraction found.
type Coverage struct {
	Percentage float64 `json:"percentage"`
}

// scoreRequest is the body of POST /score.
type scoreRequest struct {
	Token   domain.ReconciledTokenRecord `json:"token"`
	Metrics *domain.MetricsBundle        `json:"metrics,omitempty"`
}

// scoreEnvelope is the raw wire shape of a score response.
type scoreEnvelope struct {
	PassedPrefilter      bool               `json:"passed_prefilter"`
	FailedChecks         []string           `json:"failed_checks"`
	Total                float64            `json:"total"`
	Momentum             float64            `json:"momentum"`
	SmartMoney           float64            `json:"smart_money"`
	Sentiment            float64            `json:"sentiment"`
	Event                float64            `json:"event"`
	NewScores            map[string]float64 `json:"new_scores,omitempty"`
	TrenchReportMarkdown string             `json:"trench_report_markdown,omitempty"`
}

// ScoreResult is the decoded outcome of a score call: the pre-filter verdict
// plus the score bundle. When the verdict is a fail the bundle's numbers are
// not meaningful and callers must not render them.
type ScoreResult struct {
	Outcome domain.PreFilterOutcome
	Scores  domain.ScoreBundle
}

// rankRequest is the body of POST /rank.
type rankRequest struct {
	Tab  domain.RankingTab   `json:"tab"`
	Rows []domain.RankingRow `json:"rows"`
}

// RankResult is the decoded outcome of a rank call. Row order is the
// backend's ranking order.
type RankResult struct {
	Tab  domain.RankingTab   `json:"tab"`
	Rows []domain.RankingRow `json:"rows"`
}
