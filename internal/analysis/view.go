package analysis

import (
	"sort"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/prefilter"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/ranking"
)

// TimeframeScore is one horizon's sub-score, formatted for display.
type TimeframeScore struct {
	Label string
	Score string
}

// ScoreView is the presentation-ready result of one analysis run. When the
// pre-filter failed, Scores is nil and only the explanation is rendered;
// the backend's numbers are not meaningful on a failed verdict.
type ScoreView struct {
	Token domain.ReconciledTokenRecord

	CoveragePercent float64
	CoverageBucket  domain.CoverageBucket
	LowCoverage     bool

	Prefilter prefilter.Explanation

	Scores         *ScoreCardView
	Timeframes     []TimeframeScore
	ReportMarkdown string
}

// ScoreCardView carries the formatted score cards for a passing token.
type ScoreCardView struct {
	Total      string
	Momentum   string
	SmartMoney string
	Sentiment  string
	Event      string
}

// Passed reports whether the analyzed token cleared the pre-filter.
func (v *ScoreView) Passed() bool {
	return v.Prefilter.Passed()
}

// timeframeOrder fixes the display order of the known horizons.
var timeframeOrder = map[string]int{"5m": 0, "15m": 1, "30m": 2, "1h": 3}

// buildScoreView assembles the view model from a completed run.
func buildScoreView(token domain.ReconciledTokenRecord, coveragePct float64, lowCoverage bool, result domain.PreFilterOutcome, scores domain.ScoreBundle) *ScoreView {
	view := &ScoreView{
		Token:           token,
		CoveragePercent: domain.ClampCoverage(coveragePct),
		CoverageBucket:  domain.BucketCoverage(coveragePct),
		LowCoverage:     lowCoverage,
		Prefilter:       prefilter.Explain(result.Passed, result.FailedChecks),
	}

	if !result.Passed {
		return view
	}

	view.Scores = &ScoreCardView{
		Total:      ranking.FormatScore(scores.Total),
		Momentum:   ranking.FormatScore(scores.Momentum),
		SmartMoney: ranking.FormatScore(scores.SmartMoney),
		Sentiment:  ranking.FormatScore(scores.Sentiment),
		Event:      ranking.FormatScore(scores.Event),
	}
	view.Timeframes = sortTimeframes(scores.Timeframes)
	view.ReportMarkdown = scores.ReportMarkdown

	return view
}

// sortTimeframes orders breakdown entries 5m/15m/30m/1h, with any labels the
// backend adds later appended alphabetically.
func sortTimeframes(scores map[string]float64) []TimeframeScore {
	if len(scores) == 0 {
		return nil
	}

	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		oi, iKnown := timeframeOrder[labels[i]]
		oj, jKnown := timeframeOrder[labels[j]]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return labels[i] < labels[j]
		}
	})

	out := make([]TimeframeScore, 0, len(labels))
	for _, label := range labels {
		out = append(out, TimeframeScore{Label: label, Score: ranking.FormatScore(scores[label])})
	}
	return out
}
