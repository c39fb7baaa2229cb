// Package ranking builds the presentation view model for multi-token
// comparison tables. Ordering is owned by the backend: a row's rank is its
// position in the response, never a local re-sort.
package ranking

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
)

// RowView is one formatted table row.
type RowView struct {
	Rank         int
	ID           string
	Symbol       string
	Name         string
	ShortAddress string

	Price     string
	MarketCap string
	Volume    string
	Holders   string
	Netflow   string
	Score     string
	RankScore string

	AtAllTimeHigh   bool
	DCAAccumulation bool

	// Row keeps the underlying metrics available to detail panes.
	Row domain.RankingRow
}

// SummaryStats aggregates scores over the row set. Defined is false for an
// empty set: the mean of nothing is undefined, not zero, and callers must
// guard before rendering.
type SummaryStats struct {
	Defined bool
	Count   int
	Mean    float64
	Max     float64
}

// RankingView is the complete comparison table view model for one tab.
type RankingView struct {
	Tab   domain.RankingTab
	Rows  []RowView
	Stats SummaryStats
}

// BuildView converts backend ranking rows into a formatted view. Input order
// is preserved: rank N is position N+1. Absent scores count as 0 toward the
// mean, matching how the table renders them.
func BuildView(tab domain.RankingTab, rows []domain.RankingRow) RankingView {
	view := RankingView{
		Tab:  tab,
		Rows: make([]RowView, 0, len(rows)),
	}

	if len(rows) == 0 {
		return view
	}

	scores := make([]float64, 0, len(rows))
	for i, row := range rows {
		score := row.ScoreOrZero()
		scores = append(scores, score)

		view.Rows = append(view.Rows, RowView{
			Rank:            i + 1,
			ID:              row.ID,
			Symbol:          row.Symbol,
			Name:            row.Name,
			ShortAddress:    ShortAddress(row.ID),
			Price:           FormatPrice(row.PriceNow),
			MarketCap:       FormatUSDCompact(row.McNow),
			Volume:          FormatUSDCompact(row.VolNow),
			Holders:         FormatCount(row.HoldersNow),
			Netflow:         FormatUSDCompact(row.NetflowNow),
			Score:           FormatScore(score),
			RankScore:       FormatRankScore(score),
			AtAllTimeHigh:   row.AtAllTimeHigh(),
			DCAAccumulation: row.DCAAccumulation(),
			Row:             row,
		})
	}

	view.Stats = SummaryStats{
		Defined: true,
		Count:   len(scores),
		Mean:    stat.Mean(scores, nil),
		Max:     floats.Max(scores),
	}

	return view
}
