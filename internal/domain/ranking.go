package domain

// RankingTab names a ranking category understood by the backend.
type RankingTab string

const (
	TabNew     RankingTab = "New"
	TabSurging RankingTab = "Surging"
	TabAll     RankingTab = "All"
)

// RankingRow is one token's market metrics within a ranking request or
// response. ID doubles as the stable row identifier and equals the token
// address. Score is assigned by the backend; ordering of rows in a response
// is the backend's ranking order and is preserved as-is.
type RankingRow struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	PriceNow          float64 `json:"price_now"`
	PriceChangePct    float64 `json:"price_change_pct"`
	McNow             float64 `json:"mc_now"`
	McChangePct       float64 `json:"mc_change_pct"`
	VolNow            float64 `json:"vol_now"`
	VolChangePct      float64 `json:"vol_change_pct"`
	VolToMc           float64 `json:"vol_to_mc"`
	LpNow             float64 `json:"lp_now"`
	LpChangePct       float64 `json:"lp_change_pct"`
	LpCount           int     `json:"lp_count"`
	HoldersNow        int     `json:"holders_now"`
	HoldersChangePct  float64 `json:"holders_change_pct"`
	HoldersPerMc      float64 `json:"holders_per_mc"`
	NetflowNow        float64 `json:"netflow_now"`
	NetflowChangePct  float64 `json:"netflow_change_pct"`
	WhaleBuyCount     int     `json:"whale_buy_count"`
	KolUSDNow         float64 `json:"kolusd_now"`
	KolUSDChangePct   float64 `json:"kolusd_change_pct"`
	KolVelocity       float64 `json:"kol_velocity"`
	TxNow             int     `json:"tx_now"`
	TxChangePct       float64 `json:"tx_change_pct"`
	NetBuyUSDNow      float64 `json:"netbuy_usd_now"`
	FeeSolNow         float64 `json:"fee_sol_now"`
	FeeToMcPct        float64 `json:"fee_to_mc_pct"`
	MinutesSincePeak  float64 `json:"minutes_since_peak"`
	Top10Pct          float64 `json:"top10_pct"`
	BundlePct         float64 `json:"bundle_pct"`
	DCAFlag           int     `json:"dca_flag"`
	ATHFlag           int     `json:"ath_flag"`

	// Score is present on response rows only; nil on request rows.
	Score *float64 `json:"score,omitempty"`
}

// AtAllTimeHigh reports whether the all-time-high flag is set.
func (r RankingRow) AtAllTimeHigh() bool { return r.ATHFlag != 0 }

// DCAAccumulation reports whether dollar-cost-averaging accumulation was
// detected for this row.
func (r RankingRow) DCAAccumulation() bool { return r.DCAFlag != 0 }

// ScoreOrZero returns the backend-assigned score, treating absent as 0.
func (r RankingRow) ScoreOrZero() float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}
