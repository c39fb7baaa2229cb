// Package demo provides deterministic scenario fixtures and a stub scoring
// service. Both exist so the full analysis pipeline can run end to end
// without a live backend, over the same wire contract and code paths.
package demo

import "github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"

// Scenario is one named synthetic token with everything the stub service
// needs to serve it: the raw record, its metric groups, an extraction
// coverage figure and the fixture scores returned on a passing verdict.
type Scenario struct {
	ID          string
	Name        string
	Description string

	Token    domain.RawTokenRecord
	Metrics  *domain.MetricsBundle
	Coverage float64

	// Scores are served verbatim when the token clears the pre-filter.
	// Zero for scenarios built to fail; the stub never computes scores.
	Scores domain.ScoreBundle
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func auditPtr(a domain.AuditResult) *domain.AuditResult { return &a }

// Scenarios returns the fixture set in presentation order. All values are
// static: a scenario built to fail a check carries field values that fail
// that check under the real thresholds, so runs are reproducible.
func Scenarios() []Scenario {
	return []Scenario{
		{
			ID:          "high-quality",
			Name:        "High Quality Token",
			Description: "Well-distributed, high liquidity token",
			Token: domain.RawTokenRecord{
				Address:                "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
				Symbol:                 "BONK",
				Name:                   "Bonk",
				AgeMinutes:             intPtr(90),
				Audit:                  auditPtr(domain.AuditResult{}),
				LiquidityLockedPercent: floatPtr(100),
				Volume5mUSD:            floatPtr(500000),
				HoldersCount:           intPtr(500000),
				LPCount:                intPtr(2),
				LPMcapRatio:            floatPtr(0.05),
				Top10HoldersPercent:    floatPtr(25),
				BundlePercent:          floatPtr(15),
			},
			Metrics: &domain.MetricsBundle{
				Momentum: map[string]any{
					"vol_over_avg_ratio":     4.5,
					"price_change_percent":   38.7,
					"ath_hit":                true,
					"lp_mcap_delta_percent":  15.2,
					"holders_growth_percent": 18.9,
				},
				SmartMoney: map[string]any{
					"whale_buy_usd":                   678000,
					"whale_buy_supply_percent":        8.5,
					"dca_accumulation_supply_percent": 3.2,
					"net_inflow_wallets_gt_10k_usd":   456000,
				},
				Sentiment: map[string]any{
					"mentions_velocity_ratio":      5.2,
					"tier1_kol_buy_supply_percent": 2.8,
					"influencer_reach":             2897000,
					"polarity_positive_percent":    85,
				},
				Event: map[string]any{
					"inflow_over_mcap_percent":  12.5,
					"liquidity_outflow_percent": -2.1,
					"upgrade_or_staking_live":   true,
				},
			},
			Coverage: 92.5,
			Scores: domain.ScoreBundle{
				Total:      84.2,
				Momentum:   88.4,
				SmartMoney: 86.1,
				Sentiment:  82.7,
				Event:      74.9,
				Timeframes: map[string]float64{
					"5m": 85.3, "15m": 84.0, "30m": 82.6, "1h": 80.1,
				},
				ReportMarkdown: "## Trench Report\n\nStrong momentum with whale accumulation and viral sentiment growth.",
			},
		},
		{
			ID:          "average-token",
			Name:        "Average Token",
			Description: "Steady mid-cap token with moderate activity",
			Token: domain.RawTokenRecord{
				Address:                "StableProject555555555",
				Symbol:                 "STABLE",
				Name:                   "Stable Growth Token",
				AgeMinutes:             intPtr(180),
				Audit:                  auditPtr(domain.AuditResult{BuyTaxPercent: 1, SellTaxPercent: 1}),
				LiquidityLockedPercent: floatPtr(100),
				Volume5mUSD:            floatPtr(234000),
				HoldersCount:           intPtr(3456),
				LPCount:                intPtr(5),
				LPMcapRatio:            floatPtr(0.041),
				Top10HoldersPercent:    floatPtr(23.4),
				BundlePercent:          floatPtr(15.6),
			},
			Metrics: &domain.MetricsBundle{
				Momentum: map[string]any{
					"vol_over_avg_ratio":     1.8,
					"price_change_percent":   8.9,
					"ath_hit":                false,
					"lp_mcap_delta_percent":  3.4,
					"holders_growth_percent": 4.5,
				},
				SmartMoney: map[string]any{
					"whale_buy_usd":                   45000,
					"whale_buy_supply_percent":        2.1,
					"dca_accumulation_supply_percent": 0.8,
					"net_inflow_wallets_gt_10k_usd":   23000,
				},
				Sentiment: map[string]any{
					"mentions_velocity_ratio":      1.5,
					"tier1_kol_buy_supply_percent": 0.6,
					"influencer_reach":             378000,
					"polarity_positive_percent":    60,
				},
				Event: map[string]any{
					"inflow_over_mcap_percent":  3.2,
					"liquidity_outflow_percent": 1.5,
					"upgrade_or_staking_live":   false,
				},
			},
			Coverage: 78.0,
			Scores: domain.ScoreBundle{
				Total:      56.8,
				Momentum:   58.2,
				SmartMoney: 54.5,
				Sentiment:  57.9,
				Event:      48.3,
				Timeframes: map[string]float64{
					"5m": 57.4, "15m": 56.9, "30m": 56.1, "1h": 55.0,
				},
				ReportMarkdown: "## Trench Report\n\nModerate growth, no standout catalyst. Watch for volume confirmation.",
			},
		},
		{
			ID:          "failed-prefilter",
			Name:        "Failed Pre-Filter Token",
			Description: "Fails every threshold-based safety check",
			Token: domain.RawTokenRecord{
				// Every field except the audit is set to fail its check.
				Address:                "FailedPrefilter00000001",
				Symbol:                 "FAIL",
				Name:                   "Failed Prefilter Token",
				AgeMinutes:             intPtr(25),
				Audit:                  auditPtr(domain.AuditResult{BuyTaxPercent: 1, SellTaxPercent: 1}),
				LiquidityLockedPercent: floatPtr(40),
				Volume5mUSD:            floatPtr(1200),
				HoldersCount:           intPtr(85),
				LPCount:                intPtr(1),
				LPMcapRatio:            floatPtr(0.005),
				Top10HoldersPercent:    floatPtr(72),
				BundlePercent:          floatPtr(55),
			},
			Metrics: &domain.MetricsBundle{
				Momentum: map[string]any{
					"vol_over_avg_ratio":     0.5,
					"price_change_percent":   -17.8,
					"ath_hit":                false,
					"lp_mcap_delta_percent":  -8.9,
					"holders_growth_percent": -8.9,
				},
				SmartMoney: map[string]any{
					"whale_buy_usd":                   2000,
					"whale_buy_supply_percent":        0.1,
					"dca_accumulation_supply_percent": 0,
					"net_inflow_wallets_gt_10k_usd":   -89000,
				},
				Sentiment: map[string]any{
					"mentions_velocity_ratio":      0.3,
					"tier1_kol_buy_supply_percent": 0,
					"influencer_reach":             45000,
					"polarity_positive_percent":    18,
				},
				Event: map[string]any{
					"inflow_over_mcap_percent":  -5.6,
					"liquidity_outflow_percent": 8.9,
					"upgrade_or_staking_live":   false,
				},
			},
			Coverage: 55.0,
		},
		{
			ID:          "risky-token",
			Name:        "Risky Token",
			Description: "New token with concentrated holdings",
			Token: domain.RawTokenRecord{
				Address:                "RISKYxxx123456789",
				Symbol:                 "RISKY",
				Name:                   "Risky Token",
				AgeMinutes:             intPtr(120),
				Audit:                  auditPtr(domain.AuditResult{BuyTaxPercent: 2, SellTaxPercent: 2}),
				LiquidityLockedPercent: floatPtr(0),
				Volume5mUSD:            floatPtr(2000),
				HoldersCount:           intPtr(50),
				LPCount:                intPtr(1),
				LPMcapRatio:            floatPtr(0.1),
				Top10HoldersPercent:    floatPtr(85),
				BundlePercent:          floatPtr(60),
			},
			Metrics: &domain.MetricsBundle{
				Momentum: map[string]any{
					"vol_over_avg_ratio":     0.5,
					"price_change_percent":   -20,
					"ath_hit":                false,
					"holders_growth_percent": -5,
				},
				SmartMoney: map[string]any{
					"whale_buy_usd":                   0,
					"whale_buy_supply_percent":        0,
					"dca_accumulation_supply_percent": 0,
					"net_inflow_wallets_gt_10k_usd":   -10000,
				},
				Sentiment: map[string]any{
					"mentions_velocity_ratio":      0.5,
					"tier1_kol_buy_supply_percent": 0,
					"influencer_reach":             100,
					"polarity_positive_percent":    30,
				},
				Event: map[string]any{
					"inflow_over_mcap_percent": -0.1,
					"upgrade_or_staking_live":  false,
				},
			},
			Coverage: 64.0,
		},
	}
}

// ScenarioByAddress indexes the fixture set by token address.
func ScenarioByAddress() map[string]Scenario {
	out := make(map[string]Scenario)
	for _, s := range Scenarios() {
		out[s.Token.Address] = s
	}
	return out
}

// RankingFixtures returns static ranking rows per tab. Rows carry every wire
// field the ranking endpoint expects, filled with the shared defaults.
func RankingFixtures() map[domain.RankingTab][]domain.RankingRow {
	return map[domain.RankingTab][]domain.RankingRow{
		domain.TabNew: {
			newTabRow("NEW1xxx", "NEW1", "New Token 1", 0.0001, 500000, 100000, 50, 0.3, 0.1, 10),
			newTabRow("NEW2xxx", "NEW2", "New Token 2", 0.00005, 300000, 80000, 30, 0.4, 0.2, 20),
			newTabRow("NEW3xxx", "NEW3", "New Token 3", 0.00002, 200000, 50000, 20, 0.5, 0.3, 30),
		},
		domain.TabSurging: {
			surgingTabRow("SURGE1xxx", "SURGE1", "Surging Token 1", 0.001, 5000000, 1000000, 100, 1, 10, 50000),
			surgingTabRow("SURGE2xxx", "SURGE2", "Surging Token 2", 0.0005, 3000000, 800000, 80, 0, 8, 30000),
			surgingTabRow("SURGE3xxx", "SURGE3", "Surging Token 3", 0.0002, 2000000, 500000, 60, 1, 5, 20000),
		},
		domain.TabAll: {
			allTabRow("ALL1xxx", "ALL1", "All Token 1", 0.01, 10000000, 2000000, 25, 0.2, 500000, 15),
			allTabRow("ALL2xxx", "ALL2", "All Token 2", 0.005, 8000000, 1500000, 20, 0.18, 400000, 12),
			allTabRow("ALL3xxx", "ALL3", "All Token 3", 0.002, 5000000, 1000000, 15, 0.2, 300000, 10),
		},
	}
}

// baseRow fills the wire fields every fixture row shares.
func baseRow(id, symbol, name string, price, mc, vol float64) domain.RankingRow {
	return domain.RankingRow{
		ID:               id,
		Symbol:           symbol,
		Name:             name,
		PriceNow:         price,
		McNow:            mc,
		VolNow:           vol,
		VolToMc:          vol / mc,
		LpNow:            100000,
		LpCount:          2,
		HoldersNow:       1000,
		HoldersPerMc:     0.0001,
		NetflowNow:       100000,
		WhaleBuyCount:    5,
		KolUSDNow:        10000,
		KolVelocity:      5,
		TxNow:            1000,
		NetBuyUSDNow:     50000,
		FeeSolNow:        10,
		FeeToMcPct:       0.01,
		MinutesSincePeak: 30,
		Top10Pct:         0.3,
		BundlePct:        0.2,
	}
}

func newTabRow(id, symbol, name string, price, mc, vol, mcChange, top10, bundle, sincePeak float64) domain.RankingRow {
	row := baseRow(id, symbol, name, price, mc, vol)
	row.McChangePct = mcChange
	row.PriceChangePct = mcChange
	row.Top10Pct = top10
	row.BundlePct = bundle
	row.MinutesSincePeak = sincePeak
	return row
}

func surgingTabRow(id, symbol, name string, price, mc, vol, mcChange float64, athFlag, whaleBuys int, kolUSD float64) domain.RankingRow {
	row := baseRow(id, symbol, name, price, mc, vol)
	row.McChangePct = mcChange
	row.PriceChangePct = mcChange
	row.ATHFlag = athFlag
	row.WhaleBuyCount = whaleBuys
	row.KolUSDNow = kolUSD
	return row
}

func allTabRow(id, symbol, name string, price, mc, vol, mcChange, volToMc, netflow, kolVelocity float64) domain.RankingRow {
	row := baseRow(id, symbol, name, price, mc, vol)
	row.McChangePct = mcChange
	row.PriceChangePct = mcChange
	row.VolToMc = volToMc
	row.NetflowNow = netflow
	row.KolVelocity = kolVelocity
	return row
}
