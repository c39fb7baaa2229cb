// Package domain provides core domain models and types.
package domain

import "strings"

// TokenIdentifier is an opaque address naming a tradable asset on the target
// network. No validation beyond non-empty after trimming.
type TokenIdentifier string

// NewTokenIdentifier trims the input and reports whether anything is left.
func NewTokenIdentifier(raw string) (TokenIdentifier, bool) {
	trimmed := strings.TrimSpace(raw)
	return TokenIdentifier(trimmed), trimmed != ""
}

func (t TokenIdentifier) String() string {
	return string(t)
}

// AuditResult represents results from a security audit provider
// (honeypot and tax checks).
type AuditResult struct {
	IsHoneypot     bool    `json:"is_honeypot"`
	HasBlacklist   bool    `json:"has_blacklist"`
	BuyTaxPercent  float64 `json:"buy_tax_percent"`
	SellTaxPercent float64 `json:"sell_tax_percent"`
}

// RawTokenRecord is the backend's best-effort description of a token.
// Address is required; every other field may be absent, which is distinct
// from zero, so optional fields are pointers.
type RawTokenRecord struct {
	Address string `json:"token_address"`

	Symbol string `json:"token_symbol,omitempty"`
	Name   string `json:"token_name,omitempty"`

	AgeMinutes             *int         `json:"token_age_minutes,omitempty"`
	Audit                  *AuditResult `json:"degen_audit,omitempty"`
	LiquidityLockedPercent *float64     `json:"liquidity_locked_percent,omitempty"`
	Volume5mUSD            *float64     `json:"volume_5m_usd,omitempty"`
	HoldersCount           *int         `json:"holders_count,omitempty"`
	LPCount                *int         `json:"lp_count,omitempty"`
	LPMcapRatio            *float64     `json:"lp_mcap_ratio,omitempty"`
	Top10HoldersPercent    *float64     `json:"top_10_holders_percent,omitempty"`
	BundlePercent          *float64     `json:"bundle_percent,omitempty"`
}

// ReconciledTokenRecord is a RawTokenRecord with every optional field
// resolved to a concrete value. BundlePercent keeps its unknown marker: the
// backend treats "no bundle data" differently from "0% bundled".
type ReconciledTokenRecord struct {
	Address string `json:"token_address"`
	Symbol  string `json:"token_symbol"`
	Name    string `json:"token_name"`

	AgeMinutes             int         `json:"token_age_minutes"`
	Audit                  AuditResult `json:"degen_audit"`
	LiquidityLockedPercent float64     `json:"liquidity_locked_percent"`
	Volume5mUSD            float64     `json:"volume_5m_usd"`
	HoldersCount           int         `json:"holders_count"`
	LPCount                int         `json:"lp_count"`
	LPMcapRatio            float64     `json:"lp_mcap_ratio"`
	Top10HoldersPercent    float64     `json:"top_10_holders_percent"`
	BundlePercent          *float64    `json:"bundle_percent"`
}

// PreFilterOutcome is the pass/fail verdict of the backend's security
// pre-filter. Passed=true implies FailedChecks is empty; a failure with no
// explicit identifiers is an opaque failure.
type PreFilterOutcome struct {
	Passed       bool     `json:"passed_prefilter"`
	FailedChecks []string `json:"failed_checks"`
}

// ScoreBundle holds the scores the backend computed for one token. Category
// scores need not sum to Total; Total is the backend's own weighted
// aggregate and is never recomputed here.
type ScoreBundle struct {
	Total      float64 `json:"total"`
	Momentum   float64 `json:"momentum"`
	SmartMoney float64 `json:"smart_money"`
	Sentiment  float64 `json:"sentiment"`
	Event      float64 `json:"event"`

	Timeframes     map[string]float64 `json:"new_scores,omitempty"`
	ReportMarkdown string             `json:"trench_report_markdown,omitempty"`
}

// MetricsBundle carries scoring-relevant metric groups forwarded to the
// score call. Groups are opaque to this layer; the backend owns their
// interpretation.
type MetricsBundle struct {
	Momentum   map[string]any `json:"momentum,omitempty"`
	SmartMoney map[string]any `json:"smart_money,omitempty"`
	Sentiment  map[string]any `json:"sentiment,omitempty"`
	Event      map[string]any `json:"event,omitempty"`
}

// IsEmpty reports whether the bundle carries no metric groups at all.
func (m *MetricsBundle) IsEmpty() bool {
	if m == nil {
		return true
	}
	return len(m.Momentum) == 0 && len(m.SmartMoney) == 0 &&
		len(m.Sentiment) == 0 && len(m.Event) == 0
}
