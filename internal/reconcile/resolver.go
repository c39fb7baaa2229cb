// Package reconcile substitutes documented defaults for any optional field
// missing from a raw extraction record, producing a record the scoring
// backend can consume without its own null handling.
package reconcile

import "github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"

// Defaults is the canonical fallback table applied to missing optional
// fields. Values follow the defensive analysis page of the original product:
// conservative placeholders that neither flatter nor condemn an unknown
// token. BundlePercent has no default on purpose; "unknown" passes through.
type Defaults struct {
	Symbol                 string
	Name                   string
	AgeMinutes             int
	Audit                  domain.AuditResult
	LiquidityLockedPercent float64
	Volume5mUSD            float64
	HoldersCount           int
	LPCount                int
	LPMcapRatio            float64
	Top10HoldersPercent    float64
}

// Canonical returns the default set used across the application. Call sites
// must not carry their own copies of these literals.
func Canonical() Defaults {
	return Defaults{
		Symbol:     "UNKNOWN",
		Name:       "Unknown Token",
		AgeMinutes: 30,
		Audit: domain.AuditResult{
			IsHoneypot:     false,
			HasBlacklist:   false,
			BuyTaxPercent:  0,
			SellTaxPercent: 0,
		},
		LiquidityLockedPercent: 0,
		Volume5mUSD:            0,
		HoldersCount:           1000,
		LPCount:                1,
		LPMcapRatio:            0.01,
		Top10HoldersPercent:    50.0,
	}
}

// Resolve produces a fully-populated record from a raw one. Present fields
// pass through verbatim; absent fields take the canonical default. Pure and
// total: absence is never an error.
func Resolve(raw domain.RawTokenRecord) domain.ReconciledTokenRecord {
	return ResolveWith(raw, Canonical())
}

// ResolveWith is Resolve with an explicit defaults table. Exists so tests can
// prove pass-through behavior with a distinguishable table.
func ResolveWith(raw domain.RawTokenRecord, d Defaults) domain.ReconciledTokenRecord {
	rec := domain.ReconciledTokenRecord{
		Address:                raw.Address,
		Symbol:                 stringOr(raw.Symbol, d.Symbol),
		Name:                   stringOr(raw.Name, d.Name),
		AgeMinutes:             intOr(raw.AgeMinutes, d.AgeMinutes),
		Audit:                  d.Audit,
		LiquidityLockedPercent: floatOr(raw.LiquidityLockedPercent, d.LiquidityLockedPercent),
		Volume5mUSD:            floatOr(raw.Volume5mUSD, d.Volume5mUSD),
		HoldersCount:           intOr(raw.HoldersCount, d.HoldersCount),
		LPCount:                intOr(raw.LPCount, d.LPCount),
		LPMcapRatio:            floatOr(raw.LPMcapRatio, d.LPMcapRatio),
		Top10HoldersPercent:    floatOr(raw.Top10HoldersPercent, d.Top10HoldersPercent),
		BundlePercent:          raw.BundlePercent,
	}

	if raw.Audit != nil {
		rec.Audit = *raw.Audit
	}

	return rec
}

// Raw converts a reconciled record back to raw form with every field
// present. Feeding the result through Resolve again yields the identical
// record, which is what makes resolution idempotent.
func Raw(rec domain.ReconciledTokenRecord) domain.RawTokenRecord {
	audit := rec.Audit
	age := rec.AgeMinutes
	locked := rec.LiquidityLockedPercent
	vol := rec.Volume5mUSD
	holders := rec.HoldersCount
	lpCount := rec.LPCount
	ratio := rec.LPMcapRatio
	top10 := rec.Top10HoldersPercent

	return domain.RawTokenRecord{
		Address:                rec.Address,
		Symbol:                 rec.Symbol,
		Name:                   rec.Name,
		AgeMinutes:             &age,
		Audit:                  &audit,
		LiquidityLockedPercent: &locked,
		Volume5mUSD:            &vol,
		HoldersCount:           &holders,
		LPCount:                &lpCount,
		LPMcapRatio:            &ratio,
		Top10HoldersPercent:    &top10,
		BundlePercent:          rec.BundlePercent,
	}
}

func stringOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
