package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestResolveAllDefaults(t *testing.T) {
	rec := Resolve(domain.RawTokenRecord{Address: "So11111111111111111111111111111111111111112"})

	assert.Equal(t, "So11111111111111111111111111111111111111112", rec.Address)
	assert.Equal(t, "UNKNOWN", rec.Symbol)
	assert.Equal(t, "Unknown Token", rec.Name)
	assert.Equal(t, 30, rec.AgeMinutes)
	assert.Equal(t, domain.AuditResult{}, rec.Audit)
	assert.Equal(t, 0.0, rec.LiquidityLockedPercent)
	assert.Equal(t, 0.0, rec.Volume5mUSD)
	assert.Equal(t, 1000, rec.HoldersCount)
	assert.Equal(t, 1, rec.LPCount)
	assert.Equal(t, 0.01, rec.LPMcapRatio)
	assert.Equal(t, 50.0, rec.Top10HoldersPercent)
	assert.Nil(t, rec.BundlePercent, "unknown bundle percentage passes through")
}

func TestResolvePassThrough(t *testing.T) {
	raw := domain.RawTokenRecord{
		Address:    "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
		Symbol:     "BONK",
		Name:       "Bonk",
		AgeMinutes: intPtr(90),
		Audit: &domain.AuditResult{
			IsHoneypot:     false,
			HasBlacklist:   false,
			BuyTaxPercent:  1.5,
			SellTaxPercent: 2.0,
		},
		LiquidityLockedPercent: floatPtr(100),
		Volume5mUSD:            floatPtr(500000),
		HoldersCount:           intPtr(500000),
		LPCount:                intPtr(2),
		LPMcapRatio:            floatPtr(0.05),
		Top10HoldersPercent:    floatPtr(25),
		BundlePercent:          floatPtr(15),
	}

	rec := Resolve(raw)

	assert.Equal(t, "BONK", rec.Symbol)
	assert.Equal(t, "Bonk", rec.Name)
	assert.Equal(t, 90, rec.AgeMinutes)
	assert.Equal(t, 1.5, rec.Audit.BuyTaxPercent)
	assert.Equal(t, 100.0, rec.LiquidityLockedPercent)
	assert.Equal(t, 500000.0, rec.Volume5mUSD)
	assert.Equal(t, 500000, rec.HoldersCount)
	assert.Equal(t, 2, rec.LPCount)
	assert.Equal(t, 0.05, rec.LPMcapRatio)
	assert.Equal(t, 25.0, rec.Top10HoldersPercent)
	require.NotNil(t, rec.BundlePercent)
	assert.Equal(t, 15.0, *rec.BundlePercent)
}

// Zero values that are explicitly present must survive resolution; absence,
// not zero, triggers substitution.
func TestResolveKeepsExplicitZeros(t *testing.T) {
	raw := domain.RawTokenRecord{
		Address:             "ZeroZeroZeroZeroZeroZeroZeroZeroZeroZeroZero",
		HoldersCount:        intPtr(0),
		Top10HoldersPercent: floatPtr(0),
		LPMcapRatio:         floatPtr(0),
	}

	rec := Resolve(raw)

	assert.Equal(t, 0, rec.HoldersCount)
	assert.Equal(t, 0.0, rec.Top10HoldersPercent)
	assert.Equal(t, 0.0, rec.LPMcapRatio)
}

func TestResolveIdempotent(t *testing.T) {
	inputs := []domain.RawTokenRecord{
		{Address: "empty"},
		{Address: "partial", Symbol: "PART", Volume5mUSD: floatPtr(1234.5)},
		{Address: "bundle-known", BundlePercent: floatPtr(40)},
	}

	for _, raw := range inputs {
		once := Resolve(raw)
		twice := Resolve(Raw(once))
		assert.Equal(t, once, twice, "address=%s", raw.Address)
	}
}

func TestResolveWithCustomTable(t *testing.T) {
	d := Canonical()
	d.HoldersCount = 1
	d.Symbol = "???"

	rec := ResolveWith(domain.RawTokenRecord{Address: "x"}, d)

	assert.Equal(t, 1, rec.HoldersCount)
	assert.Equal(t, "???", rec.Symbol)
}
