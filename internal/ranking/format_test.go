package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2_500_000, "2.5M"},
		{500_000, "500.0K"},
		{1_000_001, "1.0M"}, // M takes over strictly above 10^6
		{1_000_000, "1.0M"},
		{999_999, "1000.0K"},
		{1_000, "1.0K"},
		{950, "950.0"},
		{0, "0.0"},
		{-2_500_000, "-2.5M"},
		{-1_500, "-1.5K"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(tt.in), "in=%v", tt.in)
	}
}

func TestFormatUSDCompact(t *testing.T) {
	assert.Equal(t, "$91234.0M", FormatUSDCompact(91_234_000_000))
	assert.Equal(t, "-$8.9K", FormatUSDCompact(-8_900))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.25, "1.2500"},
		{0.0234, "0.0234"},
		{0.01, "0.0100"},
		{0.0000567, "5.67e-05"},
		{0.0000001, "1.00e-07"},
		{196.45, "196.4500"},
		{0, "0.0000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), "in=%v", tt.in)
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "78.4", FormatScore(78.44))
	assert.Equal(t, "0.0", FormatScore(0))
}

func TestFormatRankScore(t *testing.T) {
	assert.Equal(t, "0.1235", FormatRankScore(0.12345))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,245,000", FormatCount(1_245_000))
	assert.Equal(t, "45", FormatCount(45))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "So111111...", ShortAddress("So11111111111111111111111111111111111111112"))
	assert.Equal(t, "short", ShortAddress("short"))
	assert.Equal(t, "12345678", ShortAddress("12345678"))
}
