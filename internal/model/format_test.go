package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{11.2, 2, "11,20"},
		{70, 1, "70,0"},
		{2.345, 2, "2,35"},
		{0.3, 0, "0"},
		{-1.5, 1, "-1,5"},
		{math.NaN(), 2, "0,00"},
		{math.Inf(1), 1, "0,0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 123.46, RoundCents(123.455))
	assert.Equal(t, 0.0, RoundCents(math.NaN()))
	assert.Equal(t, 84.0, RoundCents(84))
}

func TestFormatCurrencyAndArea(t *testing.T) {
	assert.Equal(t, "123,45 €", FormatCurrency(123.45, "€"))
	assert.Equal(t, "10,00", FormatCurrency(10, ""))
	assert.Equal(t, "4,80 m²", FormatArea(4.8))
}
