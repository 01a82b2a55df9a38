package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber renders v with a fixed number of decimals and a comma as the
// decimal separator, rounding half away from zero. Non-finite values render
// as zero.
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := decimal.NewFromFloat(v).StringFixed(int32(decimals))
	return strings.Replace(s, ".", ",", 1)
}

// RoundCents rounds a currency amount to two decimals.
func RoundCents(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// FormatCurrency renders an amount with two decimals followed by the
// currency symbol, e.g. "123,45 €".
func FormatCurrency(amount float64, symbol string) string {
	s := FormatNumber(amount, 2)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatArea renders a square meter value, e.g. "4,80 m²".
func FormatArea(m2 float64) string {
	return FormatNumber(m2, 2) + " m²"
}
