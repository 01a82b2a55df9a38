package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackedSheet() Sheet {
	return Sheet{
		Placements: []Placement{
			{Width: 0.3, Length: 4, X: 0, Y: 0},
			{Width: 0.3, Length: 4, X: 0, Y: 4},
			{Width: 0.3, Length: 4, X: 0, Y: 8},
			{Width: 0.3, Length: 4, X: 0, Y: 12},
		},
		UsedLength: 16,
	}
}

func TestDetectRemnantsLateralAndTail(t *testing.T) {
	roll := RollConfig{WidthM: 1, LengthM: 30, PricePerSquareMeter: 10}
	remnants := DetectRemnants(stackedSheet(), 0, roll)
	require.Len(t, remnants, 2)

	tail := remnants[0]
	assert.InDelta(t, 16.0, tail.Y, 1e-9)
	assert.InDelta(t, 1.0, tail.Width, 1e-9)
	assert.InDelta(t, 14.0, tail.Length, 1e-9)
	assert.Equal(t, 140.0, tail.Value)

	lateral := remnants[1]
	assert.InDelta(t, 0.3, lateral.X, 1e-9)
	assert.InDelta(t, 0.7, lateral.Width, 1e-9)
	assert.InDelta(t, 16.0, lateral.Length, 1e-9)
	assert.Equal(t, 112.0, lateral.Value)
}

func TestDetectRemnantsSkipsNarrowStrips(t *testing.T) {
	sheet := Sheet{
		Placements: []Placement{{Width: 0.95, Length: 29.8}},
		UsedLength: 29.8,
	}
	remnants := DetectRemnants(sheet, 0, RollConfig{WidthM: 1, LengthM: 30})
	assert.Empty(t, remnants)
}

func TestDetectAllRemnants(t *testing.T) {
	result := OptimizationResult{
		Roll:   RollConfig{WidthM: 1, LengthM: 16},
		Sheets: []Sheet{stackedSheet(), stackedSheet()},
	}
	all := DetectAllRemnants(result)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].SheetIndex)
	assert.Equal(t, 1, all[1].SheetIndex)
	assert.InDelta(t, 2*0.7*16, TotalRemnantArea(all), 1e-9)
}

func TestRemnantToCutRequest(t *testing.T) {
	r := Remnant{Width: 0.7, Length: 16}
	c := r.ToCutRequest("Rest")
	assert.Equal(t, "Rest", c.Label)
	assert.InDelta(t, r.Area(), c.Area(), 1e-12)
	assert.NotEmpty(t, c.ID)
}
