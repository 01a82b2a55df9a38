package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRollEstimateBasic(t *testing.T) {
	cuts := []CutRequest{
		NewCutRequest("A", 0.5, 4),
		NewCutRequest("B", 0.5, 4),
	}
	roll := RollConfig{WidthM: 1, LengthM: 30, MaxPieceLengthM: 4, PricePerSquareMeter: 20}
	est := CalculateRollEstimate(cuts, roll, 15)

	assert.InDelta(t, 4.0, est.TotalCutArea, 1e-9)
	assert.InDelta(t, 30.0, est.SegmentArea, 1e-9)
	assert.InDelta(t, 4.0/30.0, est.SegmentsNeededExact, 1e-9)
	assert.Equal(t, 1, est.SegmentsNeededMin)
	assert.Equal(t, 1, est.SegmentsWithWaste)
	assert.InDelta(t, 4.6, est.AreaWithWaste, 1e-9)
	assert.Equal(t, 92.0, est.EstimatedCost)
}

func TestCalculateRollEstimateExactMultiple(t *testing.T) {
	cuts := []CutRequest{NewCutRequest("full", 1, 60)}
	roll := RollConfig{WidthM: 1, LengthM: 30}
	est := CalculateRollEstimate(cuts, roll, 0)

	if est.SegmentsNeededMin != 2 {
		t.Errorf("expected 2 segments, got %d", est.SegmentsNeededMin)
	}
	if est.SegmentsWithWaste != 2 {
		t.Errorf("expected 2 segments with zero waste, got %d", est.SegmentsWithWaste)
	}
	if est.EstimatedCost != 0 {
		t.Errorf("expected no cost without price, got %f", est.EstimatedCost)
	}
}

func TestCalculateRollEstimateZeroSegment(t *testing.T) {
	cuts := []CutRequest{NewCutRequest("A", 0.3, 2)}
	est := CalculateRollEstimate(cuts, RollConfig{}, 10)
	assert.Zero(t, est.SegmentsNeededMin)
	assert.InDelta(t, 0.6, est.TotalCutArea, 1e-9)
}

func TestCalculateRollEstimateEmpty(t *testing.T) {
	est := CalculateRollEstimate(nil, DefaultRollConfig(), 10)
	assert.Zero(t, est.TotalCutArea)
	assert.Zero(t, est.SegmentsNeededMin)
	assert.Zero(t, est.SegmentsWithWaste)
}
