package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/toolbox/internal/model"
)

func TestBuildDefaultScenarios(t *testing.T) {
	cuts := []model.CutRequest{cut("A", 45, 9)}
	scenarios := BuildDefaultScenarios(testRoll(), cuts)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, "Current Settings", names[0])
	assert.Contains(t, names, "No Piece Limit")
	assert.Contains(t, names, "Piece Length 2,0 m")
	assert.Contains(t, names, "Roll Width 50 cm")
	assert.Contains(t, names, "Roll Width 67 cm")
	assert.NotContains(t, names, "Roll Width 40 cm", "narrower than the widest cut")
	assert.NotContains(t, names, "Roll Width 100 cm", "same as current")
}

func TestCompareScenarios(t *testing.T) {
	cuts := []model.CutRequest{cut("A", 30, 16), cut("B", 45, 3)}
	scenarios := []ComparisonScenario{
		{Name: "base", Roll: testRoll()},
		{Name: "too narrow", Roll: model.RollConfig{WidthM: 0.4, LengthM: 30, MaxPieceLengthM: 4}},
	}
	results := CompareScenarios(scenarios, cuts)
	require.Len(t, results, 2)

	assert.Empty(t, results[0].Error)
	assert.Equal(t, 1, results[0].SheetsUsed)
	assert.Equal(t, 5, results[0].PieceCount)
	assert.Greater(t, results[0].UsedLength, 0.0)

	assert.NotEmpty(t, results[1].Error)
	assert.Zero(t, results[1].SheetsUsed)

	assert.Equal(t, 0, BestScenario(results))
}

func TestBestScenarioNoneSucceeded(t *testing.T) {
	assert.Equal(t, -1, BestScenario([]ComparisonResult{{Error: "x"}}))
	assert.Equal(t, -1, BestScenario(nil))
}

func TestBestScenarioPrefersLeastConsumedArea(t *testing.T) {
	results := []ComparisonResult{
		{Result: model.OptimizationResult{TotalConsumedArea: 12}, Cost: 100},
		{Result: model.OptimizationResult{TotalConsumedArea: 9}, Cost: 400},
		{Result: model.OptimizationResult{TotalConsumedArea: 9}, Cost: 50},
	}
	// Cost does not decide; equal areas keep the earlier scenario.
	assert.Equal(t, 1, BestScenario(results))
}
