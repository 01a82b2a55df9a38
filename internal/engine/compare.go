package engine

import (
	"fmt"

	"github.com/piwi3910/toolbox/internal/model"
)

// StandardRollWidthsM lists the common roll widths offered as what-if
// alternatives.
var StandardRollWidthsM = []float64{0.33, 0.4, 0.5, 0.6, 0.67, 1.0}

// ComparisonScenario defines a named roll configuration to compare.
type ComparisonScenario struct {
	Name string           `json:"name"`
	Roll model.RollConfig `json:"roll"`
}

// ComparisonResult holds the optimization result and summary figures for
// a single scenario. Error is set when the scenario's roll rejects the cuts.
type ComparisonResult struct {
	Scenario     ComparisonScenario       `json:"scenario"`
	Result       model.OptimizationResult `json:"result"`
	SheetsUsed   int                      `json:"sheets_used"`
	PieceCount   int                      `json:"piece_count"`
	UsedLength   float64                  `json:"used_length"`
	WastePercent float64                  `json:"waste_percent"`
	Cost         float64                  `json:"cost"`
	Error        string                   `json:"error,omitempty"`
}

// CompareScenarios runs the optimizer for each scenario and returns the
// results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, cuts []model.CutRequest, opts ...Option) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		cr := ComparisonResult{Scenario: scenario}
		result, err := New(scenario.Roll, opts...).Optimize(cuts)
		if err != nil {
			cr.Error = err.Error()
			results = append(results, cr)
			continue
		}

		cr.Result = result
		cr.SheetsUsed = len(result.Sheets)
		cr.PieceCount = result.PlacementCount()
		cr.UsedLength = result.TotalUsedLength()
		cr.WastePercent = result.WastePercent
		cr.Cost = result.TotalMaterialCost
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives to the current roll:
// no piece length limit, half the piece length, and each standard roll
// width that still takes the widest cut.
func BuildDefaultScenarios(base model.RollConfig, cuts []model.CutRequest) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Roll: base},
	}

	if base.MaxPieceLengthM < base.LengthM-epsilon {
		noLimit := base
		noLimit.MaxPieceLengthM = base.LengthM
		scenarios = append(scenarios, ComparisonScenario{
			Name: "No Piece Limit",
			Roll: noLimit,
		})
	}

	if base.MaxPieceLengthM/2 >= model.MinRemnantLengthM {
		half := base
		half.MaxPieceLengthM = base.MaxPieceLengthM / 2
		scenarios = append(scenarios, ComparisonScenario{
			Name: fmt.Sprintf("Piece Length %s m", model.FormatNumber(half.MaxPieceLengthM, 1)),
			Roll: half,
		})
	}

	var widest float64
	for _, c := range cuts {
		if c.Width > widest {
			widest = c.Width
		}
	}
	for _, w := range StandardRollWidthsM {
		if model.NearlyEqual(w, base.WidthM) || w < widest-epsilon {
			continue
		}
		alt := base
		alt.WidthM = w
		scenarios = append(scenarios, ComparisonScenario{
			Name: fmt.Sprintf("Roll Width %s cm", model.FormatNumber(model.MetersToCentimeters(w), 0)),
			Roll: alt,
		})
	}

	return scenarios
}

// BestScenario returns the index of the successful scenario with the lowest
// consumed roll area, or -1 if none succeeded. Ties keep the earlier one.
func BestScenario(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Error != "" {
			continue
		}
		if best < 0 || r.Result.TotalConsumedArea < results[best].Result.TotalConsumedArea-epsilon {
			best = i
		}
	}
	return best
}
