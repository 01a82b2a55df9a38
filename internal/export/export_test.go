package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piwi3910/toolbox/internal/engine"
	"github.com/piwi3910/toolbox/internal/model"
)

// buildTestResult lays out a small realistic job on two roll segments.
func buildTestResult(t *testing.T) ([]model.CutRequest, model.OptimizationResult) {
	t.Helper()
	var cuts model.CutList
	for _, c := range []struct {
		label   string
		widthCM float64
		lengthM float64
	}{
		{"Traufe", 30, 16},
		{"Kehle", 50, 3.2},
		{"Ortgang Ü", 67, 3},
		{"", 20, 1.5},
	} {
		_, err := cuts.Add(c.label, "Kupfer", model.CentimetersToMeters(c.widthCM), c.lengthM, 1.0)
		require.NoError(t, err)
	}

	roll := model.RollConfig{WidthM: 1.0, LengthM: 10, MaxPieceLengthM: 4, PricePerSquareMeter: 85}
	result, err := engine.Optimize(cuts, roll)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(result.Sheets), 2)
	return cuts, result
}

func testReportInfo() ReportInfo {
	return ReportInfo{ProjectName: "Dach Meier", MaterialLabel: "Kupfer", CurrencySymbol: "€"}
}
