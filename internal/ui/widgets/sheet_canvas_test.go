package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/toolbox/internal/model"
)

func TestFitScale(t *testing.T) {
	// 10 m x 1 m into 900 x 220 px: length limits at 90 px/m.
	assert.InDelta(t, 90, fitScale(10, 1, 900, 220), 1e-4)
	// 2 m x 1 m: width limits at 220 px/m.
	assert.InDelta(t, 220, fitScale(2, 1, 900, 220), 1e-4)
	assert.Equal(t, float32(0), fitScale(0, 1, 900, 220))
}

func TestPieceColor(t *testing.T) {
	c := PieceColor(model.Placement{ColorTag: "#FF0000"}, 3)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(220), c.A)

	assert.Equal(t, partColors[1], PieceColor(model.Placement{ColorTag: "bogus"}, 1))
}

func TestPieceCaption(t *testing.T) {
	p := model.Placement{Label: "Traufe", Width: 0.5, Length: 4}
	assert.Equal(t, "Traufe 50 x 4,00", PieceCaption(p))

	p.Label = ""
	assert.True(t, strings.HasPrefix(PieceCaption(p), "Zuschnitt "))
}

func TestSheetHeaderAndSummary(t *testing.T) {
	roll := model.RollConfig{WidthM: 1, LengthM: 30, MaxPieceLengthM: 4, PricePerSquareMeter: 10}
	sheet := model.Sheet{
		Placements:   []model.Placement{{Width: 0.5, Length: 2}},
		UsedLength:   2,
		UsedArea:     1,
		ConsumedArea: 2,
		WasteArea:    1,
	}
	assert.Equal(t, "Segment 1: 100 cm x 2,00 m, 1 pieces, 50,0 % waste", SheetHeader(0, sheet, roll))

	result := model.OptimizationResult{
		Roll: roll, Sheets: []model.Sheet{sheet},
		TotalUsedArea: 1, TotalConsumedArea: 2, TotalWasteArea: 1, WastePercent: 50, TotalMaterialCost: 20,
	}
	summary := SummaryText(result, "€")
	assert.Contains(t, summary, "1 segments")
	assert.Contains(t, summary, "Material cost: 20,00 €")

	result.Roll.PricePerSquareMeter = 0
	assert.NotContains(t, SummaryText(result, "€"), "Material cost")
}

func TestRemnantLines(t *testing.T) {
	lines := RemnantLines([]model.Remnant{{SheetIndex: 0, Width: 0.5, Length: 2}})
	assert.Equal(t, []string{"  Segment 1: 50 cm x 2,00 m"}, lines)
	assert.Empty(t, RemnantLines(nil))
}
