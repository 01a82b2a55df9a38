package handlers

import (
	"github.com/piwi3910/toolbox/internal/engine"
	"github.com/piwi3910/toolbox/internal/model"
)

// CutInput is a cut as entered: width in centimeters, length in meters.
type CutInput struct {
	ID            string  `json:"id,omitempty"`
	Label         string  `json:"label"`
	MaterialLabel string  `json:"material_label,omitempty"`
	WidthCM       float64 `json:"width_cm" binding:"required,gt=0,lte=1000"`
	LengthM       float64 `json:"length_m" binding:"required,gt=0,lte=1000"`
	Quantity      int     `json:"quantity,omitempty" binding:"omitempty,gte=1,lte=1000"`
}

// RollInput describes the roll with its width in centimeters.
type RollInput struct {
	WidthCM         float64 `json:"width_cm" binding:"required,gt=0,lte=1000"`
	LengthM         float64 `json:"length_m" binding:"required,gt=0,lte=1000"`
	MaxPieceLengthM float64 `json:"max_piece_length_m" binding:"required,gte=0.1,lte=1000"`
	PricePerM2      float64 `json:"price_per_m2" binding:"gte=0"`
}

// OptimizeRequest is the body shared by the optimize, render and export endpoints.
type OptimizeRequest struct {
	ProjectName   string     `json:"project_name,omitempty"`
	MaterialLabel string     `json:"material_label,omitempty"`
	Roll          RollInput  `json:"roll"`
	Cuts          []CutInput `json:"cuts" binding:"max=1000,dive"`
}

// ScenarioInput is a named roll alternative for the compare endpoint.
type ScenarioInput struct {
	Name string    `json:"name" binding:"required"`
	Roll RollInput `json:"roll"`
}

// CompareRequest compares the given scenarios, or the default what-if set
// built from Roll when Scenarios is empty.
type CompareRequest struct {
	Roll      RollInput       `json:"roll"`
	Cuts      []CutInput      `json:"cuts" binding:"max=1000,dive"`
	Scenarios []ScenarioInput `json:"scenarios" binding:"omitempty,dive"`
}

// EstimateRequest asks for an area-based purchase estimate.
type EstimateRequest struct {
	Roll         RollInput  `json:"roll"`
	Cuts         []CutInput `json:"cuts" binding:"max=1000,dive"`
	WastePercent float64    `json:"waste_percent" binding:"gte=0,lte=100"`
}

// OptimizeSummary carries the formatted totals shown next to a layout.
type OptimizeSummary struct {
	Segments     int    `json:"segments"`
	Pieces       int    `json:"pieces"`
	UsedLength   string `json:"used_length"`
	UsedArea     string `json:"used_area"`
	ConsumedArea string `json:"consumed_area"`
	WasteArea    string `json:"waste_area"`
	WastePercent string `json:"waste_percent"`
	Cost         string `json:"cost,omitempty"`
}

// OptimizeResponse is returned by the optimize endpoint.
type OptimizeResponse struct {
	Result   model.OptimizationResult `json:"result"`
	Summary  OptimizeSummary          `json:"summary"`
	Remnants []model.Remnant          `json:"remnants"`
}

// CompareResponse lists the scenario results and the index of the one
// consuming the least roll area.
type CompareResponse struct {
	Results []engine.ComparisonResult `json:"results"`
	Best    int                       `json:"best"`
}

// ImportResponse lists the cuts read from an uploaded file.
type ImportResponse struct {
	Cuts     []CutInput `json:"cuts"`
	Errors   []string   `json:"errors"`
	Warnings []string   `json:"warnings"`
}

// Config converts the input into a RollConfig in meters.
func (r RollInput) Config() model.RollConfig {
	return model.RollConfig{
		WidthM:              model.CentimetersToMeters(r.WidthCM),
		LengthM:             r.LengthM,
		MaxPieceLengthM:     r.MaxPieceLengthM,
		PricePerSquareMeter: r.PricePerM2,
	}
}

// toCuts converts the inputs into cut requests in meters, expanding
// quantities. An input ID is kept only when the cut is not repeated. The
// expanded list is bounded by engine.MaxPieces.
func toCuts(inputs []CutInput) ([]model.CutRequest, error) {
	total := 0
	for _, in := range inputs {
		total += max(in.Quantity, 1)
	}
	if total > engine.MaxPieces {
		return nil, model.NewValidationError("cuts", "%d cuts requested, at most %d are supported", total, engine.MaxPieces)
	}

	cuts := make(model.CutList, 0, total)
	for _, in := range inputs {
		qty := max(in.Quantity, 1)
		for i := 0; i < qty; i++ {
			c := model.NewCutRequest(in.Label, model.CentimetersToMeters(in.WidthCM), in.LengthM)
			if in.ID != "" && qty == 1 {
				c.ID = in.ID
			}
			c.MaterialLabel = in.MaterialLabel
			c.ColorTag = model.ColorTagAt(len(cuts))
			cuts = append(cuts, c)
		}
	}
	return cuts, nil
}

// fromCuts converts cut requests back into the centimeter-based input form.
func fromCuts(cuts []model.CutRequest) []CutInput {
	out := make([]CutInput, len(cuts))
	for i, c := range cuts {
		out[i] = CutInput{
			ID:            c.ID,
			Label:         c.Label,
			MaterialLabel: c.MaterialLabel,
			WidthCM:       model.MetersToCentimeters(c.Width),
			LengthM:       c.Length,
		}
	}
	return out
}

func summarize(result model.OptimizationResult, currency string) OptimizeSummary {
	s := OptimizeSummary{
		Segments:     len(result.Sheets),
		Pieces:       result.PlacementCount(),
		UsedLength:   model.FormatNumber(result.TotalUsedLength(), 2) + " m",
		UsedArea:     model.FormatArea(result.TotalUsedArea),
		ConsumedArea: model.FormatArea(result.TotalConsumedArea),
		WasteArea:    model.FormatArea(result.TotalWasteArea),
		WastePercent: model.FormatNumber(result.WastePercent, 1) + " %",
	}
	if result.HasPricing() {
		s.Cost = model.FormatCurrency(result.TotalMaterialCost, currency)
	}
	return s
}
