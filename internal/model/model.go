package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CutRequest represents a required strip to be cut from the roll.
// All dimensions are in meters.
type CutRequest struct {
	ID            string  `json:"id"`
	Width         float64 `json:"width"`  // m (entered in cm, converted on input)
	Length        float64 `json:"length"` // m
	Label         string  `json:"label"`
	MaterialLabel string  `json:"material_label"`
	ColorTag      string  `json:"color"`
}

func NewCutRequest(label string, widthM, lengthM float64) CutRequest {
	return CutRequest{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  widthM,
		Length: lengthM,
	}
}

// cutFields decodes CutRequest without its custom UnmarshalJSON.
type cutFields CutRequest

// UnmarshalJSON also accepts the web tool's German field names (breite and
// laenge in meters, bezeichnung, materialBezeichnung).
func (c *CutRequest) UnmarshalJSON(data []byte) error {
	doc := struct {
		*cutFields
		Breite              Number `json:"breite"`
		Laenge              Number `json:"laenge"`
		Bezeichnung         string `json:"bezeichnung"`
		MaterialBezeichnung string `json:"materialBezeichnung"`
	}{cutFields: (*cutFields)(c)}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if c.Width == 0 {
		c.Width = float64(doc.Breite)
	}
	if c.Length == 0 {
		c.Length = float64(doc.Laenge)
	}
	if c.Label == "" {
		c.Label = doc.Bezeichnung
	}
	if c.MaterialLabel == "" {
		c.MaterialLabel = doc.MaterialBezeichnung
	}
	return nil
}

// DisplayLabel returns the label, or a placeholder for unnamed cuts.
func (c CutRequest) DisplayLabel() string {
	if c.Label == "" {
		return "Zuschnitt"
	}
	return c.Label
}

// Area returns the requested area in square meters.
func (c CutRequest) Area() float64 {
	return c.Width * c.Length
}

// RollConfig holds the material roll parameters for one optimization run.
type RollConfig struct {
	WidthM              float64 `json:"width_m"`            // Roll width
	LengthM             float64 `json:"length_m"`           // Capacity of one roll segment
	MaxPieceLengthM     float64 `json:"max_piece_length_m"` // Longest piece that can be handled in one part
	PricePerSquareMeter float64 `json:"price_per_m2"`
}

// DefaultRollConfig returns the roll the tool starts with: 100 cm x 30 m,
// pieces up to 4 m, no price.
func DefaultRollConfig() RollConfig {
	return RollConfig{
		WidthM:          1.0,
		LengthM:         30.0,
		MaxPieceLengthM: 4.0,
	}
}

// SegmentArea returns the area of one full roll segment.
func (r RollConfig) SegmentArea() float64 {
	return r.WidthM * r.LengthM
}

// Piece is a fragment of a CutRequest no longer than the maximum piece length.
type Piece struct {
	SourceCutID string  `json:"source_cut_id"`
	Width       float64 `json:"width"`
	Length      float64 `json:"length"`
	ColorTag    string  `json:"color"`
	Label       string  `json:"label"`
}

// Area returns the piece area in square meters.
func (p Piece) Area() float64 {
	return p.Width * p.Length
}

// Placement represents a single piece positioned on a sheet.
type Placement struct {
	SourceCutID string  `json:"source_cut_id"`
	Width       float64 `json:"width"`
	Length      float64 `json:"length"`
	X           float64 `json:"x"` // Lateral offset from the left roll edge (m)
	Y           float64 `json:"y"` // Offset along the roll (m)
	ColorTag    string  `json:"color"`
	Label       string  `json:"label"`
	Rotated     bool    `json:"rotated"` // Pieces are never rotated; kept for renderers
}

// Area returns the placed area in square meters.
func (p Placement) Area() float64 {
	return p.Width * p.Length
}

// Right returns the lateral end of the placement.
func (p Placement) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the longitudinal end of the placement.
func (p Placement) Bottom() float64 {
	return p.Y + p.Length
}

// Sheet is one roll segment consumed lengthwise with its placed pieces.
type Sheet struct {
	Placements   []Placement `json:"placements"`
	UsedLength   float64     `json:"used_length"`   // max(Y+Length) over placements
	UsedArea     float64     `json:"used_area"`     // sum of placement areas
	ConsumedArea float64     `json:"consumed_area"` // roll width x used length
	WasteArea    float64     `json:"waste_area"`    // consumed - used
}

// WastePercent returns the share of the consumed area that is waste.
func (s Sheet) WastePercent() float64 {
	if s.ConsumedArea <= 0 {
		return 0
	}
	return s.WasteArea / s.ConsumedArea * 100.0
}

// OptimizationResult holds the full layout and its aggregate metrics.
type OptimizationResult struct {
	Roll              RollConfig `json:"roll"`
	Sheets            []Sheet    `json:"sheets"`
	TotalUsedArea     float64    `json:"total_used_area"`
	TotalConsumedArea float64    `json:"total_consumed_area"`
	TotalWasteArea    float64    `json:"total_waste_area"`
	WastePercent      float64    `json:"waste_percent"`
	TotalMaterialCost float64    `json:"total_material_cost"`
}

// PlacementCount returns the number of placed pieces across all sheets.
func (r OptimizationResult) PlacementCount() int {
	total := 0
	for _, s := range r.Sheets {
		total += len(s.Placements)
	}
	return total
}

// TotalUsedLength returns the roll length consumed across all sheets.
func (r OptimizationResult) TotalUsedLength() float64 {
	var total float64
	for _, s := range r.Sheets {
		total += s.UsedLength
	}
	return total
}

// HasPricing reports whether a price per square meter was set.
func (r OptimizationResult) HasPricing() bool {
	return r.Roll.PricePerSquareMeter > 0
}
