package model

import "sort"

// Remnant is a rectangular area of a consumed or partially consumed roll
// segment that is large enough to be reused.
type Remnant struct {
	SheetIndex int     `json:"sheet_index"` // Index of the source sheet in the result
	X          float64 `json:"x"`           // Lateral position (m)
	Y          float64 `json:"y"`           // Position along the roll (m)
	Width      float64 `json:"width"`       // m
	Length     float64 `json:"length"`      // m
	Value      float64 `json:"value"`       // Material value at the roll price (0 if not set)
}

// Area returns the remnant area in square meters.
func (r Remnant) Area() float64 {
	return r.Width * r.Length
}

// ToCutRequest turns a remnant into a cut request, e.g. to plan a follow-up
// job on it.
func (r Remnant) ToCutRequest(label string) CutRequest {
	return NewCutRequest(label, r.Width, r.Length)
}

// MinRemnantWidthM is the narrowest strip still considered reusable.
const MinRemnantWidthM = 0.10

// MinRemnantLengthM is the shortest strip still considered reusable.
const MinRemnantLengthM = 0.50

func usableStrip(width, length float64) bool {
	return width >= MinRemnantWidthM-epsilon && length >= MinRemnantLengthM-epsilon
}

// DetectRemnants finds the reusable strips of one sheet: the lateral strip
// to the right of all placements along the used length, and the unused tail
// of the roll segment behind the used length.
func DetectRemnants(sheet Sheet, sheetIndex int, roll RollConfig) []Remnant {
	var maxRight float64
	for _, p := range sheet.Placements {
		if p.Right() > maxRight {
			maxRight = p.Right()
		}
	}

	var remnants []Remnant

	lateralW := roll.WidthM - maxRight
	if usableStrip(lateralW, sheet.UsedLength) {
		remnants = append(remnants, Remnant{
			SheetIndex: sheetIndex,
			X:          maxRight,
			Y:          0,
			Width:      lateralW,
			Length:     sheet.UsedLength,
		})
	}

	tailL := roll.LengthM - sheet.UsedLength
	if usableStrip(roll.WidthM, tailL) {
		remnants = append(remnants, Remnant{
			SheetIndex: sheetIndex,
			X:          0,
			Y:          sheet.UsedLength,
			Width:      roll.WidthM,
			Length:     tailL,
		})
	}

	for i := range remnants {
		remnants[i].Value = RoundCents(remnants[i].Area() * roll.PricePerSquareMeter)
	}

	sort.SliceStable(remnants, func(i, j int) bool {
		return remnants[i].Area() > remnants[j].Area()
	})
	return remnants
}

// DetectAllRemnants finds remnants across all sheets of a result.
func DetectAllRemnants(result OptimizationResult) []Remnant {
	var all []Remnant
	for i, sheet := range result.Sheets {
		all = append(all, DetectRemnants(sheet, i, result.Roll)...)
	}
	return all
}

// TotalRemnantArea returns the total area of all remnants in square meters.
func TotalRemnantArea(remnants []Remnant) float64 {
	var total float64
	for _, r := range remnants {
		total += r.Area()
	}
	return total
}
