package model

import "math"

// RollEstimate holds a quick purchase estimate made from areas alone,
// without laying out the cuts.
type RollEstimate struct {
	TotalCutArea        float64 `json:"total_cut_area"`         // Sum of requested areas (m²)
	SegmentArea         float64 `json:"segment_area"`           // Area of one roll segment (m²)
	SegmentsNeededExact float64 `json:"segments_needed_exact"`  // Exact fractional number of segments
	SegmentsNeededMin   int     `json:"segments_needed_min"`    // Ceiling of the exact value
	SegmentsWithWaste   int     `json:"segments_with_waste"`    // Recommended segments including waste factor
	WastePercent        float64 `json:"waste_percent"`          // Waste factor applied (e.g. 15 for 15%)
	AreaWithWaste       float64 `json:"area_with_waste"`        // Cut area grown by the waste factor (m²)
	EstimatedCost       float64 `json:"estimated_cost"`         // AreaWithWaste x price
	PricePerSquareMeter float64 `json:"price_per_square_meter"` // Price used for estimation
}

// CalculateRollEstimate computes how much roll material to buy for a cut list.
// The material is billed by area, so the cost follows the cut area grown by
// the waste factor rather than whole segments.
func CalculateRollEstimate(cuts []CutRequest, roll RollConfig, wastePercent float64) RollEstimate {
	var totalArea float64
	for _, c := range cuts {
		totalArea += c.Area()
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	areaWithWaste := totalArea * wasteFactor

	est := RollEstimate{
		TotalCutArea:        totalArea,
		WastePercent:        wastePercent,
		AreaWithWaste:       areaWithWaste,
		EstimatedCost:       RoundCents(areaWithWaste * roll.PricePerSquareMeter),
		PricePerSquareMeter: roll.PricePerSquareMeter,
	}

	segmentArea := roll.SegmentArea()
	if segmentArea <= 0 {
		return est
	}

	exact := totalArea / segmentArea
	minSegments := int(math.Ceil(exact - epsilon))
	withWaste := int(math.Ceil(exact*wasteFactor - epsilon))
	if withWaste < minSegments {
		withWaste = minSegments
	}

	est.SegmentArea = segmentArea
	est.SegmentsNeededExact = exact
	est.SegmentsNeededMin = minSegments
	est.SegmentsWithWaste = withWaste
	return est
}
