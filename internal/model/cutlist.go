package model

import "fmt"

// CutList is the ordered list of cut requests of a project.
type CutList []CutRequest

// ColorTags returns the color tags currently in use.
func (cl CutList) ColorTags() []string {
	tags := make([]string, 0, len(cl))
	for _, c := range cl {
		if c.ColorTag != "" {
			tags = append(tags, c.ColorTag)
		}
	}
	return tags
}

// Find returns the index of the cut with the given ID, or -1.
func (cl CutList) Find(id string) int {
	for i := range cl {
		if cl[i].ID == id {
			return i
		}
	}
	return -1
}

// TotalArea returns the requested area of all cuts in square meters.
func (cl CutList) TotalArea() float64 {
	var total float64
	for _, c := range cl {
		total += c.Area()
	}
	return total
}

// checkCut validates the dimensions of a single cut against the roll width.
func checkCut(widthM, lengthM, rollWidthM float64) error {
	if !IsPositive(widthM) || !IsPositive(lengthM) {
		return NewValidationError("", "width (cm) and length (m) must be greater than zero")
	}
	if IsPositive(rollWidthM) && widthM > rollWidthM+epsilon {
		return NewValidationError("width", "%s cm exceeds roll width %s cm",
			FormatNumber(MetersToCentimeters(widthM), 1), FormatNumber(MetersToCentimeters(rollWidthM), 1))
	}
	return nil
}

// Add appends a new cut and returns it. The cut gets a fresh ID and a
// color tag not used by any other cut in the list.
func (cl *CutList) Add(label, materialLabel string, widthM, lengthM, rollWidthM float64) (CutRequest, error) {
	if err := checkCut(widthM, lengthM, rollWidthM); err != nil {
		return CutRequest{}, err
	}
	c := NewCutRequest(label, widthM, lengthM)
	c.MaterialLabel = materialLabel
	c.ColorTag = NextColorTag(cl.ColorTags())
	*cl = append(*cl, c)
	return c, nil
}

// Update changes the dimensions and labels of an existing cut. ID and
// color tag are kept.
func (cl CutList) Update(id, label, materialLabel string, widthM, lengthM, rollWidthM float64) error {
	idx := cl.Find(id)
	if idx < 0 {
		return fmt.Errorf("cut %s not found", id)
	}
	if err := checkCut(widthM, lengthM, rollWidthM); err != nil {
		return err
	}
	cl[idx].Label = label
	cl[idx].MaterialLabel = materialLabel
	cl[idx].Width = widthM
	cl[idx].Length = lengthM
	return nil
}

// Remove deletes the cut with the given ID. Returns true if it was found.
func (cl *CutList) Remove(id string) bool {
	idx := cl.Find(id)
	if idx < 0 {
		return false
	}
	*cl = append((*cl)[:idx], (*cl)[idx+1:]...)
	return true
}

// Clone returns an independent copy of the list.
func (cl CutList) Clone() CutList {
	if cl == nil {
		return nil
	}
	cp := make(CutList, len(cl))
	copy(cp, cl)
	return cp
}
