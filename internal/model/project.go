package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultProjectName is used for new projects.
const DefaultProjectName = "Neues Projekt"

// ImportedProjectName is used for imported project files without a name.
const ImportedProjectName = "Importiertes Projekt"

// Number is a float64 that also accepts numeric strings when decoding JSON.
// Form-based tools export their fields as strings, sometimes with a decimal
// comma ("12,5"); an empty string decodes as zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Project is the flat snapshot used for export, import and session storage.
// Cut dimensions are in meters; the roll width is kept in centimeters as it
// is entered.
type Project struct {
	ProjectName         string  `json:"project_name"`
	Cuts                CutList `json:"cuts"`
	MaterialLabel       string  `json:"material_label"`
	PricePerSquareMeter Number  `json:"price_per_m2"`
	RollWidthCM         Number  `json:"roll_width"`
	RollLengthM         Number  `json:"roll_length"`
	MaxLengthM          Number  `json:"max_length"`
}

// projectFields decodes Project without its custom UnmarshalJSON.
type projectFields Project

// UnmarshalJSON accepts the field names of this format as well as the
// camel-case German names written by the web tool (projectName,
// materialBezeichnung, rolleBreite, ...). The English names win when both
// are present.
func (p *Project) UnmarshalJSON(data []byte) error {
	doc := struct {
		*projectFields
		LegacyName          string `json:"projectName"`
		MaterialBezeichnung string `json:"materialBezeichnung"`
		MaterialKostenProM2 Number `json:"materialKostenProM2"`
		RolleBreite         Number `json:"rolleBreite"`
		RolleLaenge         Number `json:"rolleLaenge"`
		MaxLaenge           Number `json:"maxLaenge"`
	}{projectFields: (*projectFields)(p)}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if p.ProjectName == "" {
		p.ProjectName = doc.LegacyName
	}
	if p.MaterialLabel == "" {
		p.MaterialLabel = doc.MaterialBezeichnung
	}
	if p.PricePerSquareMeter == 0 {
		p.PricePerSquareMeter = doc.MaterialKostenProM2
	}
	if p.RollWidthCM == 0 {
		p.RollWidthCM = doc.RolleBreite
	}
	if p.RollLengthM == 0 {
		p.RollLengthM = doc.RolleLaenge
	}
	if p.MaxLengthM == 0 {
		p.MaxLengthM = doc.MaxLaenge
	}
	return nil
}

func NewProject() Project {
	roll := DefaultRollConfig()
	return Project{
		ProjectName: DefaultProjectName,
		Cuts:        CutList{},
		RollWidthCM: Number(MetersToCentimeters(roll.WidthM)),
		RollLengthM: Number(roll.LengthM),
		MaxLengthM:  Number(roll.MaxPieceLengthM),
	}
}

// Roll converts the project's roll fields into a RollConfig in meters.
func (p Project) Roll() RollConfig {
	return RollConfig{
		WidthM:              CentimetersToMeters(float64(p.RollWidthCM)),
		LengthM:             float64(p.RollLengthM),
		MaxPieceLengthM:     float64(p.MaxLengthM),
		PricePerSquareMeter: float64(p.PricePerSquareMeter),
	}
}

// SetRoll stores a RollConfig into the project's roll fields.
func (p *Project) SetRoll(r RollConfig) {
	p.RollWidthCM = Number(MetersToCentimeters(r.WidthM))
	p.RollLengthM = Number(r.LengthM)
	p.MaxLengthM = Number(r.MaxPieceLengthM)
	p.PricePerSquareMeter = Number(r.PricePerSquareMeter)
}

// ApplyMaterial copies a material template's name and price into the project.
func (p *Project) ApplyMaterial(m Material) {
	p.MaterialLabel = m.Name
	p.PricePerSquareMeter = Number(m.PricePerM2)
}

// Normalize fills in the defaults an imported snapshot may lack: a name,
// the default roll dimensions, a non-nil cut list and color tags.
func (p *Project) Normalize() {
	defaults := NewProject()
	if strings.TrimSpace(p.ProjectName) == "" {
		p.ProjectName = defaults.ProjectName
	}
	if p.RollWidthCM <= 0 {
		p.RollWidthCM = defaults.RollWidthCM
	}
	if p.RollLengthM <= 0 {
		p.RollLengthM = defaults.RollLengthM
	}
	if p.MaxLengthM <= 0 {
		p.MaxLengthM = defaults.MaxLengthM
	}
	if p.Cuts == nil {
		p.Cuts = CutList{}
	}
	for i := range p.Cuts {
		if p.Cuts[i].ID == "" {
			p.Cuts[i].ID = NewCutRequest("", 0, 0).ID
		}
		if p.Cuts[i].ColorTag == "" {
			p.Cuts[i].ColorTag = NextColorTag(p.Cuts.ColorTags())
		}
	}
}
