package model

// AppConfig holds application-wide preferences and default roll settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultRollWidthCM     float64 `json:"default_roll_width_cm"`
	DefaultRollLengthM     float64 `json:"default_roll_length_m"`
	DefaultMaxPieceLengthM float64 `json:"default_max_piece_length_m"`
	DefaultMaterialKey     string  `json:"default_material_key"` // "" = no template

	// Application preferences
	CurrencySymbol string   `json:"currency_symbol"`
	AutoSave       bool     `json:"auto_save"` // Persist the session on every change
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values of
// DefaultRollConfig().
func DefaultAppConfig() AppConfig {
	roll := DefaultRollConfig()
	return AppConfig{
		DefaultRollWidthCM:     MetersToCentimeters(roll.WidthM),
		DefaultRollLengthM:     roll.LengthM,
		DefaultMaxPieceLengthM: roll.MaxPieceLengthM,
		DefaultMaterialKey:     "",
		CurrencySymbol:         "€",
		AutoSave:               true,
		RecentProjects:         []string{},
		Theme:                  "system",
	}
}

// ApplyToProject copies the default roll values into a project, and the
// default material template if it exists in the catalog.
// This is used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToProject(p *Project, catalog MaterialCatalog) {
	if c.DefaultRollWidthCM > 0 {
		p.RollWidthCM = Number(c.DefaultRollWidthCM)
	}
	if c.DefaultRollLengthM > 0 {
		p.RollLengthM = Number(c.DefaultRollLengthM)
	}
	if c.DefaultMaxPieceLengthM > 0 {
		p.MaxLengthM = Number(c.DefaultMaxPieceLengthM)
	}
	if c.DefaultMaterialKey != "" {
		if m := catalog.FindByKey(c.DefaultMaterialKey); m != nil {
			p.ApplyMaterial(*m)
		}
	}
}

// maxRecentProjects bounds the recent projects list.
const maxRecentProjects = 10

// AddRecentProject moves path to the front of the recent projects list.
func (c *AppConfig) AddRecentProject(path string) {
	list := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			list = append(list, p)
		}
	}
	if len(list) > maxRecentProjects {
		list = list[:maxRecentProjects]
	}
	c.RecentProjects = list
}
