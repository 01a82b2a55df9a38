// Package ui provides the ToolBox desktop application UI components.
//
// This file defines a compact Fyne theme for the dense form layout.

package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names stored in the app config.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ToolBoxTheme wraps the default Fyne theme with compact sizing overrides.
type ToolBoxTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewToolBoxTheme creates a theme for one of the config theme names.
func NewToolBoxTheme(name string) *ToolBoxTheme {
	t := &ToolBoxTheme{base: theme.DefaultTheme()}
	t.SetThemeName(name)
	return t
}

// SetThemeName switches between light, dark and the system variant.
func (t *ToolBoxTheme) SetThemeName(name string) {
	t.variant, t.followSystem = parseThemeName(name)
}

// parseThemeName maps a config theme name to a variant. Unknown names
// follow the system.
func parseThemeName(name string) (fyne.ThemeVariant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return theme.VariantLight, false
	case ThemeDark:
		return theme.VariantDark, false
	default:
		return theme.VariantLight, true
	}
}

// Color delegates to the base theme with the configured variant.
func (t *ToolBoxTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.followSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *ToolBoxTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *ToolBoxTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *ToolBoxTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
