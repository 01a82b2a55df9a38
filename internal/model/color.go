package model

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// goldenAngle spreads consecutive hues around the color wheel.
const goldenAngle = 137.508

// ColorTagAt returns the pastel HSL tag for the n-th cut of a list.
func ColorTagAt(n int) string {
	h := int(math.Mod(float64(n)*goldenAngle, 360))
	s := 70 + (n*7)%30
	l := 75 + (n*5)%15
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// NextColorTag returns a color tag that is not yet used by any of the
// existing tags.
func NextColorTag(existing []string) string {
	used := make(map[string]bool, len(existing))
	for _, tag := range existing {
		used[tag] = true
	}
	n := len(existing)
	tag := ColorTagAt(n)
	for attempts := 0; used[tag] && attempts < 360; attempts++ {
		n++
		tag = ColorTagAt(n)
	}
	return tag
}

// ParseColorTag converts a "hsl(h, s%, l%)" or "#rrggbb" tag to an RGBA color.
// The alpha channel is left fully opaque.
func ParseColorTag(tag string) (color.NRGBA, bool) {
	tag = strings.TrimSpace(strings.ToLower(tag))
	switch {
	case strings.HasPrefix(tag, "#") && len(tag) == 7:
		v, err := strconv.ParseUint(tag[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	case strings.HasPrefix(tag, "hsl(") && strings.HasSuffix(tag, ")"):
		parts := strings.Split(tag[4:len(tag)-1], ",")
		if len(parts) != 3 {
			return color.NRGBA{}, false
		}
		var vals [3]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
			if err != nil {
				return color.NRGBA{}, false
			}
			vals[i] = f
		}
		r, g, b := hslToRGB(vals[0], vals[1]/100, vals[2]/100)
		return color.NRGBA{R: r, G: g, B: b, A: 255}, true
	default:
		return color.NRGBA{}, false
	}
}

// hslToRGB converts hue (degrees), saturation and lightness (0..1) to RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return toByte(r + m), toByte(g + m), toByte(b + m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
