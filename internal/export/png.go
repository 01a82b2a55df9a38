package export

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/piwi3910/toolbox/internal/model"
)

// DefaultPNGWidth is the image width used when none is requested.
const DefaultPNGWidth = 1200

const pngMargin = 20.0

// RenderSheetPNG draws one roll segment as a PNG image of the given pixel
// width. The roll runs left to right; the image height follows the roll
// width at the same scale.
func RenderSheetPNG(w io.Writer, sheet model.Sheet, roll model.RollConfig, width int) error {
	if width <= 0 {
		width = DefaultPNGWidth
	}
	if !model.IsPositive(roll.WidthM) {
		return fmt.Errorf("invalid roll width")
	}
	length := math.Max(sheet.UsedLength, 0.01)
	scale := (float64(width) - 2*pngMargin) / length
	height := int(math.Ceil(roll.WidthM*scale + 2*pngMargin))

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Consumed roll area
	dc.DrawRectangle(pngMargin, pngMargin, length*scale, roll.WidthM*scale)
	dc.SetRGB255(235, 235, 235)
	dc.FillPreserve()
	dc.SetRGB255(100, 100, 100)
	dc.SetLineWidth(2)
	dc.Stroke()

	for i, p := range sheet.Placements {
		col := placementColor(p, i)
		x := pngMargin + p.Y*scale
		y := pngMargin + p.X*scale
		pw := p.Length * scale
		ph := p.Width * scale

		dc.DrawRectangle(x, y, pw, ph)
		dc.SetRGB255(int(col.R), int(col.G), int(col.B))
		dc.FillPreserve()
		dc.SetRGB255(30, 30, 30)
		dc.SetLineWidth(1)
		dc.Stroke()

		label := displayLabel(p)
		if tw, th := dc.MeasureString(label); tw < pw-4 && th < ph-4 {
			dc.DrawStringAnchored(label, x+pw/2, y+ph/2, 0.5, 0.5)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
