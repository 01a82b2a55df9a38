package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/toolbox/internal/model"
)

// DXF layer names.
const (
	LayerRoll   = "ROLL"
	LayerCuts   = "CUTS"
	LayerLabels = "LABELS"
)

// dxfSheetGap is the distance between segments in meters.
const dxfSheetGap = 0.2

// ExportDXF writes the layout as a DXF drawing. Segments are placed side by
// side along X; within a segment X is the roll width and Y runs along the
// roll. unitsPerMeter scales the output; zero or less means millimeters.
func ExportDXF(path string, result model.OptimizationResult, unitsPerMeter float64) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}
	if !model.IsPositive(unitsPerMeter) {
		unitsPerMeter = 1000
	}

	d := dxf.NewDrawing()
	for _, l := range []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerRoll, color.White},
		{LayerCuts, color.Cyan},
		{LayerLabels, color.Yellow},
	} {
		if _, err := d.AddLayer(l.name, l.col, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	u := func(m float64) float64 { return m * unitsPerMeter }
	roll := result.Roll
	textHeight := u(0.03)

	for i, sheet := range result.Sheets {
		ox := float64(i) * (roll.WidthM + dxfSheetGap)

		if err := d.ChangeLayer(LayerRoll); err != nil {
			return err
		}
		if err := rect(d, u(ox), 0, u(roll.WidthM), u(sheet.UsedLength)); err != nil {
			return err
		}
		if _, err := d.Text(fmt.Sprintf("Segment %d", i+1), u(ox), -2*textHeight, 0, textHeight); err != nil {
			return err
		}

		for _, p := range sheet.Placements {
			if err := d.ChangeLayer(LayerCuts); err != nil {
				return err
			}
			if err := rect(d, u(ox+p.X), u(p.Y), u(p.Width), u(p.Length)); err != nil {
				return err
			}
			if err := d.ChangeLayer(LayerLabels); err != nil {
				return err
			}
			text := fmt.Sprintf("%s %s", displayLabel(p), pieceDimensions(p))
			if _, err := d.Text(text, u(ox+p.X)+textHeight/2, u(p.Y)+textHeight/2, 0, textHeight); err != nil {
				return err
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// rect draws an axis-aligned rectangle from four LINE entities.
func rect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
