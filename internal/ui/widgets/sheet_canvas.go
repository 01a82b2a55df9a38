package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/toolbox/internal/model"
)

// Fallback piece colors for placements without a parsable color tag.
var partColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

var (
	rollColor   = color.NRGBA{R: 200, G: 204, B: 208, A: 255} // sheet metal
	borderColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	pieceBorder = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// SheetCanvas draws one used roll segment. The roll runs left to right;
// its width is the vertical axis.
type SheetCanvas struct {
	widget.BaseWidget
	sheet     model.Sheet
	roll      model.RollConfig
	maxWidth  float32
	maxHeight float32
}

func NewSheetCanvas(sheet model.Sheet, roll model.RollConfig, maxW, maxH float32) *SheetCanvas {
	sc := &SheetCanvas{
		sheet:     sheet,
		roll:      roll,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	sc.ExtendBaseWidget(sc)
	return sc
}

func (sc *SheetCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newSheetCanvasRenderer(sc)
}

// fitScale returns the pixels per meter that fit a segment of the given
// length and width into maxW x maxH.
func fitScale(lengthM, widthM float64, maxW, maxH float32) float32 {
	if lengthM <= 0 || widthM <= 0 {
		return 0
	}
	scale := maxW / float32(lengthM)
	if s := maxH / float32(widthM); s < scale {
		scale = s
	}
	return scale
}

// PieceColor returns the display color of a placement.
func PieceColor(p model.Placement, i int) color.NRGBA {
	if c, ok := model.ParseColorTag(p.ColorTag); ok {
		c.A = 220
		return c
	}
	return partColors[i%len(partColors)]
}

type sheetCanvasRenderer struct {
	sc      *SheetCanvas
	objects []fyne.CanvasObject
}

func newSheetCanvasRenderer(sc *SheetCanvas) *sheetCanvasRenderer {
	r := &sheetCanvasRenderer{sc: sc}
	r.rebuild()
	return r
}

func (r *sheetCanvasRenderer) rebuild() {
	r.objects = nil

	sheet := r.sc.sheet
	scale := fitScale(sheet.UsedLength, r.sc.roll.WidthM, r.sc.maxWidth, r.sc.maxHeight)
	if scale == 0 {
		return
	}

	canvasW := float32(sheet.UsedLength) * scale
	canvasH := float32(r.sc.roll.WidthM) * scale

	bg := canvas.NewRectangle(rollColor)
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = borderColor
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)

	for i, p := range sheet.Placements {
		pw := float32(p.Length) * scale
		ph := float32(p.Width) * scale
		px := float32(p.Y) * scale
		py := float32(p.X) * scale

		rect := canvas.NewRectangle(PieceColor(p, i))
		rect.StrokeColor = pieceBorder
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(pw, ph))
		rect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, rect)

		if pw > 40 && ph > 14 {
			label := canvas.NewText(PieceCaption(p), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+1))
			r.objects = append(r.objects, label)
		}
	}
}

// PieceCaption is the short text drawn on a placed piece, e.g. "Traufe 30 x 4,00".
func PieceCaption(p model.Placement) string {
	label := p.Label
	if label == "" {
		label = "Zuschnitt"
	}
	return fmt.Sprintf("%s %s x %s", label,
		model.FormatNumber(model.MetersToCentimeters(p.Width), 0),
		model.FormatNumber(p.Length, 2))
}

func (r *sheetCanvasRenderer) Layout(size fyne.Size)        {}
func (r *sheetCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *sheetCanvasRenderer) Destroy()                     {}
func (r *sheetCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *sheetCanvasRenderer) MinSize() fyne.Size {
	scale := fitScale(r.sc.sheet.UsedLength, r.sc.roll.WidthM, r.sc.maxWidth, r.sc.maxHeight)
	return fyne.NewSize(float32(r.sc.sheet.UsedLength)*scale, float32(r.sc.roll.WidthM)*scale)
}

// SheetHeader describes one segment, e.g.
// "Segment 1: 100 cm x 8,50 m, 5 pieces, 12,3 % waste".
func SheetHeader(i int, sheet model.Sheet, roll model.RollConfig) string {
	return fmt.Sprintf("Segment %d: %s cm x %s m, %d pieces, %s %% waste",
		i+1,
		model.FormatNumber(model.MetersToCentimeters(roll.WidthM), 0),
		model.FormatNumber(sheet.UsedLength, 2),
		len(sheet.Placements),
		model.FormatNumber(sheet.WastePercent(), 1))
}

// SummaryText is the totals line below the segments.
func SummaryText(result model.OptimizationResult, currency string) string {
	text := fmt.Sprintf("Total: %d segments, %s m of roll, used %s of %s, waste %s (%s %%)",
		len(result.Sheets),
		model.FormatNumber(result.TotalUsedLength(), 2),
		model.FormatArea(result.TotalUsedArea),
		model.FormatArea(result.TotalConsumedArea),
		model.FormatArea(result.TotalWasteArea),
		model.FormatNumber(result.WastePercent, 1))
	if result.HasPricing() {
		text += " | Material cost: " + model.FormatCurrency(result.TotalMaterialCost, currency)
	}
	return text
}

// RemnantLines lists the reusable leftovers of a layout.
func RemnantLines(remnants []model.Remnant) []string {
	lines := make([]string, 0, len(remnants))
	for _, r := range remnants {
		lines = append(lines, fmt.Sprintf("  Segment %d: %s cm x %s m",
			r.SheetIndex+1,
			model.FormatNumber(model.MetersToCentimeters(r.Width), 0),
			model.FormatNumber(r.Length, 2)))
	}
	return lines
}

// RenderSheetResults creates a scrollable container of all segments.
func RenderSheetResults(result *model.OptimizationResult, currency string) fyne.CanvasObject {
	if result == nil || len(result.Sheets) == 0 {
		return widget.NewLabel("No results yet. Add cuts, then click Optimize.")
	}

	var items []fyne.CanvasObject

	for i, sheet := range result.Sheets {
		header := widget.NewLabel(SheetHeader(i, sheet, result.Roll))
		header.TextStyle = fyne.TextStyle{Bold: true}

		items = append(items, header, NewSheetCanvas(sheet, result.Roll, 900, 220), widget.NewSeparator())
	}

	if remnants := model.DetectAllRemnants(*result); len(remnants) > 0 {
		remnantHeader := widget.NewLabel("Usable remnants:")
		remnantHeader.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, remnantHeader)
		for _, line := range RemnantLines(remnants) {
			items = append(items, widget.NewLabel(line))
		}
		items = append(items, widget.NewSeparator())
	}

	summary := widget.NewLabel(SummaryText(*result, currency))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	summary.Wrapping = fyne.TextWrapWord
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
