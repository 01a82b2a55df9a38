// Package export provides functionality for exporting roll layouts to
// various file formats.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/toolbox/internal/model"
)

// ReportInfo carries the project details printed on reports.
type ReportInfo struct {
	ProjectName    string
	MaterialLabel  string
	CurrencySymbol string
}

// fallbackColors is used for placements without a parsable color tag.
var fallbackColors = []color.NRGBA{
	{R: 129, G: 199, B: 132, A: 255},
	{R: 100, G: 181, B: 246, A: 255},
	{R: 255, G: 183, B: 77, A: 255},
	{R: 186, G: 104, B: 200, A: 255},
	{R: 77, G: 208, B: 225, A: 255},
	{R: 229, G: 115, B: 115, A: 255},
}

// placementColor returns the fill color of the i-th placement.
func placementColor(p model.Placement, i int) color.NRGBA {
	if c, ok := model.ParseColorTag(p.ColorTag); ok {
		return c
	}
	return fallbackColors[i%len(fallbackColors)]
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 30.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF writes the layout report to path. Each sheet is rendered on
// its own page, followed by a summary page.
func ExportPDF(path string, result model.OptimizationResult, info ReportInfo) error {
	pdf, err := buildPDF(result, info)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF writes the layout report to w.
func WritePDF(w io.Writer, result model.OptimizationResult, info ReportInfo) error {
	pdf, err := buildPDF(result, info)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(result model.OptimizationResult, info ReportInfo) (*fpdf.Fpdf, error) {
	if len(result.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(info.ProjectName, true)

	for i, sheet := range result.Sheets {
		pdf.AddPage()
		renderSheetPage(pdf, tr, sheet, result.Roll, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, tr, result, info)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf, nil
}

// renderSheetPage draws one roll segment. The roll runs left to right on
// the page; its width runs top to bottom.
func renderSheetPage(pdf *fpdf.Fpdf, tr func(string) string, sheet model.Sheet, roll model.RollConfig, sheetNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Roll segment %d (%s cm x %s m)", sheetNum,
		model.FormatNumber(model.MetersToCentimeters(roll.WidthM), 0), model.FormatNumber(sheet.UsedLength, 2))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(title), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Used: %s | Consumed: %s | Waste: %s (%s%%)",
		len(sheet.Placements), model.FormatArea(sheet.UsedArea), model.FormatArea(sheet.ConsumedArea),
		model.FormatArea(sheet.WasteArea), model.FormatNumber(sheet.WastePercent(), 1))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, tr(stats), "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	length := math.Max(sheet.UsedLength, 0.01)
	scale := math.Min(drawWidth/length, drawHeight/roll.WidthM)
	canvasW := length * scale
	canvasH := roll.WidthM * scale
	offsetX := marginLeft
	offsetY := drawAreaTop

	// Consumed roll area
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range sheet.Placements {
		col := placementColor(p, i)
		px := offsetX + p.Y*scale
		py := offsetY + p.X*scale
		pw := p.Length * scale
		ph := p.Width * scale

		pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			label := tr(p.Label)
			if labelW := pdf.GetStringWidth(label); label != "" && labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			dims := pieceDimensions(p)
			if dimsW := pdf.GetStringWidth(dims); ph > 10 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, roll.WidthM, length, offsetX, offsetY, canvasW, canvasH)
	drawPiecesLegend(pdf, tr, sheet, offsetY+canvasH+8)
}

// pieceDimensions formats a placement as "30 cm x 4,00 m".
func pieceDimensions(p model.Placement) string {
	return fmt.Sprintf("%s cm x %s m", model.FormatNumber(model.MetersToCentimeters(p.Width), 1), model.FormatNumber(p.Length, 2))
}

// drawDimensionAnnotations labels the roll width and the used length
// outside the drawn segment.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, widthM, lengthM, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	lengthLabel := model.FormatNumber(lengthM, 2) + " m"
	lw := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lw)/2, offsetY+canvasH+1)
	pdf.CellFormat(lw, 4, lengthLabel, "", 0, "C", false, 0, "")

	widthLabel := model.FormatNumber(model.MetersToCentimeters(widthM), 0) + " cm"
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	ww := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-ww/2, offsetY+canvasH/2-2)
	pdf.CellFormat(ww, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPiecesLegend renders a compact legend of placed pieces below the segment.
func drawPiecesLegend(pdf *fpdf.Fpdf, tr func(string) string, sheet model.Sheet, startY float64) {
	if len(sheet.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range sheet.Placements {
		col := placementColor(p, i)
		label := tr(fmt.Sprintf("%s (%s)", displayLabel(p), pieceDimensions(p)))
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY > pageHeight-marginBottom {
			break
		}

		pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func displayLabel(p model.Placement) string {
	if p.Label == "" {
		return "Zuschnitt"
	}
	return p.Label
}

// renderSummaryPage draws the final page with overall figures and a
// per-segment table.
func renderSummaryPage(pdf *fpdf.Fpdf, tr func(string) string, result model.OptimizationResult, info ReportInfo) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	title := "Cut Layout Summary"
	if info.ProjectName != "" {
		title += " - " + info.ProjectName
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, tr(title), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	roll := result.Roll
	summaryItems := []struct {
		label string
		value string
	}{
		{"Roll", fmt.Sprintf("%s cm x %s m, pieces up to %s m",
			model.FormatNumber(model.MetersToCentimeters(roll.WidthM), 0),
			model.FormatNumber(roll.LengthM, 1), model.FormatNumber(roll.MaxPieceLengthM, 1))},
		{"Roll Segments Used", fmt.Sprintf("%d", len(result.Sheets))},
		{"Pieces Placed", fmt.Sprintf("%d", result.PlacementCount())},
		{"Roll Length Used", model.FormatNumber(result.TotalUsedLength(), 2) + " m"},
		{"Used Area", model.FormatArea(result.TotalUsedArea)},
		{"Consumed Area", model.FormatArea(result.TotalConsumedArea)},
		{"Waste", fmt.Sprintf("%s (%s%%)", model.FormatArea(result.TotalWasteArea), model.FormatNumber(result.WastePercent, 1))},
	}
	if info.MaterialLabel != "" {
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Material", info.MaterialLabel})
	}
	if result.HasPricing() {
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Material Cost", model.FormatCurrency(result.TotalMaterialCost, info.CurrencySymbol)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, tr(item.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 6, tr(item.value), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Segment Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{25, 25, 40, 45, 45, 45, 30}
	headers := []string{"Segment", "Pieces", "Used Length", "Used Area", "Consumed Area", "Waste Area", "Waste"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, sheet := range result.Sheets {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", len(sheet.Placements)),
			model.FormatNumber(sheet.UsedLength, 2) + " m",
			model.FormatArea(sheet.UsedArea),
			model.FormatArea(sheet.ConsumedArea),
			model.FormatArea(sheet.WasteArea),
			model.FormatNumber(sheet.WastePercent(), 1) + "%",
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, tr(cell), "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := fmt.Sprintf("Generated by ToolBox Roll Optimizer on %s", time.Now().Format("02.01.2006 15:04"))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
