package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/toolbox/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	CutID      string  `json:"cut_id"`
	Label      string  `json:"label"`
	WidthCM    float64 `json:"width_cm"`
	LengthM    float64 `json:"length_m"`
	SheetIndex int     `json:"sheet"`
	PieceIndex int     `json:"piece"`
	X          float64 `json:"x_m"`
	Y          float64 `json:"y_m"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos extracts one label per placed piece, numbered per
// sheet in placement order.
func CollectLabelInfos(result model.OptimizationResult) []LabelInfo {
	var labels []LabelInfo
	for sheetIdx, sheet := range result.Sheets {
		for i, p := range sheet.Placements {
			labels = append(labels, LabelInfo{
				CutID:      p.SourceCutID,
				Label:      displayLabel(p),
				WidthCM:    model.MetersToCentimeters(p.Width),
				LengthM:    p.Length,
				SheetIndex: sheetIdx + 1,
				PieceIndex: i + 1,
				X:          p.X,
				Y:          p.Y,
			})
		}
	}
	return labels
}

// ExportLabels writes a PDF of QR-coded labels for all placed pieces to path.
func ExportLabels(path string, result model.OptimizationResult) error {
	pdf, err := buildLabels(result)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WriteLabels writes the label PDF to w.
func WriteLabels(w io.Writer, result model.OptimizationResult) error {
	pdf, err := buildLabels(result)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// buildLabels lays out labels on a standard label sheet format
// (Avery 5160, 3 columns x 10 rows on US Letter).
func buildLabels(result model.OptimizationResult) (*fpdf.Fpdf, error) {
	if len(result.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets to generate labels for")
	}
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return nil, fmt.Errorf("no pieces placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		x := labelMarginLeft + float64(posOnPage%labelCols)*labelWidth
		y := labelMarginTop + float64(posOnPage/labelCols)*labelHeight

		if err := renderLabel(pdf, tr, x, y, label); err != nil {
			return nil, fmt.Errorf("failed to render label for %q: %w", label.Label, err)
		}
	}
	return pdf, nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info LabelInfo) error {
	// Light border as cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%d", info.SheetIndex, info.PieceIndex)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x+labelWidth-qrSize-labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, tr(info.Label), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s cm x %s m", model.FormatNumber(info.WidthCM, 1), model.FormatNumber(info.LengthM, 2))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pos := fmt.Sprintf("Segment %d #%d @ %s / %s m", info.SheetIndex, info.PieceIndex,
		model.FormatNumber(info.X, 2), model.FormatNumber(info.Y, 2))
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return pdf.Error()
}

// truncate shortens s with an ellipsis until it fits maxW.
func truncate(pdf *fpdf.Fpdf, s string, maxW float64) string {
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > maxW {
		s = s[:len(s)-1]
	}
	return s + "..."
}
