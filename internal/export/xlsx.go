package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/toolbox/internal/model"
)

// Workbook sheet names.
const (
	SheetCuts    = "Cuts"
	SheetLayout  = "Layout"
	SheetSummary = "Summary"
)

// ExportXLSX writes the cut list and the layout to an Excel workbook.
func ExportXLSX(path string, cuts []model.CutRequest, result model.OptimizationResult, info ReportInfo) error {
	f, err := buildWorkbook(cuts, result, info)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteXLSX writes the workbook to w.
func WriteXLSX(w io.Writer, cuts []model.CutRequest, result model.OptimizationResult, info ReportInfo) error {
	f, err := buildWorkbook(cuts, result, info)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(cuts []model.CutRequest, result model.OptimizationResult, info ReportInfo) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetCuts); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetLayout, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	cutRows := [][]interface{}{{"ID", "Label", "Width (cm)", "Length (m)", "Area (m²)", "Material"}}
	for _, c := range cuts {
		cutRows = append(cutRows, []interface{}{
			c.ID, c.DisplayLabel(), model.MetersToCentimeters(c.Width), c.Length, c.Area(), c.MaterialLabel,
		})
	}

	layoutRows := [][]interface{}{{"Segment", "Piece", "Cut ID", "Label", "Width (cm)", "Length (m)", "X (m)", "Y (m)"}}
	for si, s := range result.Sheets {
		for pi, p := range s.Placements {
			layoutRows = append(layoutRows, []interface{}{
				si + 1, pi + 1, p.SourceCutID, displayLabel(p), model.MetersToCentimeters(p.Width), p.Length, p.X, p.Y,
			})
		}
	}

	summaryRows := [][]interface{}{
		{"Project", info.ProjectName},
		{"Material", info.MaterialLabel},
		{"Roll width (cm)", model.MetersToCentimeters(result.Roll.WidthM)},
		{"Roll length (m)", result.Roll.LengthM},
		{"Max piece length (m)", result.Roll.MaxPieceLengthM},
		{"Price per m²", result.Roll.PricePerSquareMeter},
		{"Segments", len(result.Sheets)},
		{"Pieces", result.PlacementCount()},
		{"Used area (m²)", result.TotalUsedArea},
		{"Consumed area (m²)", result.TotalConsumedArea},
		{"Waste area (m²)", result.TotalWasteArea},
		{"Waste (%)", result.WastePercent},
		{"Material cost", model.RoundCents(result.TotalMaterialCost)},
	}

	for _, sheet := range []struct {
		name       string
		rows       [][]interface{}
		headerBold bool
	}{
		{SheetCuts, cutRows, true},
		{SheetLayout, layoutRows, true},
		{SheetSummary, summaryRows, false},
	} {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
		if sheet.headerBold {
			last, _ := excelize.CoordinatesToCellName(len(sheet.rows[0]), 1)
			if err := f.SetCellStyle(sheet.name, "A1", last, bold); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
