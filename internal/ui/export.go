package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/toolbox/internal/export"
	cutimporter "github.com/piwi3910/toolbox/internal/importer"
	"github.com/piwi3910/toolbox/internal/project"
)

// exportFileName derives a default file name with the given extension from
// the project name.
func (a *App) exportFileName(ext string) string {
	name := project.ExportFileName(a.session.Project.ProjectName)
	return strings.TrimSuffix(name, project.FileExtension) + ext
}

// reportInfo collects the project details printed on reports.
func (a *App) reportInfo() export.ReportInfo {
	return export.ReportInfo{
		ProjectName:    a.session.Project.ProjectName,
		MaterialLabel:  a.session.Project.MaterialLabel,
		CurrencySymbol: a.config.CurrencySymbol,
	}
}

// saveResultFile asks for a target path and runs write for the current result.
func (a *App) saveResultFile(ext string, write func(path string) error) {
	if a.session.Result == nil || len(a.session.Result.Sheets) == 0 {
		dialog.ShowInformation("No Results", "Run the optimizer before exporting.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Exported to:\n%s", filepath.Base(path)), a.window)
	}, a.window)
	d.SetFileName(a.exportFileName(ext))
	d.Show()
}

func (a *App) exportPDF() {
	a.saveResultFile(".pdf", func(path string) error {
		return export.ExportPDF(path, *a.session.Result, a.reportInfo())
	})
}

func (a *App) exportLabels() {
	a.saveResultFile("-labels.json", func(path string) error {
		return export.ExportLabels(path, *a.session.Result)
	})
}

func (a *App) exportXLSX() {
	a.saveResultFile(".xlsx", func(path string) error {
		return export.ExportXLSX(path, a.session.Project.Cuts, *a.session.Result, a.reportInfo())
	})
}

func (a *App) exportCSV() {
	a.saveResultFile(".csv", func(path string) error {
		return export.ExportCSV(path, *a.session.Result)
	})
}

func (a *App) exportDXF() {
	a.saveResultFile(".dxf", func(path string) error {
		return export.ExportDXF(path, *a.session.Result, cutimporter.DefaultDXFUnitsPerMeter)
	})
}
