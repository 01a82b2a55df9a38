package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/engine"
	cutimporter "github.com/piwi3910/toolbox/internal/importer"
	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
	"github.com/piwi3910/toolbox/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	session *Session
	logger  *zap.Logger
	theme   *ToolBoxTheme

	config        model.AppConfig
	catalog       model.MaterialCatalog
	materialsPath string

	// Advanced settings, kept for the running session only
	scanStepCM   float64
	wastePercent float64

	tabs *container.AppTabs

	// UI references for dynamic updates
	cutsContainer   *fyne.Container
	resultContainer *fyne.Container
	estimateLabel   *widget.Label
	statusLabel     *widget.Label
	nameEntry       *widget.Entry
	rollWidthEntry  *widget.Entry
	rollLengthEntry *widget.Entry
	maxLengthEntry  *widget.Entry
	priceEntry      *widget.Entry
	materialSelect  *widget.Select
}

// NewApp loads the config, the material catalog and the last session.
// Load failures fall back to defaults and are logged.
func NewApp(application fyne.App, window fyne.Window, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:          application,
		window:       window,
		logger:       logger,
		scanStepCM:   engine.DefaultScanStep * 100,
		wastePercent: 10,
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(err))
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg

	catalog, path, err := project.LoadOrCreateMaterials()
	if err != nil {
		logger.Warn("failed to load materials, using built-in catalog", zap.String("path", path), zap.Error(err))
		catalog = model.DefaultMaterialCatalog()
	}
	a.catalog = catalog
	a.materialsPath = path

	a.theme = NewToolBoxTheme(cfg.Theme)
	application.Settings().SetTheme(a.theme)

	a.session = NewSession(project.NewFileStore(project.DefaultSessionDir()), logger.Named("session"))
	restored := false
	if cfg.AutoSave {
		restored, err = a.session.Restore(context.Background())
		if err != nil {
			logger.Warn("failed to restore last session", zap.Error(err))
		}
	}
	if !restored {
		p := model.NewProject()
		cfg.ApplyToProject(&p, a.catalog)
		a.session.Project = p
	}
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenu("")
	for _, path := range a.config.RecentProjects {
		p := path
		recentMenu.Items = append(recentMenu.Items, fyne.NewMenuItem(p, func() {
			a.openProjectFile(p)
		}))
	}
	openRecent := fyne.NewMenuItem("Open Recent", nil)
	openRecent.ChildMenu = recentMenu
	openRecent.Disabled = len(recentMenu.Items) == 0

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			p := model.NewProject()
			a.config.ApplyToProject(&p, a.catalog)
			a.session.Replace(p, "New Project")
			a.onProjectChanged()
		}),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		openRecent,
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Cuts from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Cuts from Excel...", a.importExcel),
		fyne.NewMenuItem("Import Cuts from DXF...", a.importDXF),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", a.exportPDF),
		fyne.NewMenuItem("Export Labels...", a.exportLabels),
		fyne.NewMenuItem("Export Excel...", a.exportXLSX),
		fyne.NewMenuItem("Export CSV...", a.exportCSV),
		fyne.NewMenuItem("Export DXF...", a.exportDXF),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Cuts", func() {
			dialog.ShowConfirm("Clear All Cuts", "Remove every cut from the list?", func(ok bool) {
				if ok {
					a.session.ClearCuts()
					a.onProjectChanged()
				}
			}, a.window)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Advanced Settings...", a.showAdvancedSettingsDialog),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Optimize", a.runOptimize),
		fyne.NewMenuItem("Compare Roll Options...", a.showCompareDialog),
		fyne.NewMenuItem("Purchase Estimate", a.refreshEstimate),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Material Catalog...", a.showMaterialCatalogDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))

	canvas := a.window.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.runOptimize() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About ToolBox",
		"ToolBox Zuschnitt: roll cut-layout optimizer\n\n"+
			"Plans strips of sheet metal on a roll of fixed width,\n"+
			"splits over-long pieces and reports waste and cost.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	cutsTab := container.NewTabItem("Cuts", a.buildCutsPanel())
	materialTab := container.NewTabItem("Material", a.buildMaterialPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(cutsTab, materialTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.ContentAddIcon(), "Add cut", a.showAddCutDialog),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.MediaPlayIcon(), "Optimize", a.runOptimize),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF report", a.exportPDF),
		layout.NewSpacer(),
	)

	a.statusLabel = widget.NewLabel("")
	a.updateStatus()

	return container.NewBorder(toolbar, a.statusLabel, nil, nil, a.tabs)
}

// ─── Cuts Panel ────────────────────────────────────────────

func (a *App) buildCutsPanel() fyne.CanvasObject {
	a.cutsContainer = container.NewVBox()
	a.refreshCutsList()

	a.nameEntry = widget.NewEntry()
	a.nameEntry.SetText(a.session.Project.ProjectName)
	a.nameEntry.OnSubmitted = func(name string) {
		a.session.SetProjectName(strings.TrimSpace(name))
		a.afterChange()
	}

	addBtn := widget.NewButtonWithIcon("Add Cut", theme.ContentAddIcon(), a.showAddCutDialog)

	return container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, widget.NewLabel("Project"), nil, a.nameEntry),
			container.NewHBox(
				widget.NewLabelWithStyle("Required Cuts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				layout.NewSpacer(),
				addBtn,
			),
		),
		nil, nil, nil,
		container.NewVScroll(a.cutsContainer),
	)
}

func (a *App) refreshCutsList() {
	a.cutsContainer.RemoveAll()

	cuts := a.session.Project.Cuts
	if len(cuts) == 0 {
		a.cutsContainer.Add(widget.NewLabel("No cuts added yet. Click 'Add Cut' to begin."))
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width (cm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length (m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Area", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.cutsContainer.Add(header)
	a.cutsContainer.Add(widget.NewSeparator())

	for _, c := range cuts {
		id := c.ID
		row := container.NewGridWithColumns(6,
			widget.NewLabel(c.DisplayLabel()),
			widget.NewLabel(model.FormatNumber(model.MetersToCentimeters(c.Width), 1)),
			widget.NewLabel(model.FormatNumber(c.Length, 2)),
			widget.NewLabel(model.FormatArea(c.Area())),
			newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit cut", func() {
				a.showEditCutDialog(id)
			}),
			newIconButtonWithTooltip(theme.DeleteIcon(), "Delete cut", func() {
				a.session.RemoveCut(id)
				a.afterChange()
			}),
		)
		a.cutsContainer.Add(row)
	}

	a.cutsContainer.Add(widget.NewSeparator())
	a.cutsContainer.Add(widget.NewLabel(fmt.Sprintf("%d cuts, %s requested",
		len(cuts), model.FormatArea(cuts.TotalArea()))))
}

// parseEntry reads a number that may use a decimal comma.
func parseEntry(e *widget.Entry) (float64, error) {
	return cutimporter.ParseNumber(e.Text)
}

func (a *App) cutFormItems(label string, widthCM, lengthM float64) ([]*widget.FormItem, *widget.Entry, *widget.Entry, *widget.Entry) {
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("e.g. Traufe")
	labelEntry.SetText(label)

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Width in cm")
	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder("Length in m")
	if widthCM > 0 {
		widthEntry.SetText(model.FormatNumber(widthCM, 1))
	}
	if lengthM > 0 {
		lengthEntry.SetText(model.FormatNumber(lengthM, 2))
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Label", labelEntry),
		widget.NewFormItem("Width (cm)", widthEntry),
		widget.NewFormItem("Length (m)", lengthEntry),
	}
	return items, labelEntry, widthEntry, lengthEntry
}

func (a *App) showAddCutDialog() {
	items, labelEntry, widthEntry, lengthEntry := a.cutFormItems("", 0, 0)
	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")
	items = append(items, widget.NewFormItem("Quantity", qtyEntry))

	form := dialog.NewForm("Add Cut", "Add", "Cancel", items,
		func(ok bool) {
			if !ok {
				return
			}
			w, errW := parseEntry(widthEntry)
			l, errL := parseEntry(lengthEntry)
			q, errQ := strconv.Atoi(strings.TrimSpace(qtyEntry.Text))
			if errW != nil || errL != nil || errQ != nil || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, length and quantity must be numbers greater than zero"), a.window)
				return
			}
			for i := 0; i < q; i++ {
				if _, err := a.session.AddCut(strings.TrimSpace(labelEntry.Text), w, l); err != nil {
					dialog.ShowError(err, a.window)
					break
				}
			}
			a.afterChange()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showEditCutDialog(id string) {
	idx := a.session.Project.Cuts.Find(id)
	if idx < 0 {
		return
	}
	c := a.session.Project.Cuts[idx]
	items, labelEntry, widthEntry, lengthEntry := a.cutFormItems(c.Label, model.MetersToCentimeters(c.Width), c.Length)
	materialEntry := widget.NewEntry()
	materialEntry.SetText(c.MaterialLabel)
	items = append(items, widget.NewFormItem("Material", materialEntry))

	form := dialog.NewForm("Edit Cut", "Save", "Cancel", items,
		func(ok bool) {
			if !ok {
				return
			}
			w, errW := parseEntry(widthEntry)
			l, errL := parseEntry(lengthEntry)
			if errW != nil || errL != nil {
				dialog.ShowError(fmt.Errorf("width and length must be numbers"), a.window)
				return
			}
			if err := a.session.UpdateCut(id, strings.TrimSpace(labelEntry.Text), materialEntry.Text, w, l); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.afterChange()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 320))
	form.Show()
}

// ─── Material Panel ────────────────────────────────────────

func (a *App) buildMaterialPanel() fyne.CanvasObject {
	a.materialSelect = widget.NewSelect(a.catalog.Names(), func(name string) {
		m := a.catalog.FindByName(name)
		if m == nil || strings.EqualFold(name, a.session.Project.MaterialLabel) {
			return
		}
		a.session.ApplyMaterial(*m)
		a.afterChange()
	})
	a.materialSelect.PlaceHolder = "Select a material template..."

	a.rollWidthEntry = widget.NewEntry()
	a.rollLengthEntry = widget.NewEntry()
	a.maxLengthEntry = widget.NewEntry()
	a.priceEntry = widget.NewEntry()
	a.refreshRollFields()

	applyBtn := widget.NewButtonWithIcon("Apply Roll Settings", theme.ConfirmIcon(), a.applyRollSettings)
	manageBtn := widget.NewButtonWithIcon("Manage Materials...", theme.SettingsIcon(), a.showMaterialCatalogDialog)

	rollSection := widget.NewCard("Roll", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Material"), a.materialSelect,
			widget.NewLabel("Roll Width (cm)"), a.rollWidthEntry,
			widget.NewLabel("Roll Length (m)"), a.rollLengthEntry,
			widget.NewLabel("Max Piece Length (m)"), a.maxLengthEntry,
			widget.NewLabel("Price per m²"), a.priceEntry,
		),
		container.NewHBox(applyBtn, layout.NewSpacer(), manageBtn),
	))

	a.estimateLabel = widget.NewLabel("")
	estimateSection := widget.NewCard("Purchase Estimate", "From areas alone, with the waste factor from Advanced Settings",
		container.NewVBox(
			a.estimateLabel,
			widget.NewButtonWithIcon("Update Estimate", theme.ViewRefreshIcon(), a.refreshEstimate),
		))
	a.refreshEstimate()

	return container.NewVScroll(container.NewVBox(rollSection, estimateSection))
}

func (a *App) refreshRollFields() {
	p := a.session.Project
	a.rollWidthEntry.SetText(model.FormatNumber(float64(p.RollWidthCM), 1))
	a.rollLengthEntry.SetText(model.FormatNumber(float64(p.RollLengthM), 2))
	a.maxLengthEntry.SetText(model.FormatNumber(float64(p.MaxLengthM), 2))
	a.priceEntry.SetText(model.FormatNumber(float64(p.PricePerSquareMeter), 2))
	if m := a.catalog.FindByName(p.MaterialLabel); m != nil {
		a.materialSelect.SetSelected(m.Name)
	} else {
		a.materialSelect.ClearSelected()
	}
}

func (a *App) applyRollSettings() {
	width, errW := parseEntry(a.rollWidthEntry)
	length, errL := parseEntry(a.rollLengthEntry)
	maxLen, errM := parseEntry(a.maxLengthEntry)
	price, errP := parseEntry(a.priceEntry)
	if errW != nil || errL != nil || errM != nil || errP != nil {
		dialog.ShowError(fmt.Errorf("roll settings must be numbers"), a.window)
		return
	}
	a.session.SetRoll(model.RollConfig{
		WidthM:              model.CentimetersToMeters(width),
		LengthM:             length,
		MaxPieceLengthM:     maxLen,
		PricePerSquareMeter: price,
	})
	a.afterChange()
}

func (a *App) refreshEstimate() {
	if a.estimateLabel == nil {
		return
	}
	est := a.session.Estimate(a.wastePercent)
	text := fmt.Sprintf("Requested area: %s\nWith %s %% waste: %s\nSegments needed: %d (%d without waste)",
		model.FormatArea(est.TotalCutArea),
		model.FormatNumber(est.WastePercent, 0),
		model.FormatArea(est.AreaWithWaste),
		est.SegmentsWithWaste, est.SegmentsNeededMin)
	if est.PricePerSquareMeter > 0 {
		text += "\nEstimated cost: " + model.FormatCurrency(est.EstimatedCost, a.config.CurrencySymbol)
	}
	a.estimateLabel.SetText(text)
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Add cuts, then click Optimize."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderSheetResults(a.session.Result, a.config.CurrencySymbol))
	a.resultContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

// afterChange refreshes the views after an edit and saves the session.
func (a *App) afterChange() {
	a.refreshCutsList()
	a.refreshResults()
	a.refreshEstimate()
	a.updateStatus()
	if a.config.AutoSave {
		if err := a.session.Save(context.Background()); err != nil {
			a.logger.Error("failed to save session", zap.Error(err))
		}
	}
}

// onProjectChanged also reloads the form fields, for undo or a loaded project.
func (a *App) onProjectChanged() {
	a.nameEntry.SetText(a.session.Project.ProjectName)
	a.refreshRollFields()
	a.afterChange()
}

func (a *App) updateStatus() {
	if a.statusLabel == nil {
		return
	}
	p := a.session.Project
	status := fmt.Sprintf("%s | %d cuts | Roll %s cm x %s m", p.ProjectName, len(p.Cuts),
		model.FormatNumber(float64(p.RollWidthCM), 0), model.FormatNumber(float64(p.RollLengthM), 1))
	if p.MaterialLabel != "" {
		status += " | " + p.MaterialLabel
	}
	if label := a.session.History().UndoLabel(); label != "" {
		status += " | Undo: " + label
	}
	a.statusLabel.SetText(status)
}

func (a *App) undo() {
	if a.session.Undo() {
		a.onProjectChanged()
	}
}

func (a *App) redo() {
	if a.session.Redo() {
		a.onProjectChanged()
	}
}

func (a *App) optimizerOptions() []engine.Option {
	return []engine.Option{engine.WithScanStep(model.CentimetersToMeters(a.scanStepCM))}
}

func (a *App) runOptimize() {
	if len(a.session.Project.Cuts) == 0 {
		dialog.ShowInformation("Nothing to optimize", "Add at least one cut first.", a.window)
		return
	}

	a.session.SetOptimizerOptions(a.optimizerOptions()...)
	if _, err := a.session.Optimize(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refreshResults()
	a.tabs.SelectIndex(2)
}

func (a *App) showCompareDialog() {
	a.session.SetOptimizerOptions(a.optimizerOptions()...)
	results, err := a.session.Compare()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	best := engine.BestScenario(results)

	rows := container.NewVBox(container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Segments", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Roll used", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Waste", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Cost", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	))

	var d dialog.Dialog
	for i, r := range results {
		name := r.Scenario.Name
		if i == best {
			name += " (best)"
		}
		if r.Error != "" {
			rows.Add(container.NewGridWithColumns(2, widget.NewLabel(name), widget.NewLabel(r.Error)))
			continue
		}
		scenario := r.Scenario
		nameBtn := widget.NewButton(name, func() {
			a.session.SetRoll(scenario.Roll)
			a.onProjectChanged()
			if d != nil {
				d.Hide()
			}
		})
		rows.Add(container.NewGridWithColumns(5,
			nameBtn,
			widget.NewLabel(strconv.Itoa(r.SheetsUsed)),
			widget.NewLabel(model.FormatNumber(r.UsedLength, 2)+" m"),
			widget.NewLabel(model.FormatNumber(r.WastePercent, 1)+" %"),
			widget.NewLabel(model.FormatCurrency(r.Cost, a.config.CurrencySymbol)),
		))
	}

	content := container.NewBorder(
		widget.NewLabel("Click a scenario to use its roll settings."), nil, nil, nil,
		container.NewVScroll(rows),
	)
	d = dialog.NewCustom("Compare Roll Options", "Close", content, a.window)
	d.Resize(fyne.NewSize(760, 420))
	d.Show()
}

// ─── Project Files ─────────────────────────────────────────

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.Save(path, a.session.Project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberProject(path)
	}, a.window)
	d.SetFileName(project.ExportFileName(a.session.Project.ProjectName))
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.openProjectFile(path)
	}, a.window)
	d.Show()
}

func (a *App) openProjectFile(path string) {
	p, err := project.Load(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.session.Replace(p, "Open Project")
	a.onProjectChanged()
	a.rememberProject(path)
}

func (a *App) rememberProject(path string) {
	a.config.AddRecentProject(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save recent projects", zap.Error(err))
	}
	a.SetupMenus()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	a.importFile(cutimporter.ImportCSV)
}

func (a *App) importExcel() {
	a.importFile(cutimporter.ImportExcel)
}

func (a *App) importDXF() {
	a.importFile(func(path string) cutimporter.ImportResult {
		return cutimporter.ImportDXF(path, cutimporter.DefaultDXFUnitsPerMeter)
	})
}

func (a *App) importFile(read func(path string) cutimporter.ImportResult) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.handleImportResult(read(path))
	}, a.window)
}

func (a *App) handleImportResult(result cutimporter.ImportResult) {
	rejected := a.session.ImportCuts(result)
	problems := append(append([]string{}, result.Errors...), rejected...)

	if len(problems) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(problems, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	imported := len(result.Cuts) - len(rejected)
	if imported > 0 {
		a.afterChange()

		msg := fmt.Sprintf("Successfully imported %d cuts.", imported)
		if len(problems) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d entries had errors and were skipped.", len(problems))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
