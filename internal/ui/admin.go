package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	cutimporter "github.com/piwi3910/toolbox/internal/importer"
	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
)

const noMaterial = "(none)"

// numberEntry creates an entry bound to a float pointer. Decimal commas are accepted.
func numberEntry(val *float64, decimals int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(model.FormatNumber(*val, decimals))
	e.OnChanged = func(text string) {
		if v, err := cutimporter.ParseNumber(text); err == nil {
			*val = v
		}
	}
	return e
}

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Default material selector, stored by key
	options := append([]string{noMaterial}, a.catalog.Names()...)
	materialSelect := widget.NewSelect(options, func(selected string) {
		cfg.DefaultMaterialKey = ""
		if m := a.catalog.FindByName(selected); m != nil {
			cfg.DefaultMaterialKey = m.Key
		}
	})
	if m := a.catalog.FindByKey(cfg.DefaultMaterialKey); m != nil {
		materialSelect.SetSelected(m.Name)
	} else {
		materialSelect.SetSelected(noMaterial)
	}

	themeSelect := widget.NewSelect([]string{ThemeSystem, ThemeLight, ThemeDark}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	currencyEntry := widget.NewEntry()
	currencyEntry.SetText(cfg.CurrencySymbol)
	currencyEntry.OnChanged = func(text string) {
		cfg.CurrencySymbol = strings.TrimSpace(text)
	}

	autoSaveCheck := widget.NewCheck("Save the session on every change", func(b bool) {
		cfg.AutoSave = b
	})
	autoSaveCheck.SetChecked(cfg.AutoSave)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Currency Symbol", currencyEntry),
		widget.NewFormItem("Auto-Save", autoSaveCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Roll Width (cm)", numberEntry(&cfg.DefaultRollWidthCM, 1)),
		widget.NewFormItem("Default Roll Length (m)", numberEntry(&cfg.DefaultRollLengthM, 2)),
		widget.NewFormItem("Default Max Piece Length (m)", numberEntry(&cfg.DefaultMaxPieceLengthM, 2)),
		widget.NewFormItem("Default Material", materialSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if cfg.CurrencySymbol == "" {
				cfg.CurrencySymbol = model.DefaultAppConfig().CurrencySymbol
			}
			a.config = cfg
			a.theme.SetThemeName(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			a.refreshResults()
			a.refreshEstimate()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 480))
	d.Show()
}

// showImportExportDialog displays the backup dialog for settings and materials.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.catalog); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("toolbox-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings and material catalog.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.catalog = backup.Materials
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if err := a.saveCatalog(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported materials: %w", err), a.window)
						return
					}
					a.theme.SetThemeName(a.config.Theme)
					a.app.Settings().SetTheme(a.theme)
					a.refreshMaterialOptions()
					a.SetupMenus()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and the material catalog to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
