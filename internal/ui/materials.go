package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
)

// showMaterialCatalogDialog lists the material templates with actions to
// apply, add, edit, delete, import and export them.
func (a *App) showMaterialCatalogDialog() {
	listContainer := container.NewVBox()

	var refresh func()
	refresh = func() {
		listContainer.RemoveAll()
		if len(a.catalog.Materials) == 0 {
			listContainer.Add(widget.NewLabel("No materials defined."))
			return
		}
		for _, m := range a.catalog.Materials {
			mat := m
			price := model.FormatCurrency(mat.PricePerM2, a.config.CurrencySymbol) + " / m²"
			row := container.NewGridWithColumns(5,
				widget.NewLabel(mat.Name),
				widget.NewLabel(price),
				newIconButtonWithTooltip(theme.ConfirmIcon(), "Use for this project", func() {
					a.session.ApplyMaterial(mat)
					a.onProjectChanged()
				}),
				newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit material", func() {
					a.showMaterialForm("Edit Material", mat, func(updated model.Material) {
						a.catalog.Add(updated)
						a.catalogChanged()
						refresh()
					})
				}),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Delete material", func() {
					dialog.ShowConfirm("Delete Material", fmt.Sprintf("Delete %q?", mat.Name), func(ok bool) {
						if ok && a.catalog.Remove(mat.Key) {
							a.catalogChanged()
							refresh()
						}
					}, a.window)
				}),
			)
			listContainer.Add(row)
		}
	}
	refresh()

	addBtn := widget.NewButtonWithIcon("Add Material", theme.ContentAddIcon(), func() {
		a.showMaterialForm("Add Material", model.NewMaterial("", 0), func(m model.Material) {
			a.catalog.Add(m)
			a.catalogChanged()
			refresh()
		})
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			merged, err := project.ImportMaterials(path, a.catalog)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.catalog = merged
			a.catalogChanged()
			refresh()
		}, a.window)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.SaveMaterials(path, a.catalog); err != nil {
				dialog.ShowError(err, a.window)
			}
		}, a.window)
		d.SetFileName("materials.json")
		d.Show()
	})

	content := container.NewBorder(
		container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn),
		nil, nil, nil,
		container.NewVScroll(listContainer),
	)

	d := dialog.NewCustom("Material Catalog", "Close", content, a.window)
	d.Resize(fyne.NewSize(620, 480))
	d.Show()
}

// showMaterialForm edits a copy of m and hands it to onSave when confirmed.
func (a *App) showMaterialForm(title string, m model.Material, onSave func(model.Material)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(m.Name)
	price := m.PricePerM2

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Price per m²", numberEntry(&price, 2)),
	}

	form := dialog.NewForm(title, "Save", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			dialog.ShowError(fmt.Errorf("material name is required"), a.window)
			return
		}
		if price < 0 {
			dialog.ShowError(fmt.Errorf("price must not be negative"), a.window)
			return
		}
		m.Name = name
		m.PricePerM2 = price
		onSave(m)
	}, a.window)
	form.Resize(fyne.NewSize(400, 220))
	form.Show()
}

// catalogChanged persists the catalog and updates the material selector.
func (a *App) catalogChanged() {
	if err := a.saveCatalog(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save materials: %w", err), a.window)
	}
	a.refreshMaterialOptions()
}

func (a *App) saveCatalog() error {
	if a.materialsPath == "" {
		a.materialsPath = project.DefaultMaterialsPath()
	}
	return project.SaveMaterials(a.materialsPath, a.catalog)
}

func (a *App) refreshMaterialOptions() {
	if a.materialSelect == nil {
		return
	}
	a.materialSelect.Options = a.catalog.Names()
	a.materialSelect.Refresh()
	a.refreshRollFields()
}
