package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Bounds for the placement scan step in centimeters.
const (
	minScanStepCM = 0.1
	maxScanStepCM = 10.0
)

// showAdvancedSettingsDialog opens the optimizer and estimate settings that
// are not shown on the material tab. They apply to the running session only.
func (a *App) showAdvancedSettingsDialog() {
	scanStep := a.scanStepCM
	waste := a.wastePercent

	optimizerSection := widget.NewCard("Optimizer",
		"Distance between candidate positions along the roll; smaller steps pack tighter but take longer",
		container.NewGridWithColumns(2,
			widget.NewLabel("Scan Step (cm)"), numberEntry(&scanStep, 1),
		))

	estimateSection := widget.NewCard("Purchase Estimate",
		"Extra material added to the requested area when estimating what to buy",
		container.NewGridWithColumns(2,
			widget.NewLabel("Waste Factor (%)"), numberEntry(&waste, 0),
		))

	content := container.NewVBox(optimizerSection, estimateSection)

	d := dialog.NewCustomConfirm("Advanced Settings", "Apply", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		if scanStep < minScanStepCM || scanStep > maxScanStepCM {
			dialog.ShowError(fmt.Errorf("scan step must be between %.1f and %.0f cm", minScanStepCM, maxScanStepCM), a.window)
			return
		}
		if waste < 0 || waste > 100 {
			dialog.ShowError(fmt.Errorf("waste factor must be between 0 and 100 %%"), a.window)
			return
		}
		a.scanStepCM = scanStep
		a.wastePercent = waste
		a.refreshEstimate()
	}, a.window)
	d.Resize(fyne.NewSize(520, 360))
	d.Show()
}
