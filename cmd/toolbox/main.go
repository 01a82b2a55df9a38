// ToolBox Zuschnitt: roll cut-layout optimizer for sheet metal.
//
// A cross-platform desktop application that plans strips of roll material,
// splits over-long pieces and reports waste and cost.
//
// Build:
//   go build -o toolbox ./cmd/toolbox
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o toolbox.exe ./cmd/toolbox
//   GOOS=darwin  GOARCH=amd64 go build -o toolbox-darwin ./cmd/toolbox
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/ui"
	"github.com/piwi3910/toolbox/pkg/logger"
)

func main() {
	log := logger.Must(logger.NewDevelopment())
	defer log.Sync() //nolint:errcheck

	application := app.NewWithID("com.piwi3910.toolbox")
	window := application.NewWindow("ToolBox Zuschnitt")

	appUI := ui.NewApp(application, window, log.Named("ui"))
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1100, 750))
	window.CenterOnScreen()

	log.Info("starting desktop app", zap.String("id", application.UniqueID()))
	window.ShowAndRun()
}
