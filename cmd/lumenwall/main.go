// LumenWall — LED Display Wall Configurator
//
// A cross-platform desktop application for sizing LED and video wall
// installations, previewing them at scale and exporting quote-ready
// PDF and DXF documents.
//
// Build:
//   go build -o lumenwall ./cmd/lumenwall
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o lumenwall.exe ./cmd/lumenwall
//   GOOS=darwin  GOARCH=amd64 go build -o lumenwall-darwin ./cmd/lumenwall
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/LumenWall/internal/project"
	"github.com/piwi3910/LumenWall/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.lumenwall")

	appConfig, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err == nil {
		application.Settings().SetTheme(ui.ThemeForPreference(appConfig.Theme))
	}

	window := application.NewWindow("LumenWall — LED Display Wall Configurator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()

	window.ShowAndRun()
}
