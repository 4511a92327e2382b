// Package ui builds the Fyne front end: a configuration panel on the
// left, the live wall canvas on the right and menu-driven import and
// export actions. All state lives in the DisplayConfiguration aggregate;
// the UI only routes operations into it and re-renders.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/engine"
	"github.com/piwi3910/LumenWall/internal/export"
	modelimporter "github.com/piwi3910/LumenWall/internal/importer"
	"github.com/piwi3910/LumenWall/internal/model"
	"github.com/piwi3910/LumenWall/internal/project"
	"github.com/piwi3910/LumenWall/internal/ui/widgets"
)

// Resolution mode labels shown in the mode selector.
const (
	modeLabelCustom = "Custom"
	modeLabelFHD    = "Full HD (1920 x 1080)"
	modeLabelUHD    = "Ultra HD (3840 x 2160)"
)

// App holds all application state and UI references.
type App struct {
	window     fyne.Window
	appConfig  model.AppConfig
	cfg        model.DisplayConfiguration
	userModels []catalog.ModelRecord

	// UI references for dynamic updates
	modelSelect    *widget.Select
	modeSelect     *widget.Select
	canvasHolder   *fyne.Container
	statsContainer *fyne.Container
	screenLabel    *widget.Label
	wallWidthEntry *widget.Entry
	wallHeightEnt  *widget.Entry
}

func NewApp(window fyne.Window) *App {
	appConfig, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		appConfig = model.DefaultAppConfig()
	}
	userModels, _, err := project.LoadOrCreateUserModels()
	if err != nil {
		userModels = nil
	}

	a := &App{
		window:     window,
		appConfig:  appConfig,
		cfg:        appConfig.NewConfiguration(),
		userModels: userModels,
	}
	if appConfig.DefaultModelID != "" {
		if record := a.findModel(appConfig.DefaultModelID); record != nil {
			a.cfg.SelectModel(*record)
		}
	}
	return a
}

func (a *App) catalogModels() []catalog.ModelRecord {
	return project.FullCatalog(a.userModels)
}

func (a *App) findModel(id string) *catalog.ModelRecord {
	models := a.catalogModels()
	for i := range models {
		if models[i].ID == id {
			return &models[i]
		}
	}
	return nil
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Configuration", func() {
			a.cfg = a.appConfig.NewConfiguration()
			a.modelSelect.ClearSelected()
			a.modeSelect.SetSelected(modeLabelCustom)
			a.refreshAll()
		}),
		fyne.NewMenuItem("Open Session...", func() {
			a.loadSession()
		}),
		fyne.NewMenuItem("Save Session...", func() {
			a.saveSession()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Models from CSV...", func() {
			a.importModels(modelimporter.ImportCSV)
		}),
		fyne.NewMenuItem("Import Models from Excel...", func() {
			a.importModels(modelimporter.ImportExcel)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Quote...", func() {
			a.exportQuote()
		}),
		fyne.NewMenuItem("Export DXF Drawing...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Center Screen", func() {
			a.cfg.ResetPosition()
			a.refreshAll()
		}),
		fyne.NewMenuItem("Reset Configuration", func() {
			a.cfg.Reset()
			a.modelSelect.ClearSelected()
			a.modeSelect.SetSelected(modeLabelCustom)
			a.refreshAll()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About LumenWall",
		"LumenWall — LED Display Wall Configurator\n\n"+
			"Size LED and video wall installations, preview them at\n"+
			"scale and export quote-ready PDF and DXF documents.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvasHolder = container.NewCenter()
	a.statsContainer = container.NewVBox()

	controls := container.NewVBox(
		a.buildModelSection(),
		a.buildScreenSection(),
		a.buildWallSection(),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Specifications", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.statsContainer,
	)

	a.refreshAll()

	split := container.NewHSplit(
		container.NewVScroll(controls),
		container.NewPadded(a.canvasHolder),
	)
	split.SetOffset(0.3)
	return split
}

// ─── Model Section ─────────────────────────────────────────

func (a *App) buildModelSection() fyne.CanvasObject {
	models := a.catalogModels()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}

	a.modelSelect = widget.NewSelect(names, func(selected string) {
		for _, m := range a.catalogModels() {
			if m.Name == selected {
				a.cfg.SelectModel(m)
				break
			}
		}
		a.modeSelect.SetSelected(modeLabelCustom)
		a.refreshAll()
	})
	a.modelSelect.PlaceHolder = "Select a display model..."

	a.modeSelect = widget.NewSelect(
		[]string{modeLabelCustom, modeLabelFHD, modeLabelUHD},
		func(selected string) {
			switch selected {
			case modeLabelFHD:
				a.cfg.SetResolutionMode(engine.ModeFHD)
			case modeLabelUHD:
				a.cfg.SetResolutionMode(engine.ModeUHD)
			default:
				a.cfg.SetResolutionMode(engine.ModeCustom)
			}
			a.refreshAll()
		})
	a.modeSelect.SetSelected(modeLabelCustom)

	return widget.NewCard("Display", "", container.NewVBox(
		widget.NewLabel("Model"), a.modelSelect,
		widget.NewLabel("Resolution Target"), a.modeSelect,
	))
}

// ─── Screen Section ────────────────────────────────────────

func (a *App) buildScreenSection() fyne.CanvasObject {
	a.screenLabel = widget.NewLabel("—")

	stepBtn := func(icon fyne.Resource, step func()) *widget.Button {
		return widget.NewButtonWithIcon("", icon, func() {
			step()
			a.refreshAll()
		})
	}

	widthRow := container.NewHBox(
		widget.NewLabel("Width"),
		stepBtn(theme.ContentRemoveIcon(), func() { a.cfg.StepScreenWidth(-1) }),
		stepBtn(theme.ContentAddIcon(), func() { a.cfg.StepScreenWidth(1) }),
	)
	heightRow := container.NewHBox(
		widget.NewLabel("Height"),
		stepBtn(theme.ContentRemoveIcon(), func() { a.cfg.StepScreenHeight(-1) }),
		stepBtn(theme.ContentAddIcon(), func() { a.cfg.StepScreenHeight(1) }),
	)

	return widget.NewCard("Screen", "", container.NewVBox(
		a.screenLabel,
		widthRow,
		heightRow,
	))
}

// ─── Wall Section ──────────────────────────────────────────

func (a *App) buildWallSection() fyne.CanvasObject {
	a.wallWidthEntry = widget.NewEntry()
	a.wallWidthEntry.OnSubmitted = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			a.cfg.SetWallWidth(v)
		}
		a.refreshAll()
	}

	a.wallHeightEnt = widget.NewEntry()
	a.wallHeightEnt.OnSubmitted = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			a.cfg.SetWallHeight(v)
		}
		a.refreshAll()
	}

	stepBtn := func(icon fyne.Resource, step func()) *widget.Button {
		return widget.NewButtonWithIcon("", icon, func() {
			step()
			a.refreshAll()
		})
	}

	widthRow := container.NewBorder(nil, nil,
		widget.NewLabel("Width (m)"),
		container.NewHBox(
			stepBtn(theme.ContentRemoveIcon(), func() { a.cfg.StepWallWidth(-1) }),
			stepBtn(theme.ContentAddIcon(), func() { a.cfg.StepWallWidth(1) }),
		),
		a.wallWidthEntry,
	)
	heightRow := container.NewBorder(nil, nil,
		widget.NewLabel("Height (m)"),
		container.NewHBox(
			stepBtn(theme.ContentRemoveIcon(), func() { a.cfg.StepWallHeight(-1) }),
			stepBtn(theme.ContentAddIcon(), func() { a.cfg.StepWallHeight(1) }),
		),
		a.wallHeightEnt,
	)

	return widget.NewCard("Wall", "", container.NewVBox(widthRow, heightRow))
}

// ─── Refresh ───────────────────────────────────────────────

func (a *App) refreshAll() {
	// Selector callbacks fire during Build before all refs exist.
	if a.wallWidthEntry == nil || a.canvasHolder == nil {
		return
	}
	a.wallWidthEntry.SetText(fmt.Sprintf("%.1f", a.cfg.Wall.Width))
	a.wallHeightEnt.SetText(fmt.Sprintf("%.1f", a.cfg.Wall.Height))

	if actual := a.cfg.ActualScreenSize(); !actual.IsZero() {
		count := a.cfg.UnitCount()
		a.screenLabel.SetText(fmt.Sprintf("%.2f x %.2f m (%d x %d units)",
			actual.Width, actual.Height, count.Horizontal, count.Vertical))
	} else {
		a.screenLabel.SetText("—")
	}

	a.refreshStats()
	a.refreshCanvas()
}

func (a *App) refreshCanvas() {
	wallCanvas := widgets.NewWallCanvas(&a.cfg, engine.DeviceDesktop)
	wallCanvas.OnChanged = a.refreshStats
	a.canvasHolder.RemoveAll()
	a.canvasHolder.Add(wallCanvas)
	a.canvasHolder.Refresh()
}

func (a *App) refreshStats() {
	a.statsContainer.RemoveAll()

	results := a.cfg.Results()
	if results == nil {
		a.statsContainer.Add(widget.NewLabel("Select a model to see specifications."))
		a.statsContainer.Refresh()
		return
	}
	spec := *a.cfg.Model

	statRow := func(name, value string) {
		if value == "" {
			return
		}
		a.statsContainer.Add(container.NewBorder(nil, nil,
			widget.NewLabel(name),
			widget.NewLabelWithStyle(value, fyne.TextAlignTrailing, fyne.TextStyle{}),
		))
	}

	unitLabel := strings.ToLower(spec.Record.Family.String()) + "s"
	statRow("Units", fmt.Sprintf("%d %s (%d x %d)",
		results.TotalUnits, unitLabel,
		results.UnitCount.Horizontal, results.UnitCount.Vertical))
	statRow("Resolution", fmt.Sprintf("%d x %d px",
		results.ResolutionPerUnit.Width, results.ResolutionPerUnit.Height))
	statRow("Aspect Ratio", engine.AspectRatio(results.ResolutionPerUnit))
	if results.TotalWeight > 0 {
		statRow("Total Weight", fmt.Sprintf("%.1f kg", results.TotalWeight))
	}

	draw := engine.PowerDraw(spec, results.TotalUnits, results.ActualScreenSize.Area())
	if s, ok := engine.FormatPower(draw.Max, spec.IsVideoWall()); ok {
		statRow("Max Power", s)
	}
	if s, ok := engine.FormatPower(draw.Average, spec.IsVideoWall()); ok {
		statRow("Avg Power", s)
	}

	current := catalog.CurrentResolution(spec, a.cfg.Screen)
	rec := catalog.Recommend(catalog.Processors, current.Pixels())
	statRow("Processor", rec.String())
	if rec.Status == catalog.Found {
		statRow("Connection", string(rec.Connection.Type))
	}

	a.statsContainer.Refresh()
}

// ─── Session Actions ───────────────────────────────────────

func (a *App) saveSession() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveSession(path, a.cfg, ""); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("wall-configuration.json")
	d.Show()
}

func (a *App) loadSession() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		cfg, err := project.LoadSession(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.cfg = cfg
		if a.cfg.Model != nil {
			a.modelSelect.SetSelected(a.cfg.Model.Record.Name)
		} else {
			a.modelSelect.ClearSelected()
		}
		a.refreshAll()
	}, a.window)
	d.Show()
}

// ─── Export Actions ────────────────────────────────────────

// exportQuote collects contact details, then writes the PDF.
func (a *App) exportQuote() {
	if a.cfg.Results() == nil {
		dialog.ShowInformation("Nothing to export", "Select a display model first.", a.window)
		return
	}

	projectEntry := widget.NewEntry()
	projectEntry.SetPlaceHolder("Project name")
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Contact name")
	phoneEntry := widget.NewEntry()
	emailEntry := widget.NewEntry()

	form := dialog.NewForm("Quote Details", "Export", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Project", projectEntry),
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Phone", phoneEntry),
			widget.NewFormItem("Email", emailEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			contact := export.Contact{
				Project: projectEntry.Text,
				Name:    nameEntry.Text,
				Phone:   phoneEntry.Text,
				Email:   emailEntry.Text,
			}
			a.savePDF(contact)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) savePDF(contact export.Contact) {
	payload := export.Snapshot(&a.cfg, contact)
	if payload == nil {
		dialog.ShowInformation("Nothing to export", "Select a display model first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportPDF(path, payload); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberExport(path)
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Quote %s saved to %s", payload.Reference, path), a.window)
	}, a.window)
	d.SetFileName("wall-quote.pdf")
	d.Show()
}

func (a *App) exportDXF() {
	payload := export.Snapshot(&a.cfg, export.Contact{})
	if payload == nil {
		dialog.ShowInformation("Nothing to export", "Select a display model first.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportDXF(path, payload); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberExport(path)
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Drawing saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("wall-installation.dxf")
	d.Show()
}

func (a *App) rememberExport(path string) {
	a.appConfig.RememberExport(path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.appConfig); err != nil {
		fmt.Printf("could not save preferences: %v\n", err)
	}
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importModels(importFn func(string) modelimporter.ImportResult) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importFn(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result modelimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Models) > 0 {
		a.userModels = project.MergeModels(a.userModels, result.Models)
		if path, err := project.DefaultUserModelsPath(); err == nil {
			if err := project.SaveUserModels(path, a.userModels); err != nil {
				dialog.ShowError(err, a.window)
			}
		}

		names := make([]string, 0, len(a.catalogModels()))
		for _, m := range a.catalogModels() {
			names = append(names, m.Name)
		}
		a.modelSelect.Options = names
		a.modelSelect.Refresh()

		msg := fmt.Sprintf("Successfully imported %d models.", len(result.Models))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
