package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/quiverlab/field-plotter/internal/config"
	"github.com/quiverlab/field-plotter/internal/field"
	"github.com/quiverlab/field-plotter/internal/model"
	"github.com/quiverlab/field-plotter/internal/platform"
	"github.com/quiverlab/field-plotter/internal/render"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	systemSelect     *widget.Select
	plotTypeRadio    *widget.RadioGroup
	componentEntries [3]*widget.Entry
	componentLabels  [3]*widget.Label
	plotBtn          *widget.Button
	saveBtn          *widget.Button
	statusLabel      *widget.Label
	plotImage        *canvas.Image

	evaluator field.Evaluator
	settings  *config.Settings

	// Last successful evaluation, reused by PNG export
	lastResult *field.Result
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, evaluator field.Evaluator) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Ensure export directory exists
	platform.CreateDirectoryIfNotExists(settings.GetExportDirectory())

	ui := &RootUI{
		window:    window,
		evaluator: evaluator,
		settings:  settings,
	}

	log.Printf("RootUI initialized with evaluator: %v", ui.evaluator != nil)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Coordinate system selector
	systems := model.CoordinateSystems()
	systemNames := make([]string, 0, len(systems))
	for _, cs := range systems {
		systemNames = append(systemNames, string(cs))
	}
	ui.systemSelect = widget.NewSelect(systemNames, ui.onSystemChanged)

	// Plot type selector; options depend on the coordinate system
	ui.plotTypeRadio = widget.NewRadioGroup(nil, ui.onPlotTypeChanged)
	ui.plotTypeRadio.Horizontal = true

	// Component entries with per-system labels and placeholder defaults
	for i := range ui.componentEntries {
		entry := widget.NewEntry()
		// Trigger plotting when user presses Enter in a component field
		entry.OnSubmitted = func(string) {
			ui.onPlotClick()
		}
		ui.componentEntries[i] = entry
		ui.componentLabels[i] = widget.NewLabel("")
	}

	// Action buttons
	ui.plotBtn = widget.NewButton(PlotButtonLabel, ui.onPlotClick)
	ui.plotBtn.Importance = widget.HighImportance
	ui.saveBtn = widget.NewButton(SaveButtonLabel, ui.onSaveClick)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Status label under the controls
	ui.statusLabel = widget.NewLabel("")

	// Plot canvas area
	ui.plotImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.plotImage.SetMinSize(fyne.NewSize(PlotAreaMinWidth, PlotAreaMinHeight))

	// Row of labeled component entries
	entryRow := container.NewGridWithColumns(len(ui.componentEntries),
		container.NewBorder(nil, nil, ui.componentLabels[0], nil, ui.componentEntries[0]),
		container.NewBorder(nil, nil, ui.componentLabels[1], nil, ui.componentEntries[1]),
		container.NewBorder(nil, nil, ui.componentLabels[2], nil, ui.componentEntries[2]),
	)

	// Create top panel: selectors, entries, actions
	selectorRow := container.NewBorder(nil, nil, ui.systemSelect, settingsBtn, container.NewHScroll(ui.plotTypeRadio))
	actionRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.plotBtn, ui.saveBtn), ui.statusLabel)
	topPanel := container.NewVBox(selectorRow, entryRow, actionRow)

	// Create main layout with the plot canvas in the center
	content := container.NewBorder(
		topPanel,     // top
		nil,          // bottom
		nil,          // left
		nil,          // right
		ui.plotImage, // center
	)

	ui.window.SetContent(content)

	// Restore last session selections; triggers option and placeholder refresh
	ui.systemSelect.SetSelected(string(ui.settings.GetCoordinateSystem()))

	log.Printf("UI setup completed successfully")
}

// onSystemChanged handles coordinate system selection
func (ui *RootUI) onSystemChanged(selected string) {
	cs := model.CoordinateSystem(selected)
	if !cs.Valid() {
		return
	}

	log.Printf("Coordinate system changed to %s", cs)

	ui.settings.SetCoordinateSystem(cs)
	ui.refreshPlotTypes(cs)
	ui.refreshComponentFields(cs)
}

// refreshPlotTypes swaps the plot type options to the ones the system offers
func (ui *RootUI) refreshPlotTypes(cs model.CoordinateSystem) {
	plotTypes := model.PlotTypesFor(cs)
	options := make([]string, 0, len(plotTypes))
	for _, pt := range plotTypes {
		options = append(options, string(pt))
	}
	ui.plotTypeRadio.Options = options

	// Keep the current choice when it still applies, otherwise fall back
	if current := model.PlotType(ui.plotTypeRadio.Selected); !current.ValidFor(cs) {
		ui.plotTypeRadio.SetSelected(string(ui.settings.GetPlotType(cs)))
	}
	ui.plotTypeRadio.Refresh()
}

// refreshComponentFields swaps entry labels and placeholder defaults; typed
// text is cleared so the new defaults show through
func (ui *RootUI) refreshComponentFields(cs model.CoordinateSystem) {
	labels := cs.ComponentLabels()
	defaults := cs.DefaultComponents()
	for i := range ui.componentEntries {
		ui.componentLabels[i].SetText(labels[i])
		ui.componentEntries[i].SetText("")
		ui.componentEntries[i].SetPlaceHolder(defaults[i])
	}
}

// onPlotTypeChanged stores the picked plot type
func (ui *RootUI) onPlotTypeChanged(selected string) {
	if selected == "" {
		return // radio cleared while options are swapped
	}
	log.Printf("Plot type changed to %s", selected)
	ui.settings.SetPlotType(model.PlotType(selected))
}

// currentRequest assembles a plot request from the widget state
func (ui *RootUI) currentRequest() model.PlotRequest {
	var components [3]string
	for i, entry := range ui.componentEntries {
		components[i] = strings.TrimSpace(entry.Text)
	}
	return model.PlotRequest{
		System:     model.CoordinateSystem(ui.systemSelect.Selected),
		Type:       model.PlotType(ui.plotTypeRadio.Selected),
		Components: components,
	}
}

// onPlotClick evaluates the field and swaps the canvas image. On failure the
// previous image stays up and the user sees a single error dialog.
func (ui *RootUI) onPlotClick() {
	req := ui.currentRequest()
	log.Printf("Plotting %s field as %s", req.System, req.Type)

	res, err := ui.evaluator.Evaluate(req)
	if err != nil {
		log.Printf("Evaluation failed: %v", err)
		dialog.ShowInformation(ErrorDialogTitle, field.UserMessage(err), ui.window)
		return
	}

	img, err := render.Image(res, render.Options{})
	if err != nil {
		log.Printf("Rendering failed: %v", err)
		dialog.ShowInformation(ErrorDialogTitle, field.UserMessage(err), ui.window)
		return
	}

	ui.lastResult = res
	ui.plotImage.Image = img
	ui.plotImage.Refresh()
	ui.statusLabel.SetText(fmt.Sprintf("Plotted %s (%s)", req.System, req.Type))
}

// onSaveClick opens the export dialog for the last plotted field
func (ui *RootUI) onSaveClick() {
	if ui.lastResult == nil {
		dialog.ShowInformation(SaveDialogTitle, "Nothing to save yet. Plot a field first.", ui.window)
		return
	}

	fd := dialog.NewFileSave(ui.onSaveFileChosen, ui.window)
	fd.SetFileName(DefaultExportName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{PNGExtension}))

	// Start in the configured export directory
	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetExportDirectory())); err == nil {
		fd.SetLocation(lister)
	}

	fd.Show()
}

// onSaveFileChosen writes the PNG once the user picks a destination
func (ui *RootUI) onSaveFileChosen(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		log.Printf("Save dialog error: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	if writer == nil {
		return // cancelled
	}
	defer writer.Close()

	scale := ui.settings.GetExportScale()
	path := writer.URI().Path()
	log.Printf("Exporting PNG to %s at scale %d", path, scale)

	if err := render.WritePNG(writer, ui.lastResult, render.Options{Scale: scale}); err != nil {
		log.Printf("Export failed: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	// Remember the directory for the next export
	ui.settings.SetExportDirectory(filepath.Dir(path))
	ui.statusLabel.SetText(fmt.Sprintf("Saved %s", path))

	if ui.settings.GetAutoRevealOnExport() {
		if err := platform.OpenFileInManager(path); err != nil {
			log.Printf("Error revealing file %s: %v", path, err)
		}
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}
