package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/quiverlab/field-plotter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	exportDirEntry  *widget.Entry
	scaleSelect     *widget.Select
	autoRevealCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Export scale selection
	scaleOptions := []string{}
	for _, scale := range sd.settings.GetExportScaleOptions() {
		scaleOptions = append(scaleOptions, strconv.Itoa(scale))
	}
	sd.scaleSelect = widget.NewSelect(scaleOptions, nil)

	// Auto-reveal toggle
	sd.autoRevealCheck = widget.NewCheck("Reveal exported file in file manager", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Export Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Export Directory:"),
		exportDirRow,

		widget.NewLabel("Export Scale:"),
		sd.scaleSelect,

		sd.autoRevealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.scaleSelect.SetSelected(strconv.Itoa(sd.settings.GetExportScale()))
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save export directory
	exportDir := sd.exportDirEntry.Text
	if exportDir != "" {
		sd.settings.SetExportDirectory(exportDir)
	}

	// Validate and save export scale
	if sd.scaleSelect.Selected != "" {
		if scale, err := strconv.Atoi(sd.scaleSelect.Selected); err == nil {
			sd.settings.SetExportScale(scale)
		}
	}

	// Save auto-reveal toggle
	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
