package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Button and dialog labels
const (
	PlotButtonLabel  = "Plot"
	SaveButtonLabel  = "Save PNG"
	ErrorDialogTitle = "Plot Error"
	SaveDialogTitle  = "Save PNG"
)

// Export defaults
const (
	DefaultExportName = "vector-field.png"
	PNGExtension      = ".png"
)

// Layout sizing
const (
	PlotAreaMinWidth  float32 = 560
	PlotAreaMinHeight float32 = 420
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300
)
