package config

import (
	"fyne.io/fyne/v2"

	"github.com/quiverlab/field-plotter/internal/model"
	"github.com/quiverlab/field-plotter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyCoordinateSystem = "coordinate_system"
	KeyPlotType         = "plot_type"
	KeyExportScale      = "export_scale"
	KeyAutoRevealExport = "auto_reveal_on_export"
)

// Default values
const (
	DefaultExportScale      = 2
	MaxExportScale          = 4
	DefaultAutoRevealExport = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the configured image export directory
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Pictures directory
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/plots"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the image export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetCoordinateSystem returns the last used coordinate system
func (s *Settings) GetCoordinateSystem() model.CoordinateSystem {
	cs := model.CoordinateSystem(s.app.Preferences().String(KeyCoordinateSystem))
	if !cs.Valid() {
		s.SetCoordinateSystem(model.SystemCartesian)
		return model.SystemCartesian
	}
	return cs
}

// SetCoordinateSystem stores the last used coordinate system
func (s *Settings) SetCoordinateSystem(cs model.CoordinateSystem) {
	s.app.Preferences().SetString(KeyCoordinateSystem, string(cs))
}

// GetPlotType returns the last used plot type, falling back to the
// volumetric view when the stored value does not fit the system
func (s *Settings) GetPlotType(cs model.CoordinateSystem) model.PlotType {
	pt := model.PlotType(s.app.Preferences().String(KeyPlotType))
	if !pt.ValidFor(cs) {
		s.SetPlotType(model.PlotType3D)
		return model.PlotType3D
	}
	return pt
}

// SetPlotType stores the last used plot type
func (s *Settings) SetPlotType(pt model.PlotType) {
	s.app.Preferences().SetString(KeyPlotType, string(pt))
}

// GetExportScale returns the PNG export resolution multiplier
func (s *Settings) GetExportScale() int {
	value := s.app.Preferences().Int(KeyExportScale)
	if value <= 0 {
		s.SetExportScale(DefaultExportScale)
		return DefaultExportScale
	}
	if value > MaxExportScale {
		value = MaxExportScale
	}
	return value
}

// SetExportScale sets the PNG export resolution multiplier
func (s *Settings) SetExportScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale > MaxExportScale {
		scale = MaxExportScale
	}
	s.app.Preferences().SetInt(KeyExportScale, scale)
}

// GetExportScaleOptions returns the selectable export scales
func (s *Settings) GetExportScaleOptions() []int {
	return []int{1, 2, 3, 4}
}

// GetAutoRevealOnExport returns whether to reveal exported images in the
// system file manager
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether to reveal exported images
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}
