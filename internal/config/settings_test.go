package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/quiverlab/field-plotter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/plots"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestCoordinateSystem(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	cs := settings.GetCoordinateSystem()
	if cs != model.SystemCartesian {
		t.Errorf("Expected default system %s, got %s", model.SystemCartesian, cs)
	}

	// Test setting custom value
	settings.SetCoordinateSystem(model.SystemSpherical)

	retrievedCS := settings.GetCoordinateSystem()
	if retrievedCS != model.SystemSpherical {
		t.Errorf("Expected system %s, got %s", model.SystemSpherical, retrievedCS)
	}

	// Test unknown stored value falls back
	app.Preferences().SetString(KeyCoordinateSystem, "polar")
	if got := settings.GetCoordinateSystem(); got != model.SystemCartesian {
		t.Errorf("Unknown system should fall back to %s, got %s", model.SystemCartesian, got)
	}
}

func TestPlotType(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	pt := settings.GetPlotType(model.SystemCartesian)
	if pt != model.PlotType3D {
		t.Errorf("Expected default plot type %s, got %s", model.PlotType3D, pt)
	}

	// Test setting custom value
	settings.SetPlotType(model.PlotTypeRZ)

	retrievedPT := settings.GetPlotType(model.SystemCylindrical)
	if retrievedPT != model.PlotTypeRZ {
		t.Errorf("Expected plot type %s, got %s", model.PlotTypeRZ, retrievedPT)
	}

	// Test stored type invalid for the system falls back
	settings.SetPlotType(model.PlotTypeRZ)
	if got := settings.GetPlotType(model.SystemSpherical); got != model.PlotType3D {
		t.Errorf("Mismatched plot type should fall back to %s, got %s", model.PlotType3D, got)
	}
}

func TestExportScale(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	scale := settings.GetExportScale()
	if scale != DefaultExportScale {
		t.Errorf("Expected default export scale %d, got %d", DefaultExportScale, scale)
	}

	// Test setting custom value
	settings.SetExportScale(3)

	retrievedScale := settings.GetExportScale()
	if retrievedScale != 3 {
		t.Errorf("Expected export scale 3, got %d", retrievedScale)
	}

	// Test boundary values
	settings.SetExportScale(0) // Should be clamped to 1
	if settings.GetExportScale() != 1 {
		t.Error("Export scale should be clamped to minimum 1")
	}

	settings.SetExportScale(9) // Should be clamped to 4
	if settings.GetExportScale() != MaxExportScale {
		t.Errorf("Export scale should be clamped to maximum %d", MaxExportScale)
	}
}

func TestGetExportScaleOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetExportScaleOptions()
	expectedOptions := []int{1, 2, 3, 4}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d scale options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Scale option %d: expected %d, got %d", i, expected, options[i])
		}
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetAutoRevealOnExport() {
		t.Error("Auto reveal should default to true")
	}

	// Test setting custom value
	settings.SetAutoRevealOnExport(false)
	if settings.GetAutoRevealOnExport() {
		t.Error("Auto reveal should be false after disabling")
	}
}
