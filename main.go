package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/quiverlab/field-plotter/internal/config"
	"github.com/quiverlab/field-plotter/internal/field"
	"github.com/quiverlab/field-plotter/internal/platform"
	"github.com/quiverlab/field-plotter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.quiverlab.field-plotter"
	AppName = "Field Plotter"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	pipeline := field.NewPipeline()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, pipeline)

	// Show and run
	myWindow.ShowAndRun()
}
