package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires widget events to the evaluation pipeline, renders
// plots into the window, and hosts the export and settings dialogs.
