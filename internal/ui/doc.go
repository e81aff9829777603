package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the URL form, language and model selectors, and the
// transcript view to the pipeline service and renders stage notifications.
