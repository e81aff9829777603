package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcriber/internal/config"
	"github.com/ytget/yt-transcriber/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings   *config.Settings
	window     fyne.Window
	dialog     *dialog.ConfirmDialog
	onAudioDir func(dir string)

	// UI components
	audioDirEntry  *widget.Entry
	languageSelect *widget.Select
	modelSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onAudioDir is called when
// the working directory changes so running services can pick it up.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onAudioDir func(dir string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:   settings,
		window:     window,
		onAudioDir: onAudioDir,
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
	// Audio directory selection
	sd.audioDirEntry = widget.NewEntry()
	sd.audioDirEntry.SetPlaceHolder("Audio directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	audioDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.audioDirEntry)

	// Default language selection
	sd.languageSelect = widget.NewSelect(sd.settings.GetLanguageOptions(), nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Default model selection
	sd.modelSelect = widget.NewSelect(sd.settings.GetModelSizeOptions(), nil)
	sd.modelSelect.PlaceHolder = "Select model"

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Transcription Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Audio Directory:"),
		audioDirRow,

		widget.NewLabel("Default Language:"),
		sd.languageSelect,

		widget.NewLabel("Default Model:"),
		sd.modelSelect,
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

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.audioDirEntry.SetText(sd.settings.GetAudioDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetDefaultLanguage().String())
	sd.modelSelect.SetSelected(sd.settings.GetDefaultModelSize().String())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.audioDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if audioDir := sd.audioDirEntry.Text; audioDir != "" {
		sd.settings.SetAudioDirectory(audioDir)
		if sd.onAudioDir != nil {
			sd.onAudioDir(audioDir)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetDefaultLanguage(model.Language(sd.languageSelect.Selected))
	}

	if sd.modelSelect.Selected != "" {
		sd.settings.SetDefaultModelSize(model.ModelSize(sd.modelSelect.Selected))
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
