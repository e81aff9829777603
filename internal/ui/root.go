package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcriber/internal/config"
	"github.com/ytget/yt-transcriber/internal/model"
	"github.com/ytget/yt-transcriber/internal/pipeline"
	"github.com/ytget/yt-transcriber/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window         fyne.Window
	urlEntry       *widget.Entry
	languageSelect *widget.Select
	modelSelect    *widget.Select
	transcribeBtn  *widget.Button
	transcriptView *widget.Entry
	saveBtn        *widget.Button
	revealBtn      *widget.Button
	pipelineSvc    pipeline.Orchestrator
	settings       *config.Settings

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Last finished task, used by the save and reveal actions
	lastTask *model.TranscriptionTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, pipelineSvc pipeline.Orchestrator) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:      window,
		pipelineSvc: pipelineSvc,
		settings:    settings,
	}

	// Push every task status change into the notification panel
	ui.pipelineSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(TextEnterURL)
	ui.urlEntry.Validator = ui.validateURL
	// Trigger transcription when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onTranscribeClick()
	}

	// Create language and model selectors preloaded with defaults
	ui.languageSelect = widget.NewSelect(ui.settings.GetLanguageOptions(), nil)
	ui.languageSelect.SetSelected(ui.settings.GetDefaultLanguage().String())
	ui.modelSelect = widget.NewSelect(ui.settings.GetModelSizeOptions(), nil)
	ui.modelSelect.SetSelected(ui.settings.GetDefaultModelSize().String())

	// Create transcribe button
	ui.transcribeBtn = widget.NewButton(TextTranscribe, ui.onTranscribeClick)
	ui.transcribeBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create top panel (URL row)
	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.transcribeBtn, ui.urlEntry)

	// Selector row under the URL input
	selectorRow := container.NewHBox(
		widget.NewLabel(TextLanguageLabel), ui.languageSelect,
		widget.NewLabel(TextModelLabel), ui.modelSelect,
	)

	// Create notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(
		widget.NewLabel(TextWindowSubtitle),
		topPanel,
		selectorRow,
		ui.notificationContainer,
	)

	// Create transcript view
	ui.transcriptView = widget.NewMultiLineEntry()
	ui.transcriptView.Wrapping = fyne.TextWrapWord
	ui.transcriptView.SetPlaceHolder(TextTranscriptionHdr)

	// Create save and reveal buttons, disabled until a run finishes
	ui.saveBtn = widget.NewButton(TextSaveTranscript, ui.onSaveTranscript)
	ui.saveBtn.Disable()
	ui.revealBtn = widget.NewButton(TextRevealAudio, ui.onRevealAudio)
	ui.revealBtn.Disable()
	bottomPanel := container.NewHBox(ui.saveBtn, ui.revealBtn)

	content := container.NewBorder(topCombined, bottomPanel, nil, nil, ui.transcriptView)
	ui.window.SetContent(content)
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "" && parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onTranscribeClick handles the transcribe button click
func (ui *RootUI) onTranscribeClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(TextPleaseEnterURL, false)
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showNotification(TextInvalidURL+": "+err.Error(), false)
		return
	}

	req := pipeline.Request{
		URL:       urlText,
		Language:  model.Language(ui.languageSelect.Selected),
		ModelSize: model.ModelSize(ui.modelSelect.Selected),
	}

	log.Printf("Starting transcription for URL: %s (language=%s model=%s)", urlText, req.Language, req.ModelSize)

	ui.transcribeBtn.Disable()
	ui.saveBtn.Disable()
	ui.revealBtn.Disable()
	ui.transcriptView.SetText("")

	go func() {
		task, err := ui.pipelineSvc.Run(context.Background(), req)

		fyne.Do(func() {
			ui.transcribeBtn.Enable()
		})

		if err != nil {
			ui.showNotification(IconError+" "+err.Error(), false)
			return
		}

		ui.lastTask = task
		if task.Status == model.TaskStatusFailed {
			ui.showNotification(IconError+" "+task.LastError, false)
			return
		}

		fyne.Do(func() {
			ui.transcriptView.SetText(task.Transcript)
			ui.saveBtn.Enable()
			ui.revealBtn.Enable()
		})
		ui.showNotification(TextDone, false)
	}()
}

// onTaskUpdate receives task status changes from the pipeline
func (ui *RootUI) onTaskUpdate(task *model.TranscriptionTask) {
	switch task.Status {
	case model.TaskStatusResolving:
		ui.showNotification(TextResolving, true)
	case model.TaskStatusAcquiring:
		message := TextAcquiring
		if task.Percent > 0 {
			message = fmt.Sprintf("%s %d%%", TextAcquiring, task.Percent)
		}
		if title := task.GetDisplayTitle(); title != "" && title != task.URL {
			message = fmt.Sprintf("%s (%s)", message, title)
		}
		ui.showNotification(message, true)
	case model.TaskStatusTranscribing:
		ui.showNotification(TextTranscribing, true)
	}
}

// onSaveTranscript offers the transcript as a downloadable text file
func (ui *RootUI) onSaveTranscript() {
	if ui.lastTask == nil || ui.lastTask.Transcript == "" {
		return
	}
	task := ui.lastTask

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write([]byte(task.Transcript)); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save transcript: %w", err), ui.window)
			return
		}
		log.Printf("Transcript saved to %s", writer.URI().String())
	}, ui.window)

	saveDialog.SetFileName(task.TranscriptFileName())
	saveDialog.SetFilter(storage.NewMimeTypeFileFilter([]string{pipeline.TranscriptMIMEType}))
	saveDialog.Show()
}

// onRevealAudio opens the downloaded audio file in the system file manager
func (ui *RootUI) onRevealAudio() {
	if ui.lastTask == nil || ui.lastTask.AudioPath == "" {
		return
	}
	if err := platform.RevealInFileManager(ui.lastTask.AudioPath); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// showNotification displays a message in the notification panel under the URL
// input. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, func(audioDir string) {
		ui.pipelineSvc.SetAudioDirectory(audioDir)
	})
	sd.Show()
}
