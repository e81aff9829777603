package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-transcriber/internal/model"
	"github.com/ytget/yt-transcriber/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAudioDir         = "audio_directory"
	KeyDefaultLanguage  = "default_language"
	KeyDefaultModelSize = "default_model_size"
)

// Default values
const (
	DefaultLanguage  = model.LanguageSpanish
	DefaultModelSize = model.ModelBase
	FallbackAudioDir = "/tmp/yt-transcriber"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAudioDirectory returns the configured working directory for audio files
func (s *Settings) GetAudioDirectory() string {
	dir := s.app.Preferences().String(KeyAudioDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultAudioDir()
		if err != nil {
			defaultDir = FallbackAudioDir
		}
		s.SetAudioDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetAudioDirectory sets the working directory for audio files
func (s *Settings) SetAudioDirectory(dir string) {
	s.app.Preferences().SetString(KeyAudioDir, dir)
}

// GetDefaultLanguage returns the default language hint
func (s *Settings) GetDefaultLanguage() model.Language {
	lang := s.app.Preferences().String(KeyDefaultLanguage)
	if !model.IsValidLanguage(lang) {
		s.SetDefaultLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return model.Language(lang)
}

// SetDefaultLanguage sets the default language hint
func (s *Settings) SetDefaultLanguage(lang model.Language) {
	if !model.IsValidLanguage(lang.String()) {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyDefaultLanguage, lang.String())
}

// GetDefaultModelSize returns the default recognition model tier
func (s *Settings) GetDefaultModelSize() model.ModelSize {
	size := s.app.Preferences().String(KeyDefaultModelSize)
	if !model.IsValidModelSize(size) {
		s.SetDefaultModelSize(DefaultModelSize)
		return DefaultModelSize
	}
	return model.ModelSize(size)
}

// SetDefaultModelSize sets the default recognition model tier
func (s *Settings) SetDefaultModelSize(size model.ModelSize) {
	if !model.IsValidModelSize(size.String()) {
		size = DefaultModelSize
	}
	s.app.Preferences().SetString(KeyDefaultModelSize, size.String())
}

// GetLanguageOptions returns the selectable language codes for the UI
func (s *Settings) GetLanguageOptions() []string {
	options := make([]string, 0, len(model.LanguageOptions()))
	for _, lang := range model.LanguageOptions() {
		options = append(options, lang.String())
	}
	return options
}

// GetModelSizeOptions returns the selectable model tiers for the UI
func (s *Settings) GetModelSizeOptions() []string {
	options := make([]string, 0, len(model.ModelSizeOptions()))
	for _, size := range model.ModelSizeOptions() {
		options = append(options, size.String())
	}
	return options
}
