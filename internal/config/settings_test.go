package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-transcriber/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAudioDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetAudioDirectory()
	if dir == "" {
		t.Error("Audio directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/audios"
	settings.SetAudioDirectory(customDir)

	if got := settings.GetAudioDirectory(); got != customDir {
		t.Errorf("Expected audio directory %s, got %s", customDir, got)
	}
}

func TestDefaultLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetDefaultLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetDefaultLanguage(model.LanguageJapanese)
	if got := settings.GetDefaultLanguage(); got != model.LanguageJapanese {
		t.Errorf("Expected language ja, got %s", got)
	}

	// Unknown codes fall back to the default
	settings.SetDefaultLanguage(model.Language("xx"))
	if got := settings.GetDefaultLanguage(); got != DefaultLanguage {
		t.Errorf("Expected fallback to %s, got %s", DefaultLanguage, got)
	}
}

func TestDefaultModelSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetDefaultModelSize(); size != DefaultModelSize {
		t.Errorf("Expected default model size %s, got %s", DefaultModelSize, size)
	}

	settings.SetDefaultModelSize(model.ModelLarge)
	if got := settings.GetDefaultModelSize(); got != model.ModelLarge {
		t.Errorf("Expected model size large, got %s", got)
	}

	// Unknown tiers fall back to the default
	settings.SetDefaultModelSize(model.ModelSize("huge"))
	if got := settings.GetDefaultModelSize(); got != DefaultModelSize {
		t.Errorf("Expected fallback to %s, got %s", DefaultModelSize, got)
	}
}

func TestSelectionOptionLists(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if len(settings.GetLanguageOptions()) != 10 {
		t.Errorf("Expected 10 language options, got %d", len(settings.GetLanguageOptions()))
	}
	if len(settings.GetModelSizeOptions()) != 5 {
		t.Errorf("Expected 5 model size options, got %d", len(settings.GetModelSizeOptions()))
	}
}
