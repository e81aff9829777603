package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audios")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error creating directory, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Creating again must be a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestGetDefaultAudioDir(t *testing.T) {
	dir, err := GetDefaultAudioDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dir == "" {
		t.Fatal("Expected non-empty audio directory")
	}
	if filepath.Base(dir) != AudioDirName {
		t.Errorf("Expected directory to end with '%s', got '%s'", AudioDirName, dir)
	}
}

func TestRevealInFileManagerMissingFile(t *testing.T) {
	err := RevealInFileManager(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
