package model

import (
	"fmt"
	"strings"
	"time"
)

// TranscriptionTask represents a single URL-to-transcript run
type TranscriptionTask struct {
	ID             string
	URL            string
	VideoID        string
	Status         TaskStatus
	Language       Language
	ModelSize      ModelSize
	Percent        int    // download progress, 0 to 100
	LastError      string // last error message if any
	AudioPath      string // path to the downloaded audio file
	TranscriptPath string // path to the exported transcript file
	Transcript     string // transcribed text
	Title          string // video title when the download engine reports one
	StartedAt      time.Time
	FinishedAt     time.Time
}

// GetDisplayTitle returns title, video ID, or URL in order of preference
func (tt *TranscriptionTask) GetDisplayTitle() string {
	if tt.Title != "" && !strings.HasPrefix(tt.Title, "http") {
		return tt.Title
	}
	if tt.VideoID != "" {
		return tt.VideoID
	}
	return tt.URL
}

// WatchURL returns the canonical watch URL for the resolved video ID
func (tt *TranscriptionTask) WatchURL() string {
	if tt.VideoID == "" {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", tt.VideoID)
}

// TranscriptFileName returns the export filename for the transcript
func (tt *TranscriptionTask) TranscriptFileName() string {
	return tt.VideoID + "_transcription.txt"
}
