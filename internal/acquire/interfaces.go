package acquire

import "context"

// AudioArtifact describes the audio file produced for one video ID
type AudioArtifact struct {
	Path   string
	Exists bool
}

// Acquirer defines the interface for the audio acquisition service.
type Acquirer interface {
	// SetProgressCallback sets the callback invoked with download progress
	SetProgressCallback(func(percent int, title string))

	// Acquire downloads the audio track for url into <audio-dir>/<videoID>.mp3
	Acquire(ctx context.Context, url, videoID string) (AudioArtifact, error)

	// AudioPath returns the deterministic output path for a video ID
	AudioPath(videoID string) string

	// SetAudioDirectory sets the working directory for audio artifacts
	SetAudioDirectory(dir string)
}
