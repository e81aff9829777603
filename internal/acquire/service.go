package acquire

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-transcriber/internal/platform"
)

// yt-dlp configuration constants
const (
	FormatSelector   = "bestaudio/best"
	AudioFormat      = "mp3"
	AudioQuality     = "192K"
	AudioExtension   = ".mp3"
	OutputExtension  = ".%(ext)s"
	ProgressInterval = 500 * time.Millisecond
)

// ErrAudioNotMaterialized is returned when the download engine reported
// success but the expected audio file never appeared on disk.
var ErrAudioNotMaterialized = errors.New("audio file was not created")

// runFunc abstracts the yt-dlp invocation for testability
type runFunc func(ctx context.Context, url, outputTemplate string, onProgress func(percent int, title string)) error

// Service handles audio acquisition
type Service struct {
	mu         sync.RWMutex
	audioDir   string
	onProgress func(percent int, title string)
	run        runFunc
}

// NewService creates a new acquisition service writing into audioDir
func NewService(audioDir string) *Service {
	s := &Service{audioDir: audioDir}
	s.run = runYTDLP
	return s
}

// SetProgressCallback sets the callback function for download progress
func (s *Service) SetProgressCallback(callback func(percent int, title string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress = callback
}

// SetAudioDirectory sets the working directory for audio artifacts
func (s *Service) SetAudioDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioDir = dir
}

// AudioPath returns the deterministic output path for a video ID
func (s *Service) AudioPath(videoID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filepath.Join(s.audioDir, videoID+AudioExtension)
}

// Acquire downloads the best audio-only stream for url, transcoded to mp3 at
// the fixed bitrate, into <audio-dir>/<videoID>.mp3. A pre-existing file with
// the same name is overwritten. The call blocks for the whole download; there
// is no retry. Existence of the target file after the call is the sole
// success signal, the engine's own status is not otherwise interpreted.
func (s *Service) Acquire(ctx context.Context, url, videoID string) (AudioArtifact, error) {
	s.mu.RLock()
	audioDir := s.audioDir
	onProgress := s.onProgress
	run := s.run
	s.mu.RUnlock()

	if err := platform.CreateDirectoryIfNotExists(audioDir); err != nil {
		return AudioArtifact{}, fmt.Errorf("failed to ensure audio directory %s: %w", audioDir, err)
	}

	outputTemplate := filepath.Join(audioDir, videoID+OutputExtension)
	runErr := run(ctx, url, outputTemplate, onProgress)

	artifact := AudioArtifact{Path: s.AudioPath(videoID)}
	if _, err := os.Stat(artifact.Path); err == nil {
		artifact.Exists = true
	}

	if !artifact.Exists {
		if runErr != nil {
			log.Printf("Audio download failed for %s: %v", videoID, runErr)
			return artifact, fmt.Errorf("download failed: %w", runErr)
		}
		return artifact, ErrAudioNotMaterialized
	}

	return artifact, nil
}

// runYTDLP performs the actual yt-dlp invocation
func runYTDLP(ctx context.Context, url, outputTemplate string, onProgress func(percent int, title string)) error {
	dl := ytdlp.New().
		Format(FormatSelector).
		ExtractAudio().
		AudioFormat(AudioFormat).
		AudioQuality(AudioQuality).
		NoPlaylist().
		ForceOverwrites().
		Quiet().
		NoWarnings().
		Output(outputTemplate)

	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress == nil {
			return
		}

		percent := 0
		if update.TotalBytes > 0 {
			percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
		}

		title := ""
		if update.Info != nil && update.Info.Title != nil {
			title = *update.Info.Title
		}

		onProgress(percent, title)
	})

	_, err := dl.Run(ctx, url)
	return err
}
