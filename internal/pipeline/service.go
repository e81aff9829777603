package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-transcriber/internal/acquire"
	"github.com/ytget/yt-transcriber/internal/model"
	"github.com/ytget/yt-transcriber/internal/platform"
	"github.com/ytget/yt-transcriber/internal/transcribe"
)

// User-facing stage failure messages
const (
	MsgIdentifierNotFound = "could not extract a video ID from the URL, please verify it and try again"
	MsgAcquisitionFailed  = "could not download the audio, verify the URL and try again"
)

// Task ID and artifact constants
const (
	TaskIDPrefix              = "task-"
	TranscriptMIMEType        = "text/plain"
	TranscriptFilePermissions = 0644
)

// ErrRunInProgress is returned when a second run starts while one is active.
var ErrRunInProgress = errors.New("a transcription is already running")

// ErrInvalidSelection is returned for language or model values outside the
// supported sets.
var ErrInvalidSelection = errors.New("invalid language or model selection")

// Request describes one pipeline invocation
type Request struct {
	URL       string
	Language  model.Language
	ModelSize model.ModelSize
}

// Resolver resolves a raw URL into a video ID
type Resolver func(rawURL string) (string, bool)

// Orchestrator defines the interface for the pipeline service.
type Orchestrator interface {
	SetUpdateCallback(func(*model.TranscriptionTask))
	Run(ctx context.Context, req Request) (*model.TranscriptionTask, error)
	SetAudioDirectory(dir string)
}

// Service orchestrates one transcription run at a time
type Service struct {
	mu          sync.Mutex
	running     bool
	audioDir    string
	resolve     Resolver
	acquirer    acquire.Acquirer
	transcriber transcribe.Transcriber
	onUpdate    func(*model.TranscriptionTask) // callback for UI updates
}

// NewService creates a new pipeline service
func NewService(audioDir string, acquirer acquire.Acquirer, transcriber transcribe.Transcriber) *Service {
	return &Service{
		audioDir:    audioDir,
		resolve:     platform.ExtractVideoID,
		acquirer:    acquirer,
		transcriber: transcriber,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.TranscriptionTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetAudioDirectory sets the working directory for audio and transcripts
func (s *Service) SetAudioDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioDir = dir
	s.acquirer.SetAudioDirectory(dir)
}

// Run executes the full pipeline for one URL and blocks until the task
// reaches Done or Failed. Stage failures are captured on the task, never
// returned as errors; the error return covers only rejected invocations
// (a run already in flight, or selections outside the supported sets).
// Nothing is retried, a new run requires a fresh invocation.
func (s *Service) Run(ctx context.Context, req Request) (*model.TranscriptionTask, error) {
	if !model.IsValidLanguage(req.Language.String()) || !model.IsValidModelSize(req.ModelSize.String()) {
		return nil, ErrInvalidSelection
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.running = true
	audioDir := s.audioDir
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	task := &model.TranscriptionTask{
		ID:        TaskIDPrefix + uuid.New().String(),
		URL:       req.URL,
		Status:    model.TaskStatusIdle,
		Language:  req.Language,
		ModelSize: req.ModelSize,
		StartedAt: time.Now(),
	}

	// Resolving
	s.transition(task, model.TaskStatusResolving)
	videoID, ok := s.resolve(req.URL)
	if !ok {
		return s.fail(task, MsgIdentifierNotFound), nil
	}
	task.VideoID = videoID
	log.Printf("Resolved video ID %s for task %s", videoID, task.ID)

	// Acquiring
	s.transition(task, model.TaskStatusAcquiring)
	s.acquirer.SetProgressCallback(func(percent int, title string) {
		task.Percent = percent
		if title != "" && task.Title == "" {
			task.Title = title
		}
		s.notifyUpdate(task)
	})

	artifact, err := s.acquirer.Acquire(ctx, req.URL, videoID)
	task.AudioPath = artifact.Path
	if err != nil {
		return s.fail(task, fmt.Sprintf("%s (%v)", MsgAcquisitionFailed, err)), nil
	}
	if !artifact.Exists {
		return s.fail(task, MsgAcquisitionFailed), nil
	}

	// Transcribing
	s.transition(task, model.TaskStatusTranscribing)
	text, err := s.transcriber.Transcribe(ctx, transcribe.Request{
		AudioPath: artifact.Path,
		ModelSize: req.ModelSize,
		Language:  req.Language,
	})
	if err != nil {
		return s.fail(task, err.Error()), nil
	}
	task.Transcript = text

	transcriptPath := filepath.Join(audioDir, task.TranscriptFileName())
	if err := os.WriteFile(transcriptPath, []byte(text), TranscriptFilePermissions); err != nil {
		return s.fail(task, fmt.Sprintf("failed to save transcript: %v", err)), nil
	}
	task.TranscriptPath = transcriptPath

	s.transition(task, model.TaskStatusDone)
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)
	log.Printf("Task %s finished, transcript at %s", task.ID, transcriptPath)

	return task, nil
}

// transition applies a validated status change and notifies the UI
func (s *Service) transition(task *model.TranscriptionTask, next model.TaskStatus) {
	if !task.Status.CanTransitionTo(next) {
		log.Printf("Invalid status transition %s -> %s for task %s", task.Status, next, task.ID)
		return
	}
	task.Status = next
	s.notifyUpdate(task)
}

// fail moves the task to its terminal Failed state with a user-visible message
func (s *Service) fail(task *model.TranscriptionTask, message string) *model.TranscriptionTask {
	stage := task.Status
	task.LastError = message
	s.transition(task, model.TaskStatusFailed)
	task.FinishedAt = time.Now()
	s.notifyUpdate(task)
	log.Printf("Task %s failed at %s: %s", task.ID, stage, message)
	return task
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.TranscriptionTask) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(task)
	}
}
