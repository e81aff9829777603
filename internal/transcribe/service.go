package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Whisper CLI constants
const (
	WhisperCommand     = "whisper"
	OutputFormatFlag   = "--output_format"
	OutputFormatText   = "txt"
	OutputDirFlag      = "--output_dir"
	ModelFlag          = "--model"
	LanguageFlag       = "--language"
	VerboseFlag        = "--verbose"
	VerboseOff         = "False"
	TranscriptExt      = ".txt"
	TempDirPattern     = "yt-transcriber-*"
	StderrExcerptLimit = 300
)

// commandResult is an internal process execution response
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// commandRunner abstracts process execution for testability
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (commandResult, error)
}

// execRunner executes commands via os/exec
type execRunner struct{}

// Run executes one command and captures stdout/stderr and exit code
func (r *execRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := commandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, err
	}

	return result, nil
}

// Service runs whisper transcriptions
type Service struct {
	whisperPath string
	runner      commandRunner
	mkdirTemp   func(dir, pattern string) (string, error)
	removeAll   func(path string) error
	stat        func(name string) (os.FileInfo, error)
	readFile    func(name string) ([]byte, error)
}

// NewService constructs the production transcription service
func NewService() *Service {
	return &Service{
		whisperPath: WhisperCommand,
		runner:      &execRunner{},
		mkdirTemp:   os.MkdirTemp,
		removeAll:   os.RemoveAll,
		stat:        os.Stat,
		readFile:    os.ReadFile,
	}
}

// Transcribe converts the audio file into plain text. The whisper process
// loads the requested model on every call; there is no caching across
// invocations. All failures are returned as errors with a descriptive
// message and never escape as panics.
func (s *Service) Transcribe(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return "", fmt.Errorf("audio file path is required")
	}
	if _, err := s.stat(req.AudioPath); err != nil {
		return "", fmt.Errorf("cannot access audio file %s: %w", req.AudioPath, err)
	}

	outDir, err := s.mkdirTemp("", TempDirPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription workspace: %w", err)
	}
	defer func() {
		_ = s.removeAll(outDir)
	}()

	args := buildWhisperArgs(req, outDir)
	result, runErr := s.runner.Run(ctx, s.whisperPath, args...)
	if runErr != nil {
		return "", fmt.Errorf("whisper transcription failed (model=%s exit=%d): %s",
			req.ModelSize, result.ExitCode, excerpt(result.Stderr, runErr.Error()))
	}

	textPath := transcriptPath(outDir, req.AudioPath)
	if _, err := s.stat(textPath); err != nil {
		return "", fmt.Errorf("whisper completed but transcript file is missing: %w", err)
	}

	content, err := s.readFile(textPath)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript file %s: %w", textPath, err)
	}

	return strings.TrimSpace(string(content)), nil
}

// buildWhisperArgs builds whisper CLI args for plain text export
func buildWhisperArgs(req Request, outDir string) []string {
	return []string{
		req.AudioPath,
		ModelFlag, req.ModelSize.String(),
		LanguageFlag, req.Language.String(),
		OutputFormatFlag, OutputFormatText,
		OutputDirFlag, outDir,
		VerboseFlag, VerboseOff,
	}
}

// transcriptPath returns where whisper writes the txt output for an audio file
func transcriptPath(outDir, audioPath string) string {
	base := filepath.Base(audioPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, name+TranscriptExt)
}

// excerpt returns the trailing part of stderr, or the fallback when empty
func excerpt(stderr, fallback string) string {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return fallback
	}
	if len(msg) > StderrExcerptLimit {
		msg = "..." + msg[len(msg)-StderrExcerptLimit:]
	}
	return msg
}
