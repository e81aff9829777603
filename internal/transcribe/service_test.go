package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/yt-transcriber/internal/model"
)

// fakeRunner records the invocation and replays a canned result
type fakeRunner struct {
	result   commandResult
	err      error
	lastName string
	lastArgs []string
	onRun    func(args []string)
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	r.lastName = name
	r.lastArgs = args
	if r.onRun != nil {
		r.onRun(args)
	}
	return r.result, r.err
}

// newTestService builds a service with a fake runner and a real temp dir
func newTestService(t *testing.T, runner commandRunner) *Service {
	t.Helper()
	return &Service{
		whisperPath: WhisperCommand,
		runner:      runner,
		mkdirTemp: func(dir, pattern string) (string, error) {
			return t.TempDir(), nil
		},
		removeAll: func(path string) error { return nil },
		stat:      os.Stat,
		readFile:  os.ReadFile,
	}
}

// writeAudioFile creates a dummy audio file and returns its path
func writeAudioFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to write audio file: %v", err)
	}
	return path
}

func TestTranscribeSuccess(t *testing.T) {
	audioPath := writeAudioFile(t, "abc123.mp3")

	var outDir string
	runner := &fakeRunner{}
	runner.onRun = func(args []string) {
		// The service points whisper at a temp output dir; emulate the
		// transcript file whisper would write there.
		for i, arg := range args {
			if arg == OutputDirFlag && i+1 < len(args) {
				outDir = args[i+1]
			}
		}
		if outDir == "" {
			t.Fatal("Expected --output_dir argument")
		}
		txt := filepath.Join(outDir, "abc123.txt")
		if err := os.WriteFile(txt, []byte("  hola mundo \n"), 0644); err != nil {
			t.Fatalf("Failed to write transcript: %v", err)
		}
	}

	service := newTestService(t, runner)
	text, err := service.Transcribe(context.Background(), Request{
		AudioPath: audioPath,
		ModelSize: model.ModelBase,
		Language:  model.LanguageSpanish,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "hola mundo" {
		t.Errorf("Expected trimmed transcript 'hola mundo', got '%s'", text)
	}

	if runner.lastName != WhisperCommand {
		t.Errorf("Expected command '%s', got '%s'", WhisperCommand, runner.lastName)
	}
	joined := strings.Join(runner.lastArgs, " ")
	for _, want := range []string{audioPath, "--model base", "--language es", "--output_format txt"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected args to contain '%s', got '%s'", want, joined)
		}
	}
}

func TestTranscribeMissingAudioFile(t *testing.T) {
	service := newTestService(t, &fakeRunner{})

	_, err := service.Transcribe(context.Background(), Request{
		AudioPath: filepath.Join(t.TempDir(), "missing.mp3"),
		ModelSize: model.ModelBase,
		Language:  model.LanguageEnglish,
	})
	if err == nil {
		t.Fatal("Expected error for missing audio file")
	}
	if !strings.Contains(err.Error(), "cannot access audio file") {
		t.Errorf("Expected descriptive message, got '%s'", err)
	}
}

func TestTranscribeEmptyAudioPath(t *testing.T) {
	service := newTestService(t, &fakeRunner{})

	_, err := service.Transcribe(context.Background(), Request{
		ModelSize: model.ModelBase,
		Language:  model.LanguageEnglish,
	})
	if err == nil {
		t.Fatal("Expected error for empty audio path")
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	audioPath := writeAudioFile(t, "abc123.mp3")
	runner := &fakeRunner{
		result: commandResult{Stderr: "RuntimeError: unsupported audio", ExitCode: 1},
		err:    fmt.Errorf("exit status 1"),
	}

	service := newTestService(t, runner)
	_, err := service.Transcribe(context.Background(), Request{
		AudioPath: audioPath,
		ModelSize: model.ModelTiny,
		Language:  model.LanguageEnglish,
	})
	if err == nil {
		t.Fatal("Expected error when whisper fails")
	}
	if !strings.Contains(err.Error(), "unsupported audio") {
		t.Errorf("Expected stderr excerpt in message, got '%s'", err)
	}
}

func TestTranscribeMissingOutputFile(t *testing.T) {
	audioPath := writeAudioFile(t, "abc123.mp3")

	// Runner succeeds but never writes the transcript
	service := newTestService(t, &fakeRunner{})
	_, err := service.Transcribe(context.Background(), Request{
		AudioPath: audioPath,
		ModelSize: model.ModelBase,
		Language:  model.LanguageEnglish,
	})
	if err == nil {
		t.Fatal("Expected error when transcript file is missing")
	}
	if !strings.Contains(err.Error(), "transcript file is missing") {
		t.Errorf("Expected missing-transcript message, got '%s'", err)
	}
}

func TestTranscriptPath(t *testing.T) {
	got := transcriptPath("/tmp/out", "/audios/abc123.mp3")
	want := filepath.Join("/tmp/out", "abc123.txt")
	if got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
