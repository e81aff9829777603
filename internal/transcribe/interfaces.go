package transcribe

import (
	"context"

	"github.com/ytget/yt-transcriber/internal/model"
)

// Request describes one transcription invocation
type Request struct {
	AudioPath string
	ModelSize model.ModelSize
	Language  model.Language
}

// Transcriber defines the interface for the speech recognition service.
type Transcriber interface {
	// Transcribe converts the audio file into plain text constrained to the
	// requested language hint, using the requested model tier
	Transcribe(ctx context.Context, req Request) (string, error)
}
