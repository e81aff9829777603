package pipeline

// Package pipeline sequences the three transcription stages: URL-to-ID
// resolution, audio acquisition, and speech recognition. It owns the task
// state machine, short-circuits on the first stage failure, and exports the
// transcript artifact next to the audio file.
