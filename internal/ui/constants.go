package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconError    = "❌"
)

// Placeholder and label texts
const (
	TextWindowSubtitle   = "Enter a YouTube link and get the audio transcription."
	TextEnterURL         = "YouTube URL"
	TextTranscribe       = "Transcribe"
	TextSaveTranscript   = "Save Transcript"
	TextRevealAudio      = IconFolder + " Audio File"
	TextLanguageLabel    = "Audio language:"
	TextModelLabel       = "Recognition model:"
	TextTranscriptionHdr = "Transcription"
)

// Notification texts
const (
	TextPleaseEnterURL = "Please enter a YouTube URL."
	TextInvalidURL     = "Invalid URL"
	TextResolving      = "Extracting video ID..."
	TextAcquiring      = "Downloading the audio..."
	TextTranscribing   = "Transcribing the audio..."
	TextDone           = "Transcription complete."
)

// Layout sizing
const (
	SelectMinWidth  float32 = 120
	TranscriptMinH  float32 = 240
	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 300
)
