package transcribe

// Package transcribe implements the speech recognition stage by shelling out
// to the whisper CLI. Every call loads the requested model variant anew; any
// failure from the engine is converted into an error carrying a descriptive
// message, nothing panics across this boundary.
