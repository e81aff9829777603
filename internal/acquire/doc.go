package acquire

// Package acquire implements the audio acquisition stage built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It materializes one mp3 file
// per video ID in the configured audio directory and treats existence of
// that file on disk as the sole success signal.
