package platform

// Package platform contains OS/platform integration and YouTube URL glue:
// video ID extraction, filesystem helpers, and OS reveal of produced files.
