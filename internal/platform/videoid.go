package platform

import (
	"net/url"
	"regexp"
	"strings"
)

// Accepted YouTube hostnames for structured URL parsing
const (
	YouTubeHost    = "youtube.com"
	YouTubeWWWHost = "www.youtube.com"
)

// YouTube URL path prefixes
const (
	WatchPath   = "/watch"
	EmbedPrefix = "/embed/"
	BarePrefix  = "/v/"
)

// VideoQueryParam is the query parameter carrying the video ID on watch URLs
const VideoQueryParam = "v"

// videoIDPattern pairs a known URL shape with its extraction regexp
type videoIDPattern struct {
	shape string
	re    *regexp.Regexp
}

// videoIDPatterns lists the known YouTube URL shapes. They are tried in this
// fixed order and the first match wins.
var videoIDPatterns = []videoIDPattern{
	{"short-link", regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtu\.be/([^?&/]+)`)},
	{"embed", regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/embed/([^?&/]+)`)},
	{"bare-path", regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/v/([^?&/]+)`)},
	{"watch", regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^?&/]+)`)},
	{"watch-late-param", regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/watch\?.*?&v=([^?&/]+)`)},
}

// ExtractVideoID extracts the video ID from a YouTube URL. It tries the known
// URL shapes in order and falls back to structured URL parsing for anything
// the patterns miss. The second return value is false when no rule yields an
// ID; malformed input never causes a panic or an error.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.re.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if host := parsed.Hostname(); host != YouTubeHost && host != YouTubeWWWHost {
		return "", false
	}

	switch {
	case parsed.Path == WatchPath:
		if v := parsed.Query().Get(VideoQueryParam); v != "" {
			return v, true
		}
	case strings.HasPrefix(parsed.Path, EmbedPrefix):
		return pathSegmentAfter(parsed.Path, EmbedPrefix)
	case strings.HasPrefix(parsed.Path, BarePrefix):
		return pathSegmentAfter(parsed.Path, BarePrefix)
	}

	return "", false
}

// pathSegmentAfter returns the path segment directly following prefix
func pathSegmentAfter(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
