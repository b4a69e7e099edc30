// Package urlutils provides URL and common helper functions.
package urlutils

import (
	"net/url"
	"strings"
)

// IsValidURL checks if a URL is valid
func IsValidURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// NormalizeURL drops everything from the first '#' or '?' onward so that
// the same post reached through different query strings or anchors compares equal.
func NormalizeURL(rawURL string) string {
	if i := strings.IndexAny(rawURL, "#?"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// IsHTTPURL reports whether s is a scheme-qualified http(s) URL.
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http")
}

// GuessImageMIME maps an image URL to a media type from its path suffix.
// Unknown suffixes are reported as image/jpeg.
func GuessImageMIME(imageURL string) string {
	path := strings.ToLower(NormalizeURL(imageURL))

	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	case strings.HasSuffix(path, ".gif"):
		return "image/gif"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
