// Package feedtypes provides shared type definitions used by feed generation.
package feedtypes

import (
	"strings"
	"time"
)

// Post is one syndication item extracted from a blog post page.
type Post struct {
	Title       string
	Link        string
	GUID        string // always equal to Link, emitted as a permalink
	Published   time.Time
	Description string
	ImageURL    string
}

// DedupKey identifies posts that should appear only once in a feed.
func (p *Post) DedupKey() string {
	return p.Link + "\x00" + strings.ToLower(strings.TrimSpace(p.Title))
}
