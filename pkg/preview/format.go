// Package preview shows extracted posts in a Bubble Tea TUI before a feed is written.
package preview

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
)

const (
	maxListTitleLength = 70
	detailWidth        = 70
	xmlWidth           = 80
)

var itemRegex = regexp.MustCompile(`(?s)<item>.*?</item>`)

const rule = "═══════════════════════════════════════════════════════════════════════\n"

// wrapText wraps text to width runes, breaking at spaces. Words longer than
// width get a line of their own.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = detailWidth
	}

	var lines []string
	var line []string
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		if lineLen > 0 && lineLen+1+wordLen > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineLen = nil, 0
		}
		if lineLen > 0 {
			lineLen++
		}
		line = append(line, word)
		lineLen += wordLen
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return strings.Join(lines, "\n")
}

// truncateRunes shortens s to at most maxLen runes, ending in "..." when cut.
func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatCompactListItem formats a single post in compact list format
// Example: " 1. 2026-01-27  Reseña: Dune Parte Dos [img]"
func FormatCompactListItem(index int, post *feedtypes.Post) string {
	line := fmt.Sprintf("%2d. %s  %s", index+1, post.Published.Format(time.DateOnly), truncateRunes(post.Title, maxListTitleLength))
	if post.ImageURL != "" {
		line += " [img]"
	}
	return line
}

// FormatDetailedItem formats a single post with every extracted field
func FormatDetailedItem(post *feedtypes.Post, now time.Time) string {
	var b strings.Builder

	b.WriteString(rule)
	fmt.Fprintf(&b, "Title: %s\n", post.Title)
	fmt.Fprintf(&b, "Link: %s\n", post.Link)

	if !post.Published.IsZero() {
		fmt.Fprintf(&b, "Published: %s (%s)\n", post.Published.Format(feed.RFC2822), formatTimeAgo(post.Published, now))
	}

	if post.ImageURL != "" {
		fmt.Fprintf(&b, "Image: %s\n", post.ImageURL)
	}

	if post.Description != "" {
		fmt.Fprintf(&b, "\nDescription:\n%s\n", wrapText(post.Description, detailWidth))
	} else {
		b.WriteString("\nDescription: (none)\n")
	}

	b.WriteString(rule)

	return b.String()
}

// FormatXMLItem renders post through the real RSS template and returns only
// its <item> element.
func FormatXMLItem(post *feedtypes.Post, generator *feed.Generator) string {
	doc, err := generator.GenerateRSS([]*feedtypes.Post{post})
	if err != nil {
		return fmt.Sprintf("Error generating feed: %s", err)
	}

	match := itemRegex.FindString(doc)
	if match == "" {
		return "No item found in generated feed"
	}

	return wrapXMLContent(match, xmlWidth)
}

// wrapXMLContent hard-wraps lines longer than width, preferring to break
// after a space or a closing angle bracket.
func wrapXMLContent(xml string, width int) string {
	var b strings.Builder

	for _, line := range strings.Split(xml, "\n") {
		for len(line) > width {
			cut := width
			for i := width - 1; i > width-20 && i > 0; i-- {
				if line[i] == ' ' || line[i] == '>' {
					cut = i + 1
					break
				}
			}
			for cut > 1 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			b.WriteString(line[:cut])
			b.WriteString("\n")
			line = line[cut:]
		}
		if line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// formatTimeAgo describes t relative to now, falling back to a plain date
// after a week.
func formatTimeAgo(t, now time.Time) string {
	d := now.Sub(t)

	plural := func(n int, unit string) string {
		if n == 1 {
			return "1 " + unit + " ago"
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case d < 0:
		return "in the future"
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return t.Format(time.DateOnly)
	}
}
