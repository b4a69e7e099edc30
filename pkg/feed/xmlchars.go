package feed

import (
	"strings"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
)

// isXMLChar reports whether r may appear in an XML 1.0 document.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// StripInvalidXMLChars removes control characters and other code points that
// XML 1.0 forbids. Invalid UTF-8 bytes become U+FFFD.
func StripInvalidXMLChars(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

// xmlSafePost returns a copy of item whose text fields can be written to XML.
func xmlSafePost(item *feedtypes.Post) *feedtypes.Post {
	safe := *item
	safe.Title = StripInvalidXMLChars(item.Title)
	safe.Link = StripInvalidXMLChars(item.Link)
	safe.GUID = StripInvalidXMLChars(item.GUID)
	safe.Description = StripInvalidXMLChars(item.Description)
	safe.ImageURL = StripInvalidXMLChars(item.ImageURL)
	return &safe
}
