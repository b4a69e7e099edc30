package ultimasgeek

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/urlutils"
)

// ExtractPostURLs returns the normalized candidate post URLs linked from the
// home page, in the order they first appear and without duplicates.
func ExtractPostURLs(homeHTML, siteBase string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(homeHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse home page: %w", err)
	}

	var urls []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href := strings.TrimSpace(link.AttrOr("href", ""))
		if !IsPostURL(href, siteBase) {
			return
		}

		normalized := urlutils.NormalizeURL(href)
		if _, dup := seen[normalized]; dup {
			return
		}
		seen[normalized] = struct{}{}
		urls = append(urls, normalized)
	})

	slog.Debug("Extracted candidate post URLs", "count", len(urls))
	return urls, nil
}
