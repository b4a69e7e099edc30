package ultimasgeek

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
)

// Fetcher returns the text of the page at url. Non-2xx responses and
// timeouts are errors.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// fieldStrategy pulls one candidate value out of a parsed page. An empty
// result means "try the next strategy".
type fieldStrategy func(doc *goquery.Document) string

// Title fallbacks, first non-empty wins.
var titleStrategies = []fieldStrategy{
	metaProperty("og:title"),
	firstElementText("h1"),
	firstElementText("title"),
}

// Description fallbacks, first non-empty wins.
var descriptionStrategies = []fieldStrategy{
	metaProperty("og:description"),
	metaName("description"),
	firstElementText("p"),
}

// Extractor turns post pages into feed records.
type Extractor struct {
	fetcher Fetcher
	now     func() time.Time
}

// NewExtractor creates an Extractor that reads pages through fetcher
func NewExtractor(fetcher Fetcher) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// ExtractPost fetches postURL and builds a record from it.
// It returns nil when the page cannot be fetched or has no usable title;
// fetch failures are logged and never abort the run.
func (e *Extractor) ExtractPost(ctx context.Context, postURL string) *feedtypes.Post {
	page, err := e.fetcher.FetchText(ctx, postURL)
	if err != nil {
		slog.Warn("Could not fetch post", "url", postURL, "error", err)
		return nil
	}

	post, err := e.ParsePost(page, postURL)
	if err != nil {
		slog.Warn("Could not parse post", "url", postURL, "error", err)
		return nil
	}
	if post == nil {
		slog.Debug("Skipping page without title", "url", postURL)
	}
	return post
}

// ParsePost builds a record from already fetched post markup.
// A nil record without error means the page has no resolvable title.
func (e *Extractor) ParsePost(page, postURL string) (*feedtypes.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	title := resolve(doc, titleStrategies)
	if title == "" {
		return nil, nil
	}

	published, ok := ParseDate(visibleText(doc))
	if !ok {
		published = e.now().UTC()
	}

	return &feedtypes.Post{
		Title:       title,
		Link:        postURL,
		GUID:        postURL,
		Published:   published,
		Description: truncateDescription(resolve(doc, descriptionStrategies), MaxDescriptionLength),
		ImageURL:    metaProperty("og:image")(doc),
	}, nil
}

func resolve(doc *goquery.Document, strategies []fieldStrategy) string {
	for _, strategy := range strategies {
		if value := strategy(doc); value != "" {
			return value
		}
	}
	return ""
}

func metaProperty(property string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return metaContent(doc, `meta[property="`+property+`"]`)
	}
}

func metaName(name string) fieldStrategy {
	return func(doc *goquery.Document) string {
		return metaContent(doc, `meta[name="`+name+`"]`)
	}
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

// firstElementText only looks at the first matching element; if that one is
// empty the strategy yields nothing even when later elements have text.
func firstElementText(tag string) fieldStrategy {
	return func(doc *goquery.Document) string {
		sel := doc.Find(tag).First()
		if sel.Length() == 0 {
			return ""
		}
		return joinedText(sel.Nodes[0], " ")
	}
}

// truncateDescription trims s and cuts it to maxLen characters, marking the
// cut with an ellipsis.
func truncateDescription(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimRightFunc(string(runes[:maxLen]), unicode.IsSpace) + "…"
}

// Text inside these elements is never shown to readers.
var invisibleElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"template": {},
}

// visibleText returns every non-blank text node of the page, trimmed, one per line.
func visibleText(doc *goquery.Document) string {
	if len(doc.Nodes) == 0 {
		return ""
	}
	return joinedText(doc.Nodes[0], "\n")
}

// joinedText collects the trimmed non-empty text nodes under n joined by sep.
func joinedText(n *html.Node, sep string) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			if text := strings.TrimSpace(node.Data); text != "" {
				parts = append(parts, text)
			}
			return
		case html.ElementNode:
			if _, skip := invisibleElements[node.Data]; skip {
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(parts, sep)
}
