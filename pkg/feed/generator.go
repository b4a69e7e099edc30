package feed

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/gorilla/feeds"
	"github.com/mmcdole/gofeed"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/filesystem"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/urlutils"
)

// Generate renders items in the requested format
func (g *Generator) Generate(items []*feedtypes.Post, feedType FeedType) (string, error) {
	switch feedType {
	case RSS:
		return g.GenerateRSS(items)
	case Atom:
		return g.GenerateAtom(items)
	default:
		return "", fmt.Errorf("unsupported feed type: %s", feedType)
	}
}

// GenerateRSS renders items as an RSS 2.0 document, keeping their order.
func (g *Generator) GenerateRSS(items []*feedtypes.Post) (string, error) {
	data := &TemplateData{
		FeedTitle:       g.Title,
		FeedLink:        g.Link,
		SelfLink:        g.SelfLink,
		FeedDescription: g.Description,
		Updated:         g.now().UTC().Format(RFC2822),
		Items:           make([]TemplateItem, 0, len(items)),
	}

	for _, item := range items {
		data.Items = append(data.Items, newTemplateItem(xmlSafePost(item)))
	}

	var out strings.Builder
	if err := ExecuteTemplate("rss", data, &out); err != nil {
		return "", err
	}

	slog.Debug("Generated feed", "type", RSS, "items", len(items))
	return out.String(), nil
}

func newTemplateItem(item *feedtypes.Post) TemplateItem {
	ti := TemplateItem{
		Title:     item.Title,
		Link:      item.Link,
		ID:        item.GUID,
		Published: item.Published.UTC().Format(RFC2822),
		Content:   itemContent(item),
	}

	if imageURL := strings.TrimSpace(item.ImageURL); urlutils.IsHTTPURL(imageURL) {
		ti.ImageURL = imageURL
		ti.ImageType = urlutils.GuessImageMIME(imageURL)
	}

	return ti
}

// itemContent is the HTML shown by readers: the lead image (if any) followed
// by the description paragraph (if any). Both missing gives "".
func itemContent(item *feedtypes.Post) string {
	var b strings.Builder

	if imageURL := strings.TrimSpace(item.ImageURL); urlutils.IsHTTPURL(imageURL) {
		fmt.Fprintf(&b, `<p><img src="%s" alt="%s" /></p>`, html.EscapeString(imageURL), html.EscapeString(item.Title))
	}

	if item.Description != "" {
		b.WriteString("<p>")
		b.WriteString(item.Description)
		b.WriteString("</p>")
	}

	return b.String()
}

// GenerateAtom renders items as an Atom document
func (g *Generator) GenerateAtom(items []*feedtypes.Post) (string, error) {
	now := g.now().UTC()
	f := &feeds.Feed{
		Title:       g.Title,
		Link:        &feeds.Link{Href: g.Link},
		Description: g.Description,
		Author:      &feeds.Author{Name: g.Title},
		Id:          g.SelfLink,
		Created:     now,
		Updated:     now,
	}

	for _, item := range items {
		item = xmlSafePost(item)
		feedItem := &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Id:          item.GUID,
			Description: item.Description,
			Content:     itemContent(item),
			Created:     item.Published,
			Updated:     item.Published,
		}

		if imageURL := strings.TrimSpace(item.ImageURL); urlutils.IsHTTPURL(imageURL) {
			feedItem.Enclosure = &feeds.Enclosure{Url: imageURL, Type: urlutils.GuessImageMIME(imageURL)}
		}

		f.Items = append(f.Items, feedItem)
	}

	doc, err := f.ToAtom()
	if err != nil {
		return "", fmt.Errorf("failed to render atom feed: %w", err)
	}

	slog.Debug("Generated feed", "type", Atom, "items", len(items))
	return doc, nil
}

// Validate parses doc back and checks it holds wantItems entries
func Validate(doc string, wantItems int) (*gofeed.Feed, error) {
	parsed, err := gofeed.NewParser().ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("generated feed does not parse: %w", err)
	}

	if len(parsed.Items) != wantItems {
		return nil, fmt.Errorf("generated feed has %d items, expected %d", len(parsed.Items), wantItems)
	}

	return parsed, nil
}

// SaveToFile writes the feed document to outputPath, replacing any previous run's file
func SaveToFile(doc, outputPath string) error {
	if err := filesystem.EnsureDirectoryExists(outputPath); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := filesystem.WriteFileAtomic(outputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	slog.Info("Feed saved successfully", "path", outputPath)
	return nil
}

// GetMetadata summarizes a list of items
func (g *Generator) GetMetadata(items []*feedtypes.Post) *Metadata {
	metadata := &Metadata{
		Title:     g.Title,
		ItemCount: len(items),
		Updated:   g.now().UTC(),
	}

	for i, item := range items {
		if i == 0 || item.Published.Before(metadata.OldestItem) {
			metadata.OldestItem = item.Published
		}
		if i == 0 || item.Published.After(metadata.NewestItem) {
			metadata.NewestItem = item.Published
		}
	}

	return metadata
}
