// Package ultimasgeek turns the Últimas Geek home page into an RSS feed by
// guessing which links are posts and scraping metadata from each post page.
package ultimasgeek

import (
	"time"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	httputil "github.com/franvillafanez/ultimasgeek-rss/pkg/http"
)

const (
	// SiteURL is the home page that is crawled; candidate posts must live under it.
	SiteURL = "https://ultimasgeek.com/"

	// FeedURL is where the generated feed is published (GitHub Pages).
	FeedURL = "https://franvillafanez.github.io/ultimasgeek-rss/rss.xml"

	FeedTitle       = "Últimas Geek"
	FeedDescription = "Feed generado automáticamente desde la home"

	DefaultOutfile  = "rss.xml"
	DefaultMaxItems = 25
	DefaultTimeout  = 25 * time.Second

	// MaxDescriptionLength is counted in characters, not bytes.
	MaxDescriptionLength = 300
)

// Pages under the site that are never articles.
var blockedSlugs = map[string]struct{}{
	"lo-ultimo":   {},
	"nota-de-voz": {},
	"contacto":    {},
	"about":       {},
}

// Taxonomy, pagination and CMS paths.
var blockedPrefixes = []string{
	"category/",
	"tag/",
	"page/",
	"author/",
	"wp-",
}

var assetExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".svg", ".pdf"}

// Config holds the provider settings. DefaultConfig mirrors the constants above.
type Config struct {
	SiteURL     string
	FeedURL     string
	Title       string
	Description string
	Limit       int
	Format      feed.FeedType
	HTTP        *httputil.ClientConfig
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	httpConfig := httputil.DefaultConfig()
	httpConfig.Timeout = DefaultTimeout

	return &Config{
		SiteURL:     SiteURL,
		FeedURL:     FeedURL,
		Title:       FeedTitle,
		Description: FeedDescription,
		Limit:       DefaultMaxItems,
		Format:      feed.RSS,
		HTTP:        httpConfig,
	}
}
