package ultimasgeek

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
	httputil "github.com/franvillafanez/ultimasgeek-rss/pkg/http"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/providers"
)

// Provider implements the FeedProvider interface for the Últimas Geek home page
type Provider struct {
	config    *Config
	fetcher   Fetcher
	extractor *Extractor
	generator *feed.Generator
}

var _ providers.FeedProvider = (*Provider)(nil)

// NewProvider creates a provider that fetches pages over HTTP
func NewProvider(config *Config) *Provider {
	if config == nil {
		config = DefaultConfig()
	}
	return newProvider(config, httputil.NewClient(config.HTTP))
}

func newProvider(config *Config, fetcher Fetcher) *Provider {
	return &Provider{
		config:    config,
		fetcher:   fetcher,
		extractor: NewExtractor(fetcher),
		generator: feed.NewGenerator(metadataFor(config)),
	}
}

func metadataFor(config *Config) feed.Config {
	return feed.Config{
		Title:       config.Title,
		Link:        config.SiteURL,
		SelfLink:    config.FeedURL,
		Description: config.Description,
	}
}

// Metadata implements the FeedProvider interface
func (p *Provider) Metadata() feed.Config {
	return metadataFor(p.config)
}

// FetchItems implements the FeedProvider interface.
// A failure to fetch the home page is returned; failures on individual
// posts only drop that post.
func (p *Provider) FetchItems(ctx context.Context, limit int) ([]*feedtypes.Post, error) {
	if limit <= 0 {
		limit = p.config.Limit
	}

	slog.Debug("Fetching home page", "url", p.config.SiteURL)
	homeHTML, err := p.fetcher.FetchText(ctx, p.config.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch home page: %w", err)
	}

	candidates, err := ExtractPostURLs(homeHTML, p.config.SiteURL)
	if err != nil {
		return nil, err
	}

	items := make([]*feedtypes.Post, 0, min(limit, len(candidates)))
	seen := make(map[string]struct{})

	for _, candidate := range candidates {
		if len(items) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		post := p.extractor.ExtractPost(ctx, candidate)
		if post == nil {
			continue
		}

		key := post.DedupKey()
		if _, dup := seen[key]; dup {
			slog.Debug("Dropping duplicate post", "url", post.Link, "title", post.Title)
			continue
		}
		seen[key] = struct{}{}

		items = append(items, post)
	}

	slog.Info("Extracted posts", "candidates", len(candidates), "items", len(items))
	return items, nil
}

// GenerateFeed implements the FeedProvider interface
func (p *Provider) GenerateFeed(ctx context.Context, outfile string) (int, error) {
	items, err := p.FetchItems(ctx, p.config.Limit)
	if err != nil {
		return 0, err
	}

	doc, err := p.generator.Generate(items, p.config.Format)
	if err != nil {
		return 0, fmt.Errorf("failed to build feed: %w", err)
	}

	if _, err := feed.Validate(doc, len(items)); err != nil {
		return 0, err
	}

	if err := feed.SaveToFile(doc, outfile); err != nil {
		return 0, err
	}

	metadata := p.generator.GetMetadata(items)
	slog.Info("RSS feed saved", "count", metadata.ItemCount, "filename", outfile,
		"oldest", metadata.OldestItem, "newest", metadata.NewestItem)

	return len(items), nil
}
