// Package providers defines the contract between feed sources and the CLI.
package providers

import (
	"context"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feedtypes"
)

// FeedProvider defines the interface for a feed source.
type FeedProvider interface {
	// FetchItems crawls the source and returns at most limit posts in discovery order.
	FetchItems(ctx context.Context, limit int) ([]*feedtypes.Post, error)
	// GenerateFeed crawls the source and writes the feed to outfile, returning the item count.
	GenerateFeed(ctx context.Context, outfile string) (int, error)
	// Metadata describes the channel the provider generates.
	Metadata() feed.Config
}
