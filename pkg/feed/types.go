package feed

import "time"

// Config describes the channel a feed is generated for
type Config struct {
	Title       string
	Link        string
	SelfLink    string // where the feed document itself is published
	Description string
}

// FeedType represents the type of feed to generate
type FeedType string

const (
	RSS  FeedType = "rss"
	Atom FeedType = "atom"
)

// RFC2822 is the date layout used by RSS 2.0 (pubDate, lastBuildDate).
const RFC2822 = time.RFC1123Z

// Generator builds feed documents for a channel
type Generator struct {
	Config
	now func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(config Config) *Generator {
	return &Generator{
		Config: config,
		now:    time.Now,
	}
}

// Metadata contains metadata about a generated feed
type Metadata struct {
	Title      string
	ItemCount  int
	Updated    time.Time
	OldestItem time.Time
	NewestItem time.Time
}
