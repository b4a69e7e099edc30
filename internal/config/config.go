// Package config loads the optional site overrides from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/franvillafanez/ultimasgeek-rss/internal/ultimasgeek"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/filesystem"
	httputil "github.com/franvillafanez/ultimasgeek-rss/pkg/http"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/urlutils"
)

// Config holds the central application configuration
type Config struct {
	Site struct {
		BaseURL     string        `mapstructure:"base_url"`    // Home page to crawl, with trailing slash
		FeedURL     string        `mapstructure:"feed_url"`    // Published location of the feed (atom:link self)
		Title       string        `mapstructure:"title"`       // Channel title
		Description string        `mapstructure:"description"` // Channel description
		UserAgent   string        `mapstructure:"user_agent"`
		Timeout     time.Duration `mapstructure:"timeout"` // Per request, e.g. "25s"
		Limit       int           `mapstructure:"limit"`   // Maximum number of items
		OutputPath  string        `mapstructure:"output_path"`

		RequestInterval time.Duration `mapstructure:"request_interval"` // Minimum spacing between page fetches
	} `mapstructure:"site"`
}

// LoadConfig loads the configuration from a file. A missing file is not an
// error; every value then keeps its built-in default.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	// Relative paths are tried in the working directory first, then next to the executable
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if execPath, err := filesystem.GetDefaultPath(path); err == nil {
				if _, err := os.Stat(execPath); err == nil {
					path = execPath
				}
			}
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("site.base_url", ultimasgeek.SiteURL)
	v.SetDefault("site.feed_url", ultimasgeek.FeedURL)
	v.SetDefault("site.title", ultimasgeek.FeedTitle)
	v.SetDefault("site.description", ultimasgeek.FeedDescription)
	v.SetDefault("site.user_agent", httputil.DefaultUserAgent)
	v.SetDefault("site.timeout", ultimasgeek.DefaultTimeout)
	v.SetDefault("site.limit", ultimasgeek.DefaultMaxItems)
	v.SetDefault("site.output_path", ultimasgeek.DefaultOutfile)
	v.SetDefault("site.request_interval", time.Duration(0))

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if !urlutils.IsValidURL(config.Site.BaseURL) || !strings.HasSuffix(config.Site.BaseURL, "/") {
		return nil, fmt.Errorf("site.base_url must be an absolute URL ending in /, got %q", config.Site.BaseURL)
	}
	if config.Site.Limit <= 0 {
		return nil, fmt.Errorf("site.limit must be positive, got %d", config.Site.Limit)
	}
	if config.Site.RequestInterval < 0 {
		return nil, fmt.Errorf("site.request_interval must not be negative, got %s", config.Site.RequestInterval)
	}
	if config.Site.Timeout <= 0 {
		return nil, fmt.Errorf("site.timeout must be positive, got %s", config.Site.Timeout)
	}

	return &config, nil
}

// ProviderConfig converts the loaded settings into the scraper configuration
func (c *Config) ProviderConfig(format feed.FeedType) *ultimasgeek.Config {
	pc := ultimasgeek.DefaultConfig()

	pc.SiteURL = c.Site.BaseURL
	pc.FeedURL = c.Site.FeedURL
	pc.Title = c.Site.Title
	pc.Description = c.Site.Description
	pc.Limit = c.Site.Limit
	pc.Format = format
	pc.HTTP.Timeout = c.Site.Timeout
	pc.HTTP.UserAgent = c.Site.UserAgent
	pc.HTTP.MinRequestInterval = c.Site.RequestInterval

	return pc
}
