// Package main provides the CLI entry point for ultimasgeek-rss.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/franvillafanez/ultimasgeek-rss/internal/config"
	"github.com/franvillafanez/ultimasgeek-rss/internal/ultimasgeek"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/feed"
	"github.com/franvillafanez/ultimasgeek-rss/pkg/preview"
)

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Generate struct {
		Outfile string `help:"Output file path (default: site.output_path, rss.xml)" short:"o"`
		Limit   int    `help:"Maximum number of items (default: site.limit, 25)"`
		Format  string `help:"Feed format" enum:"rss,atom" default:"rss"`
	} `cmd:"" default:"withargs" help:"Generate the feed from the Últimas Geek home page."`

	Preview struct {
		Limit int `help:"Maximum number of items to fetch (default: site.limit, 25)"`
		Index int `help:"Output XML for specific item index (0-based) to stdout" default:"-1"`
	} `cmd:"" help:"Preview extracted posts interactively."`
}

func main() {
	// Parse CLI with Kong YAML configuration file loading
	ctx := kong.Parse(&CLI,
		kong.Name("ultimasgeek-rss"),
		kong.Description("Builds an RSS feed for ultimasgeek.com from its home page."),
		kong.Configuration(kongyaml.Loader, "config.yaml", "~/.ultimasgeek-rss/config.yaml"),
	)

	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "path", CLI.Config, "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "generate":
		outfile := CLI.Generate.Outfile
		if outfile == "" {
			outfile = cfg.Site.OutputPath
		}
		if CLI.Generate.Limit > 0 {
			cfg.Site.Limit = CLI.Generate.Limit
		}
		generateFeed(cfg.ProviderConfig(feed.FeedType(CLI.Generate.Format)), outfile)

	case "preview":
		if CLI.Preview.Limit > 0 {
			cfg.Site.Limit = CLI.Preview.Limit
		}
		previewFeed(cfg.ProviderConfig(feed.RSS), CLI.Preview.Index)

	default:
		panic(ctx.Command())
	}
}

// generateFeed crawls the site and writes the feed to outfile
func generateFeed(providerConfig *ultimasgeek.Config, outfile string) {
	slog.Debug("Generating feed", "site", providerConfig.SiteURL, "limit", providerConfig.Limit, "format", providerConfig.Format)

	provider := ultimasgeek.NewProvider(providerConfig)

	count, err := provider.GenerateFeed(context.Background(), outfile)
	if err != nil {
		slog.Error("Failed to generate feed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("OK: generé %s con %d items\n", outfile, count)
}

// previewFeed crawls the site and shows the posts without writing anything
func previewFeed(providerConfig *ultimasgeek.Config, index int) {
	slog.Debug("Previewing feed", "site", providerConfig.SiteURL, "limit", providerConfig.Limit)

	provider := ultimasgeek.NewProvider(providerConfig)

	items, err := provider.FetchItems(context.Background(), providerConfig.Limit)
	if err != nil {
		slog.Error("Failed to fetch items", "error", err)
		os.Exit(1)
	}

	generator := feed.NewGenerator(provider.Metadata())

	// If index is specified, output XML directly to stdout
	if index >= 0 {
		if index >= len(items) {
			slog.Error("Index out of range", "index", index, "total", len(items))
			os.Exit(1)
		}
		fmt.Println(preview.FormatXMLItem(items[index], generator))
		return
	}

	if err := preview.Run(items, generator); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}
