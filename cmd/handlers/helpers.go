package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/render"
	"github.com/aref-vc/youtube-content-analyzer/internal/services"
	"github.com/aref-vc/youtube-content-analyzer/internal/store"
	"github.com/aref-vc/youtube-content-analyzer/internal/youtube"
)

// buildService wires the analysis service from configuration. The returned
// cleanup closes the cache store; callers defer it. The Data API client is
// only built when an API key is configured, and the report cache is skipped
// when withCache is false.
func buildService(ctx context.Context, withCache bool) (*services.AnalysisService, func(), error) {
	cfg := config.Get()

	var provider services.MetadataProvider
	if config.HasAPIKey() {
		client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, cfg.YouTube.Region)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create YouTube client: %w", err)
		}
		provider = client
	}

	web := youtube.NewWebFetcher(providerTimeout(cfg.YouTube.Timeout))

	var (
		cache   services.ReportCache
		cleanup = func() {}
	)
	if withCache {
		cacheStore, err := store.NewStore(cfg.Cache.Directory)
		if err != nil {
			logger.Warn("Report cache unavailable", "error", err)
		} else {
			cache = cacheStore
			cleanup = func() {
				if err := cacheStore.Close(); err != nil {
					logger.Error("Failed to close cache store", err)
				}
			}
		}
	}

	return services.NewAnalysisService(provider, web, cache, config.CacheTTL()), cleanup, nil
}

func providerTimeout(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// defaultOptions builds request options from config plus the common flags.
func defaultOptions(cmd *cobra.Command) services.Options {
	cfg := config.Get()

	maxVideos, _ := cmd.Flags().GetInt("max-videos")
	if maxVideos <= 0 {
		maxVideos = cfg.Analysis.MaxVideos
	}
	deep, _ := cmd.Flags().GetBool("deep")
	withSentiment, _ := cmd.Flags().GetBool("sentiment")
	skipCache, _ := cmd.Flags().GetBool("no-cache")

	return services.Options{
		MaxVideos:     maxVideos,
		Deep:          deep || cfg.Analysis.Deep,
		WithSentiment: withSentiment || cfg.Analysis.CommentSentiment,
		MaxComments:   cfg.YouTube.MaxComments,
		Concurrency:   cfg.Analysis.MaxConcurrency,
		SkipCache:     skipCache,
	}
}

// printReport writes the batch report as JSON or rendered text per the --json
// flag.
func printReport(cmd *cobra.Command, report *core.BatchReport, cached bool) error {
	if cached {
		fmt.Fprintln(os.Stderr, "(served from cache)")
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printJSON(report)
	}

	fmt.Println(render.Report(report))
	return nil
}

// printAnalysis writes a single-video analysis as JSON or rendered text.
func printAnalysis(cmd *cobra.Command, analysis core.VideoAnalysis) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printJSON(analysis)
	}

	fmt.Print(render.Video(1, analysis))
	return nil
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
