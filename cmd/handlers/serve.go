package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/server"
	"github.com/aref-vc/youtube-content-analyzer/internal/services"
	"github.com/aref-vc/youtube-content-analyzer/internal/store"
	"github.com/aref-vc/youtube-content-analyzer/internal/youtube"
)

// NewServeCmd creates the serve command for starting the HTTP API
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis API",
		Long: `Start the ytca HTTP server.

Endpoints:
  POST /api/channel/analyze   analyze a channel's uploads
  POST /api/video/analyze     analyze one video
  POST /api/patterns/detect   score a bare title
  POST /api/search            analyze the top videos for a topic
  GET  /healthz               health check

Examples:
  ytca serve
  ytca serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8200)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 127.0.0.1)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.Get()

	cfg := config.Get()
	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	var provider services.MetadataProvider
	if config.HasAPIKey() {
		client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, cfg.YouTube.Region)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		provider = client
	} else {
		log.Warn("No YouTube API key configured; channel and topic endpoints will fail")
	}

	web := youtube.NewWebFetcher(providerTimeout(cfg.YouTube.Timeout))

	var cacheStore *store.Store
	if s, err := store.NewStore(cfg.Cache.Directory); err != nil {
		log.Warn("Report cache unavailable", "error", err)
	} else {
		cacheStore = s
		defer func() {
			if err := cacheStore.Close(); err != nil {
				log.Error("Failed to close cache store", "error", err)
			}
		}()
	}

	var cache services.ReportCache
	if cacheStore != nil {
		cache = cacheStore
	}
	service := services.NewAnalysisService(provider, web, cache, config.CacheTTL())

	srv := server.New(service, cacheStore, serverCfg, cfg.Analysis)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("Received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		log.Info("Context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
