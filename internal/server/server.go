// Package server exposes the analysis service over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/services"
	"github.com/aref-vc/youtube-content-analyzer/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	service    *services.AnalysisService
	cache      *store.Store
	config     config.Server
	defaults   config.Analysis
	log        *slog.Logger
}

// New creates a new HTTP server instance. cache may be nil when caching is
// disabled; the cache endpoints then return 404.
func New(service *services.AnalysisService, cache *store.Store, cfg config.Server, defaults config.Analysis) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		service:  service,
		cache:    cache,
		config:   cfg,
		defaults: defaults,
		log:      logger.Get(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  parseDuration(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: parseDuration(cfg.WriteTimeout, 60*time.Second),
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(parseDuration(s.config.RequestTimeout, 120*time.Second)))

	if len(s.config.AllowedOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/channel/analyze", s.handleAnalyzeChannel)
		r.Post("/video/analyze", s.handleAnalyzeVideo)
		r.Post("/patterns/detect", s.handleDetectPatterns)
		r.Post("/search", s.handleSearch)

		if s.cache != nil {
			r.Get("/cache/stats", s.handleCacheStats)
			r.With(s.requireAdminAPI).Delete("/cache", s.handleClearCache)
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}

// parseDuration handles config duration strings already validated at load
// time; broken values fall back rather than panic.
func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
