// Package services ties the metadata providers, the report cache and the
// analysis engine together behind one façade shared by the CLI and the HTTP
// API.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aref-vc/youtube-content-analyzer/internal/analyzer"
	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/sentiment"
	"github.com/aref-vc/youtube-content-analyzer/internal/store"
)

// MetadataProvider is the Data API surface the service needs. Satisfied by
// youtube.Client; tests substitute fakes.
type MetadataProvider interface {
	ResolveChannel(ctx context.Context, handleOrID string) (*core.ChannelInfo, string, error)
	ChannelVideos(ctx context.Context, uploadsPlaylistID string, maxVideos int) ([]core.VideoRecord, error)
	SearchVideos(ctx context.Context, query string, maxVideos int) ([]core.VideoRecord, error)
	VideoDetails(ctx context.Context, ids []string) ([]core.VideoRecord, error)
	TopComments(ctx context.Context, videoID string, maxComments int) ([]sentiment.Comment, error)
}

// SingleVideoFetcher is the keyless fallback for one-off video analysis.
// Satisfied by youtube.WebFetcher.
type SingleVideoFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (core.VideoRecord, error)
}

// ReportCache is the persistence surface the service needs. Satisfied by
// store.Store; nil disables caching.
type ReportCache interface {
	GetCachedReport(fingerprint string, maxAge time.Duration) (*core.BatchReport, error)
	CacheReport(fingerprint, scope, subject string, report *core.BatchReport) error
}

// Options tunes one analysis request.
type Options struct {
	MaxVideos     int  // Records fetched per channel or topic request
	Deep          bool // Include hook analysis per video
	WithSentiment bool // Fetch comments and feed the sentiment term
	MaxComments   int  // Top comments fetched per video when WithSentiment is set
	Concurrency   int  // Concurrent per-video workers, 0 = engine default
	SkipCache     bool // Bypass the report cache for this request
}

// AnalysisService orchestrates fetch, cache and engine for every request
// shape.
type AnalysisService struct {
	provider MetadataProvider
	web      SingleVideoFetcher
	cache    ReportCache
	cacheTTL time.Duration
	engine   *analyzer.Engine
	log      *slog.Logger
}

// NewAnalysisService wires a service. provider may be nil when no API key is
// configured; channel and topic analysis then fail with a clear error while
// single-video analysis falls back to the watch page. cache may be nil to
// disable report caching.
func NewAnalysisService(provider MetadataProvider, web SingleVideoFetcher, cache ReportCache, cacheTTL time.Duration) *AnalysisService {
	return &AnalysisService{
		provider: provider,
		web:      web,
		cache:    cache,
		cacheTTL: cacheTTL,
		engine:   analyzer.NewEngine(),
		log:      logger.Get(),
	}
}

// AnalyzeChannel fetches a channel's recent uploads and produces a batch
// report. The second return value reports whether the result came from cache.
func (s *AnalysisService) AnalyzeChannel(ctx context.Context, handleOrID string, opts Options) (*core.BatchReport, bool, error) {
	if s.provider == nil {
		return nil, false, fmt.Errorf("channel analysis requires a YouTube API key")
	}

	fingerprint := store.Fingerprint("channel", handleOrID, opts.MaxVideos, opts.Deep, opts.WithSentiment)
	if report := s.cachedReport(fingerprint, opts); report != nil {
		return report, true, nil
	}

	channel, uploads, err := s.provider.ResolveChannel(ctx, handleOrID)
	if err != nil {
		return nil, false, err
	}

	records, err := s.provider.ChannelVideos(ctx, uploads, opts.MaxVideos)
	if err != nil {
		return nil, false, err
	}

	report, err := s.runBatch(ctx, analyzer.Request{
		Channel:        channel,
		Records:        records,
		Comments:       s.fetchComments(ctx, records, opts),
		Deep:           opts.Deep,
		MaxConcurrency: opts.Concurrency,
	})
	if err != nil {
		return nil, false, err
	}

	s.storeReport(fingerprint, "channel", handleOrID, report)
	return report, false, nil
}

// AnalyzeTopic searches for videos matching a query and produces a batch
// report.
func (s *AnalysisService) AnalyzeTopic(ctx context.Context, query string, opts Options) (*core.BatchReport, bool, error) {
	if s.provider == nil {
		return nil, false, fmt.Errorf("topic analysis requires a YouTube API key")
	}

	fingerprint := store.Fingerprint("topic", query, opts.MaxVideos, opts.Deep, opts.WithSentiment)
	if report := s.cachedReport(fingerprint, opts); report != nil {
		return report, true, nil
	}

	records, err := s.provider.SearchVideos(ctx, query, opts.MaxVideos)
	if err != nil {
		return nil, false, err
	}

	report, err := s.runBatch(ctx, analyzer.Request{
		Query:          query,
		Records:        records,
		Comments:       s.fetchComments(ctx, records, opts),
		Deep:           opts.Deep,
		MaxConcurrency: opts.Concurrency,
	})
	if err != nil {
		return nil, false, err
	}

	s.storeReport(fingerprint, "topic", query, report)
	return report, false, nil
}

// AnalyzeVideo analyzes a single video by URL or ID. The Data API is used
// when available, the watch-page fallback otherwise.
func (s *AnalysisService) AnalyzeVideo(ctx context.Context, videoID string, opts Options) (core.VideoAnalysis, error) {
	var (
		rec      core.VideoRecord
		comments []sentiment.Comment
	)

	switch {
	case s.provider != nil:
		records, err := s.provider.VideoDetails(ctx, []string{videoID})
		if err != nil {
			return core.VideoAnalysis{}, err
		}
		if len(records) == 0 {
			return core.VideoAnalysis{}, fmt.Errorf("video not found: %s", videoID)
		}
		rec = records[0]

		if opts.WithSentiment {
			comments, err = s.provider.TopComments(ctx, videoID, opts.MaxComments)
			if err != nil {
				s.log.Warn("Comments unavailable", "video_id", videoID, "error", err)
			}
		}

	case s.web != nil:
		var err error
		rec, err = s.web.FetchVideo(ctx, videoID)
		if err != nil {
			return core.VideoAnalysis{}, err
		}

	default:
		return core.VideoAnalysis{}, fmt.Errorf("no metadata provider configured")
	}

	return s.engine.AnalyzeVideo(rec, comments, opts.Deep)
}

// AnalyzeRecords runs the engine over caller-supplied records, bypassing both
// providers and the cache. Used by the HTTP API's raw-records endpoint.
func (s *AnalysisService) AnalyzeRecords(ctx context.Context, records []core.VideoRecord, opts Options) (*core.BatchReport, error) {
	return s.runBatch(ctx, analyzer.Request{
		Records:        records,
		Deep:           opts.Deep,
		MaxConcurrency: opts.Concurrency,
	})
}

// DetectPatterns scores a bare title without any fetching.
func (s *AnalysisService) DetectPatterns(title string, deep bool) (core.VideoAnalysis, error) {
	return s.engine.AnalyzeVideo(core.VideoRecord{ID: "title-only", Title: title}, nil, deep)
}

func (s *AnalysisService) runBatch(ctx context.Context, req analyzer.Request) (*core.BatchReport, error) {
	return s.engine.AnalyzeBatch(ctx, req)
}

// fetchComments pulls top comments per record when sentiment is requested.
// Per-video failures degrade to no sentiment for that video.
func (s *AnalysisService) fetchComments(ctx context.Context, records []core.VideoRecord, opts Options) map[string][]sentiment.Comment {
	if !opts.WithSentiment || s.provider == nil {
		return nil
	}

	comments := make(map[string][]sentiment.Comment, len(records))
	for _, rec := range records {
		found, err := s.provider.TopComments(ctx, rec.ID, opts.MaxComments)
		if err != nil {
			s.log.Warn("Comments unavailable", "video_id", rec.ID, "error", err)
			continue
		}
		if len(found) > 0 {
			comments[rec.ID] = found
		}
	}
	return comments
}

func (s *AnalysisService) cachedReport(fingerprint string, opts Options) *core.BatchReport {
	if s.cache == nil || opts.SkipCache {
		return nil
	}
	report, err := s.cache.GetCachedReport(fingerprint, s.cacheTTL)
	if err != nil {
		s.log.Warn("Cache lookup failed", "error", err)
		return nil
	}
	if report != nil {
		s.log.Info("Serving cached report", "report_id", report.ID)
	}
	return report
}

func (s *AnalysisService) storeReport(fingerprint, scope, subject string, report *core.BatchReport) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheReport(fingerprint, scope, subject, report); err != nil {
		s.log.Warn("Failed to cache report", "error", err)
	}
}
