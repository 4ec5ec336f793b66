// Package analyzer orchestrates the per-video scorers and the batch-level
// aggregation, metrics and insight stages into one report.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aref-vc/youtube-content-analyzer/internal/aggregate"
	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/engagement"
	"github.com/aref-vc/youtube-content-analyzer/internal/hooks"
	"github.com/aref-vc/youtube-content-analyzer/internal/insights"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/seo"
	"github.com/aref-vc/youtube-content-analyzer/internal/sentiment"
	"github.com/aref-vc/youtube-content-analyzer/internal/titles"
)

const defaultMaxConcurrency = 5

// Request describes one analysis batch. Exactly one of Channel or Query is
// usually set, but the engine does not enforce that; both feed straight into
// the report header.
type Request struct {
	Channel        *core.ChannelInfo              // Channel the records came from, if channel-scoped
	Query          string                         // Search query the records came from, if topic-scoped
	Records        []core.VideoRecord             // Raw records to analyze
	Comments       map[string][]sentiment.Comment // Top comments per video ID, optional
	Deep           bool                           // Include hook analysis per video
	MaxConcurrency int                            // Concurrent per-video workers, 0 = default
}

// Engine wires the scorers together. All of them are pure, so a single Engine
// is safe for concurrent use.
type Engine struct {
	detector   *titles.Detector
	scorer     *titles.Scorer
	hooks      *hooks.Analyzer
	seo        *seo.Analyzer
	sentiment  *sentiment.Analyzer
	predictor  *engagement.Predictor
	aggregator *aggregate.Aggregator
	generator  *insights.Generator
	log        *slog.Logger
}

// NewEngine creates an analysis engine with all stages wired.
func NewEngine() *Engine {
	return &Engine{
		detector:   titles.NewDetector(),
		scorer:     titles.NewScorer(),
		hooks:      hooks.NewAnalyzer(),
		seo:        seo.NewAnalyzer(),
		sentiment:  sentiment.NewAnalyzer(),
		predictor:  engagement.NewPredictor(),
		aggregator: aggregate.NewAggregator(),
		generator:  insights.NewGenerator(),
		log:        logger.Get(),
	}
}

// AnalyzeBatch validates the records, analyzes each valid one concurrently,
// then runs aggregation, metrics and insight synthesis over the successful
// analyses. Per-record failures are counted and skipped, never fatal; the
// only batch-level error is context cancellation. A batch where every record
// was skipped yields a limited report with nil Aggregate, Metrics and
// Insights.
func (e *Engine) AnalyzeBatch(ctx context.Context, req Request) (*core.BatchReport, error) {
	report := &core.BatchReport{
		ID:          uuid.NewString(),
		Channel:     req.Channel,
		Query:       req.Query,
		GeneratedAt: time.Now().UTC(),
	}

	valid := make([]core.VideoRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		if err := validateRecord(rec); err != nil {
			e.log.Warn("Skipping record", "video_id", rec.ID, "error", err)
			report.RecordsSkipped++
			continue
		}
		valid = append(valid, rec)
	}

	maxViews := maxViewCount(valid)

	concurrency := req.MaxConcurrency
	if concurrency <= 0 {
		concurrency = defaultMaxConcurrency
	}

	type indexed struct {
		index    int
		analysis core.VideoAnalysis
	}

	var (
		results []indexed
		skipped int
		sem     = make(chan struct{}, concurrency)
		wg      sync.WaitGroup
		mu      sync.Mutex
	)

	for i, rec := range valid {
		select {
		case <-ctx.Done():
			e.log.Warn("Batch analysis cancelled", "reason", ctx.Err())
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(index int, rec core.VideoRecord) {
			defer wg.Done()
			defer func() { <-sem }()

			va, err := e.analyzeOne(rec, req.Comments[rec.ID], req.Deep, historicalTerm(rec, maxViews, len(valid)))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.log.Warn("Video analysis failed", "video_id", rec.ID, "error", err)
				skipped++
				return
			}
			results = append(results, indexed{index: index, analysis: va})
		}(i, rec)
	}

	wg.Wait()

	// Engagement score descending, original record order on ties.
	sort.Slice(results, func(i, j int) bool {
		if results[i].analysis.Engagement.Score != results[j].analysis.Engagement.Score {
			return results[i].analysis.Engagement.Score > results[j].analysis.Engagement.Score
		}
		return results[i].index < results[j].index
	})

	report.RecordsSkipped += skipped
	report.VideosAnalyzed = len(results)
	report.Videos = make([]core.VideoAnalysis, 0, len(results))
	for _, r := range results {
		report.Videos = append(report.Videos, r.analysis)
	}

	if report.VideosAnalyzed == 0 {
		e.log.Warn("No record produced a valid analysis",
			"records", len(req.Records), "skipped", report.RecordsSkipped)
		return report, nil
	}

	agg, err := e.aggregator.Aggregate(report.Videos)
	if err != nil {
		return nil, err
	}
	metrics, err := e.aggregator.Metrics(report.Videos)
	if err != nil {
		return nil, err
	}
	report.Aggregate = agg
	report.Metrics = metrics
	report.Insights = e.generator.Generate(agg, report.Videos)

	e.log.Info("Batch analysis completed",
		"report_id", report.ID,
		"analyzed", report.VideosAnalyzed,
		"skipped", report.RecordsSkipped,
	)
	return report, nil
}

// AnalyzeVideo analyzes one record outside of batch context. The historical
// term is absent, so the engagement weights redistribute over the remaining
// terms.
func (e *Engine) AnalyzeVideo(rec core.VideoRecord, comments []sentiment.Comment, deep bool) (core.VideoAnalysis, error) {
	if err := validateRecord(rec); err != nil {
		return core.VideoAnalysis{}, err
	}
	return e.analyzeOne(rec, comments, deep, nil)
}

// analyzeOne runs every per-video stage for a single validated record.
func (e *Engine) analyzeOne(rec core.VideoRecord, comments []sentiment.Comment, deep bool, historical *float64) (core.VideoAnalysis, error) {
	patterns := e.detector.Detect(rec.Title)

	title, err := e.scorer.Score(rec.Title, patterns)
	if err != nil {
		return core.VideoAnalysis{}, err
	}

	seoAnalysis, err := e.seo.Analyze(rec.Title, rec.Description)
	if err != nil {
		return core.VideoAnalysis{}, err
	}

	var hook *core.HookAnalysis
	if deep {
		h, err := e.hooks.Analyze(rec.Title)
		if err != nil {
			return core.VideoAnalysis{}, err
		}
		hook = &h
	}

	var sentimentScore *float64
	if len(comments) > 0 {
		summary, err := e.sentiment.AnalyzeComments(comments)
		switch {
		case errors.Is(err, core.ErrInsufficientData):
			// Comments were all blank; treat sentiment as absent.
		case err != nil:
			return core.VideoAnalysis{}, err
		default:
			sentimentScore = &summary.Score
		}
	}

	prediction, err := e.predictor.Predict(engagement.Inputs{
		TitleScore: float64(title.EffectivenessScore),
		SEOScore:   float64(seoAnalysis.Score),
		Sentiment:  sentimentScore,
		Historical: historical,
	})
	if err != nil {
		return core.VideoAnalysis{}, err
	}

	return core.VideoAnalysis{
		Video:      rec,
		Title:      title,
		Hook:       hook,
		SEO:        seoAnalysis,
		Engagement: prediction,
	}, nil
}

// validateRecord rejects records the scorers cannot produce meaningful output
// for. A blank title is an exclusion, not a corruption, but it is still
// counted as a skip.
func validateRecord(rec core.VideoRecord) error {
	if rec.ID == "" {
		return &core.MalformedRecordError{VideoID: rec.ID, Field: "id"}
	}
	if rec.Title == "" {
		return core.ErrEmptyTitle
	}
	if rec.ViewCount < 0 {
		return &core.MalformedRecordError{VideoID: rec.ID, Field: "view_count"}
	}
	return nil
}

func maxViewCount(records []core.VideoRecord) int64 {
	var max int64
	for _, rec := range records {
		if rec.ViewCount > max {
			max = rec.ViewCount
		}
	}
	return max
}

// historicalTerm normalizes a video's views against the batch maximum. It is
// absent for single-video batches and for batches with no views at all, so
// the predictor redistributes its weight instead of reading a meaningless
// zero.
func historicalTerm(rec core.VideoRecord, maxViews int64, batchSize int) *float64 {
	if batchSize < 2 || maxViews == 0 {
		return nil
	}
	v := 100 * float64(rec.ViewCount) / float64(maxViews)
	return &v
}
