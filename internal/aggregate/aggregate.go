// Package aggregate reduces a batch of per-video analyses into cross-video
// statistics. It is the synchronization barrier of the pipeline: it only ever
// sees the complete set of successful analyses, never a partial batch.
package aggregate

import (
	"math"
	"sort"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const (
	topTopics            = 10 // main_topics cap
	consistencyTopTopics = 3  // topics considered for content consistency
)

// Aggregator computes batch-level pattern statistics.
type Aggregator struct{}

// NewAggregator creates a new pattern aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate computes the PatternAggregate for a batch of successful analyses.
// It fails with core.ErrInsufficientData when the batch is empty, so callers
// can distinguish "no signal" from "zero score".
func (ag *Aggregator) Aggregate(analyses []core.VideoAnalysis) (*core.PatternAggregate, error) {
	if len(analyses) == 0 {
		return nil, core.ErrInsufficientData
	}

	common := make(map[string]int)
	viewsByTag := make(map[string][]int64)
	totalTitleWords := 0
	for _, va := range analyses {
		totalTitleWords += textutil.WordCount(va.Video.Title)
		for _, tag := range va.Title.Patterns {
			common[tag]++
			viewsByTag[tag] = append(viewsByTag[tag], va.Video.ViewCount)
		}
	}

	topics := mainTopics(analyses)

	return &core.PatternAggregate{
		CommonPatterns:      common,
		MainTopics:          topics,
		PerformancePatterns: performancePatterns(viewsByTag),
		AverageTitleLength:  float64(totalTitleWords) / float64(len(analyses)),
		ContentConsistency:  contentConsistency(analyses, topics),
		VideosAnalyzed:      len(analyses),
	}, nil
}

// mainTopics counts significant tokens across titles and descriptions and
// returns the top entries by count, ties broken by first-seen order.
func mainTopics(analyses []core.VideoAnalysis) []core.TopicCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, va := range analyses {
		for _, tok := range textutil.SignificantTokens(va.Video.Title + " " + va.Video.Description) {
			if _, seen := firstSeen[tok]; !seen {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}

	topics := make([]core.TopicCount, 0, len(counts))
	for topic, count := range counts {
		topics = append(topics, core.TopicCount{Topic: topic, Count: count})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return firstSeen[topics[i].Topic] < firstSeen[topics[j].Topic]
	})

	if len(topics) > topTopics {
		topics = topics[:topTopics]
	}
	return topics
}

// performancePatterns computes the mean view count per matched tag. A video
// contributes to every tag group it matched. Entries are ordered by average
// views descending, ties by taxonomy priority.
func performancePatterns(viewsByTag map[string][]int64) []core.PerformancePattern {
	patterns := make([]core.PerformancePattern, 0, len(viewsByTag))
	for tag, views := range viewsByTag {
		var total int64
		for _, v := range views {
			total += v
		}
		patterns = append(patterns, core.PerformancePattern{
			Pattern:    tag,
			VideoCount: len(views),
			AvgViews:   total / int64(len(views)),
		})
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].AvgViews != patterns[j].AvgViews {
			return patterns[i].AvgViews > patterns[j].AvgViews
		}
		return taxonomy.TagPriority(patterns[i].Pattern) < taxonomy.TagPriority(patterns[j].Pattern)
	})
	return patterns
}

// contentConsistency is the percentage of videos whose title or description
// contains at least one of the top-3 topics.
func contentConsistency(analyses []core.VideoAnalysis, topics []core.TopicCount) float64 {
	top := topics
	if len(top) > consistencyTopTopics {
		top = top[:consistencyTopTopics]
	}
	if len(top) == 0 {
		return 0
	}

	covered := 0
	for _, va := range analyses {
		tokens := make(map[string]bool)
		for _, tok := range textutil.SignificantTokens(va.Video.Title + " " + va.Video.Description) {
			tokens[tok] = true
		}
		for _, t := range top {
			if tokens[t.Topic] {
				covered++
				break
			}
		}
	}
	return math.Round(100*float64(covered)/float64(len(analyses))*100) / 100
}

// Metrics computes the batch-level averages restored from the channel report:
// mean scores and raw view/engagement figures.
func (ag *Aggregator) Metrics(analyses []core.VideoAnalysis) (*core.ChannelMetrics, error) {
	if len(analyses) == 0 {
		return nil, core.ErrInsufficientData
	}

	var engagementSum, titleSum, seoSum float64
	var totalViews, totalLikes, totalComments int64
	for _, va := range analyses {
		engagementSum += va.Engagement.Score
		titleSum += float64(va.Title.EffectivenessScore)
		seoSum += float64(va.SEO.Score)
		totalViews += va.Video.ViewCount
		if va.Video.LikeCount != nil {
			totalLikes += *va.Video.LikeCount
		}
		if va.Video.CommentCount != nil {
			totalComments += *va.Video.CommentCount
		}
	}

	n := float64(len(analyses))
	m := &core.ChannelMetrics{
		AverageEngagementScore:    engagementSum / n,
		AverageTitleEffectiveness: titleSum / n,
		AverageSEOScore:           seoSum / n,
		TotalViewsAnalyzed:        totalViews,
		AverageViewsPerVideo:      totalViews / int64(len(analyses)),
	}
	if totalViews > 0 {
		m.OverallEngagementRate = float64(totalLikes+totalComments) / float64(totalViews)
	}
	return m, nil
}
