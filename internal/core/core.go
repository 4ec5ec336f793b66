package core

import "time"

// VideoRecord holds the raw metadata for a single video as delivered by the
// metadata provider. Records are owned by the caller and are read-only to the
// analysis engine.
type VideoRecord struct {
	ID           string     `json:"id"`            // Provider-assigned video identifier
	Title        string     `json:"title"`         // Video title text
	Description  string     `json:"description"`   // Video description text (may be empty)
	ViewCount    int64      `json:"view_count"`    // Total view count
	LikeCount    *int64     `json:"like_count"`    // Like count, nil when the provider withholds it
	CommentCount *int64     `json:"comment_count"` // Comment count, nil when unavailable
	Duration     *int64     `json:"duration"`      // Duration in seconds, nil when unavailable
	ChannelName  string     `json:"channel_name"`  // Name of the publishing channel
	PublishedAt  *time.Time `json:"published_at"`  // Publish timestamp, nil when unavailable
}

// ChannelInfo describes the channel a batch of records was fetched from.
type ChannelInfo struct {
	ID              string `json:"id"`               // Provider-assigned channel identifier
	Name            string `json:"name"`             // Channel display name
	URL             string `json:"url"`              // Canonical channel URL
	SubscriberCount int64  `json:"subscriber_count"` // Subscriber count (0 when hidden)
	VideoCount      int64  `json:"video_count"`      // Total uploads reported by the provider
}

// Subscores holds the four independent components of a title effectiveness
// score, each normalized to [0,100].
type Subscores struct {
	Pattern   float64 `json:"pattern"`    // Distinct matched pattern tags, weighted and capped
	Length    float64 `json:"length"`     // Peaked word-count score, maximal at 6-12 words
	PowerWord float64 `json:"power_word"` // Power-word lexicon coverage, scaled and capped
	Structure float64 `json:"structure"`  // Numeral / question mark / bracket bonuses
}

// TitleAnalysis is the output of the title pattern detector and effectiveness
// scorer for a single title.
type TitleAnalysis struct {
	EffectivenessScore int       `json:"effectiveness_score"` // Weighted sum of subscores, 0-100
	Patterns           []string  `json:"patterns"`            // Matched taxonomy tags in priority order
	Subscores          Subscores `json:"subscores"`           // Component scores behind the headline number
	Suggestions        []string  `json:"suggestions"`         // Improvement suggestions, largest gap first, max 3
}

// EmotionHit records an emotion category triggered inside a hook, together
// with the first lexicon word that triggered it.
type EmotionHit struct {
	Emotion     string `json:"emotion"`      // Emotion category from the taxonomy lexicon
	TriggerWord string `json:"trigger_word"` // Leftmost word in the hook that matched the category
}

// HookAnalysis describes the opening span of a title and its attention
// signals.
type HookAnalysis struct {
	HookText           string       `json:"hook_text"`                // Leading window of the title
	EffectivenessScore float64      `json:"hook_effectiveness_score"` // Weighted signal sum, 0-100, 2-decimal precision
	HasPowerHook       bool         `json:"has_power_hook"`           // True when any attention signal fired
	EmotionsTriggered  []EmotionHit `json:"emotions_triggered"`       // One entry per distinct emotion category, hook order
	Takeaways          []string     `json:"takeaways"`                // Signal explanations by priority, max 3
}

// SEOAnalysis scores a description's discoverability signals.
type SEOAnalysis struct {
	Score          int      `json:"seo_score"`       // Weighted sum of the subscores below, 0-100
	KeywordScore   float64  `json:"keyword_score"`   // Title keyword coverage in the description
	CTAScore       float64  `json:"cta_score"`       // Call-to-action phrase presence
	LengthScore    float64  `json:"length_score"`    // Word-count adequacy
	TimestampScore float64  `json:"timestamp_score"` // Presence of mm:ss chapter markers
	HasTimestamps  bool     `json:"has_timestamps"`  // True when an mm:ss token was found
	CTAsFound      []string `json:"ctas_found"`      // Matched call-to-action phrases, lexicon order
	HashtagCount   int      `json:"hashtag_count"`   // Number of #tags in the description
	LinkCount      int      `json:"link_count"`      // Number of http(s) links in the description
	Suggestions    []string `json:"suggestions"`     // Improvement suggestions
}

// PerformanceTier is the discrete label derived from a continuous engagement
// score via fixed thresholds.
type PerformanceTier string

const (
	TierViralPotential  PerformanceTier = "Viral Potential"
	TierHighPerformer   PerformanceTier = "High Performer"
	TierAverage         PerformanceTier = "Average"
	TierUnderperforming PerformanceTier = "Underperforming"
)

// EngagementPrediction fuses the per-video signals into a single score with a
// tier label and factor lists.
type EngagementPrediction struct {
	Score           float64         `json:"engagement_score"` // Weighted fusion of the input terms, 0-100
	Tier            PerformanceTier `json:"performance_tier"` // Threshold ladder label, lower bound inclusive
	PositiveFactors []string        `json:"positive_factors"` // Catalog strings for terms above their threshold
	NegativeFactors []string        `json:"negative_factors"` // Catalog strings for terms below their threshold
}

// VideoAnalysis bundles every per-video result the engine produces for one
// record.
type VideoAnalysis struct {
	Video      VideoRecord          `json:"video"`
	Title      TitleAnalysis        `json:"title_analysis"`
	Hook       *HookAnalysis        `json:"hook_analysis,omitempty"` // Present only for deep analysis requests
	SEO        SEOAnalysis          `json:"seo_analysis"`
	Engagement EngagementPrediction `json:"engagement_prediction"`
}

// TopicCount is a topic token with its occurrence count across a batch.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// PerformancePattern correlates a pattern tag with the mean view count of the
// videos that matched it.
type PerformancePattern struct {
	Pattern    string `json:"pattern"`     // Taxonomy tag
	VideoCount int    `json:"video_count"` // Videos in the batch that matched the tag
	AvgViews   int64  `json:"avg_views"`   // Arithmetic mean view count across those videos
}

// PatternAggregate holds the cross-video statistics for one analyzed batch.
type PatternAggregate struct {
	CommonPatterns      map[string]int       `json:"common_patterns"`      // Tag -> occurrence count across the batch
	MainTopics          []TopicCount         `json:"main_topics"`          // Top topics by count, first-seen tie-break
	PerformancePatterns []PerformancePattern `json:"performance_patterns"` // One entry per tag with >=1 matching video
	AverageTitleLength  float64              `json:"average_title_length"` // Mean title word count
	ContentConsistency  float64              `json:"content_consistency"`  // Topical concentration, 0-100
	VideosAnalyzed      int                  `json:"videos_analyzed"`      // Count of records that produced a valid analysis
}

// ChannelMetrics summarizes scoring and raw-metric averages over a batch.
type ChannelMetrics struct {
	AverageEngagementScore    float64 `json:"average_engagement_score"`
	AverageTitleEffectiveness float64 `json:"average_title_effectiveness"`
	AverageSEOScore           float64 `json:"average_seo_score"`
	TotalViewsAnalyzed        int64   `json:"total_views_analyzed"`
	AverageViewsPerVideo      int64   `json:"average_views_per_video"`
	OverallEngagementRate     float64 `json:"overall_engagement_rate"` // (likes+comments)/views across the batch
}

// ContentTemplate is one ready-to-use title template from the taxonomy's
// template library.
type ContentTemplate struct {
	Name         string   `json:"name"`
	FillIn       string   `json:"fill_in"`      // Blank-style formula to copy and complete
	Instructions string   `json:"instructions"` // How to fill the blanks
	Examples     []string `json:"examples"`
}

// ContentTemplates groups the template-derived insight outputs.
type ContentTemplates struct {
	ReadyToUseTemplates []ContentTemplate `json:"ready_to_use_templates"` // Selected by batch pattern frequency, max 3
	CopyPasteFormulas   []string          `json:"copy_paste_formulas"`    // Fill-in formulas of the selected templates, max 5
	TitleStarters       []string          `json:"title_starters"`         // Leading bigrams of the top videos, deduped, max 8
}

// ViralRecipe is a named content formula instantiated with a concrete example
// from the analyzed batch.
type ViralRecipe struct {
	Name              string            `json:"name"`
	Formula           string            `json:"formula"`
	ConcreteExample   map[string]string `json:"concrete_example"` // Populated from the best matching video
	EmotionalTriggers []string          `json:"emotional_triggers"`
	HowToApply        string            `json:"how_to_apply"`
	ExpectedCTR       string            `json:"expected_ctr"` // Static expected click-through range
}

// QuickWin is a single actionable improvement derived from an unmet scoring
// threshold on a top video.
type QuickWin struct {
	Tip     string `json:"tip"`
	Why     string `json:"why"`
	Example string `json:"example"` // Title of the video the tip was derived from
	Impact  string `json:"impact"`  // Documented impact range from the catalog
}

// ViralRecipes groups the recipe-derived insight outputs.
type ViralRecipes struct {
	Recipes   []ViralRecipe `json:"viral_recipes"` // Selected by batch pattern frequency, max 3
	QuickWins []QuickWin    `json:"quick_wins"`    // Deduped by tip, max 5
}

// ViralInsights is the synthesis stage output for a batch.
type ViralInsights struct {
	ContentTemplates ContentTemplates `json:"content_templates"`
	ViralRecipes     ViralRecipes     `json:"viral_recipes"`
}

// SentimentSummary aggregates comment sentiment for one video. It is produced
// by the sentiment collaborator, not by the scoring engine.
type SentimentSummary struct {
	Score         float64 `json:"score"`          // 0-100, 50 is neutral
	PositiveCount int     `json:"positive_count"` // Comments classified positive
	NegativeCount int     `json:"negative_count"` // Comments classified negative
	NeutralCount  int     `json:"neutral_count"`  // Comments classified neutral
	DominantTone  string  `json:"dominant_tone"`  // positive, negative or neutral
	CommentsUsed  int     `json:"comments_used"`  // Comments that contributed to the score
}

// BatchReport is the complete output for one analysis request. Aggregate,
// Metrics and Insights are nil when no video produced a valid analysis; callers
// must branch on VideosAnalyzed rather than read zero-valued aggregates.
type BatchReport struct {
	ID             string            `json:"id"`                  // Report identifier
	Channel        *ChannelInfo      `json:"channel,omitempty"`   // Present for channel-scoped requests
	Query          string            `json:"query,omitempty"`     // Present for topic-scoped requests
	VideosAnalyzed int               `json:"videos_analyzed"`     // Records that produced a valid analysis
	RecordsSkipped int               `json:"records_skipped"`     // Records excluded by per-record failures
	Videos         []VideoAnalysis   `json:"videos"`              // Per-video results, engagement score descending
	Aggregate      *PatternAggregate `json:"aggregate,omitempty"` // Batch statistics, nil for limited analysis
	Metrics        *ChannelMetrics   `json:"metrics,omitempty"`   // Batch averages, nil for limited analysis
	Insights       *ViralInsights    `json:"insights,omitempty"`  // Synthesis output, nil for limited analysis
	GeneratedAt    time.Time         `json:"generated_at"`        // Report creation timestamp
}
