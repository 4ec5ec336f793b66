// Package sentiment derives an audience sentiment score from video comments.
// It is a collaborator of the scoring engine: the engagement predictor
// consumes its 0-100 output but never computes sentiment itself.
package sentiment

import (
	"math"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

// Comment is one viewer comment as delivered by the metadata provider.
type Comment struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	LikeCount int64  `json:"like_count"`
}

// Per-comment classification thresholds on the compound score (-1.0 to 1.0).
const (
	positiveAbove = 0.05
	negativeBelow = -0.05
)

// Keyword weights for rule-based comment scoring. Viewer comments are short
// and informal, so the lexicon leans on reaction words rather than editorial
// vocabulary.
var positiveKeywords = map[string]float64{
	"love": 0.8, "loved": 0.8, "awesome": 0.9, "amazing": 0.9, "great": 0.7,
	"good": 0.5, "excellent": 1.0, "fantastic": 0.9, "helpful": 0.7,
	"thanks": 0.6, "thank": 0.6, "best": 0.7, "perfect": 0.8, "brilliant": 0.8,
	"underrated": 0.6, "subscribed": 0.7, "legend": 0.7, "gold": 0.6,
	"inspiring": 0.7, "funny": 0.5, "hilarious": 0.6, "wow": 0.5,
}

var negativeKeywords = map[string]float64{
	"bad": -0.6, "terrible": -1.0, "awful": -0.9, "boring": -0.7,
	"clickbait": -0.9, "waste": -0.8, "wasted": -0.8, "hate": -0.8,
	"hated": -0.8, "worst": -0.9, "misleading": -0.8, "wrong": -0.5,
	"dislike": -0.7, "disliked": -0.7, "unwatchable": -0.9, "scam": -0.9,
	"annoying": -0.6, "cringe": -0.6, "disappointing": -0.8, "fake": -0.7,
}

// Analyzer performs rule-based sentiment analysis over comment batches.
type Analyzer struct{}

// NewAnalyzer creates a new sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalyzeComments scores a batch of comments and aggregates them into a
// 0-100 summary, 50 being neutral. Comments with empty text are skipped. It
// fails when no comment could be scored, so callers can fall back to the
// neutral midpoint explicitly.
func (a *Analyzer) AnalyzeComments(comments []Comment) (core.SentimentSummary, error) {
	var compounds []float64
	for _, c := range comments {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		compounds = append(compounds, compoundScore(c.Text))
	}
	if len(compounds) == 0 {
		return core.SentimentSummary{}, core.ErrInsufficientData
	}

	summary := core.SentimentSummary{CommentsUsed: len(compounds)}
	total := 0.0
	for _, comp := range compounds {
		total += comp
		switch {
		case comp > positiveAbove:
			summary.PositiveCount++
		case comp < negativeBelow:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}

	mean := total / float64(len(compounds))
	// Map the compound mean from [-1,1] onto the 0-100 scale the predictor
	// consumes.
	summary.Score = math.Round((50+50*mean)*100) / 100
	summary.DominantTone = dominantTone(summary)

	if err := core.CheckScoreRange("sentiment analyzer", summary.Score, 0, 100); err != nil {
		return core.SentimentSummary{}, err
	}
	return summary, nil
}

// compoundScore computes a normalized keyword-weight sum for one comment,
// clamped to [-1,1].
func compoundScore(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	score := 0.0
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:()[]\"'")
		if weight, ok := positiveKeywords[w]; ok {
			score += weight
		}
		if weight, ok := negativeKeywords[w]; ok {
			score += weight
		}
	}

	// Short comments are dominated by a single reaction word; dampen by
	// length so long rants and short praise normalize comparably.
	normalized := score / math.Sqrt(float64(len(words)))
	return math.Max(-1, math.Min(1, normalized))
}

func dominantTone(s core.SentimentSummary) string {
	switch {
	case s.PositiveCount > s.NegativeCount && s.PositiveCount > s.NeutralCount:
		return "positive"
	case s.NegativeCount > s.PositiveCount && s.NegativeCount > s.NeutralCount:
		return "negative"
	default:
		return "neutral"
	}
}
