// Package engagement fuses the per-video signals into a single engagement
// prediction with a performance tier and factor lists.
package engagement

import (
	"math"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

// Term weights. When the historical term is absent its weight is
// redistributed proportionally across the remaining terms.
const (
	weightTitle      = 0.35
	weightSEO        = 0.25
	weightHistorical = 0.25
	weightSentiment  = 0.15

	neutralSentiment = 50.0 // midpoint used when no sentiment was supplied
)

// Tier thresholds, lower bound inclusive.
const (
	tierViralMin = 80.0
	tierHighMin  = 60.0
	tierAvgMin   = 40.0
)

// factor couples a term's catalog strings with its thresholds. The slice
// order is the emission order: term weight descending, ties in documented
// order.
type factor struct {
	positiveMin   float64 // term value at or above this appends the positive string
	negativeBelow float64 // term value below this appends the negative string
	positive      string
	negative      string
}

var factorCatalog = []struct {
	name string
	factor
}{
	{"title", factor{70, 40, "Strong title", "Weak title effectiveness"}},
	{"seo", factor{70, 40, "Well-optimized description", "Description needs SEO work"}},
	{"historical", factor{70, 30, "Outperforms channel baseline", "Below channel baseline"}},
	{"sentiment", factor{65, 35, "Positive audience sentiment", "Negative audience sentiment"}},
}

// Inputs are the weighted terms of a prediction. Sentiment is nil when the
// sentiment collaborator did not run; Historical is nil when the video is
// analyzed without batch context (or the batch has no views to normalize
// against).
type Inputs struct {
	TitleScore float64  // Title effectiveness, 0-100
	SEOScore   float64  // Description SEO score, 0-100
	Sentiment  *float64 // Comment sentiment, 0-100
	Historical *float64 // View count normalized against the batch, 0-100
}

// Predictor computes engagement predictions. Pure given its inputs.
type Predictor struct{}

// NewPredictor creates a new engagement predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Predict fuses the input terms into an engagement score, tier label and
// factor lists.
func (p *Predictor) Predict(in Inputs) (core.EngagementPrediction, error) {
	sentiment := neutralSentiment
	if in.Sentiment != nil {
		sentiment = *in.Sentiment
	}

	terms := []struct {
		name   string
		value  float64
		weight float64
		absent bool
	}{
		{"title", in.TitleScore, weightTitle, false},
		{"seo", in.SEOScore, weightSEO, false},
		{"historical", 0, weightHistorical, in.Historical == nil},
		{"sentiment", sentiment, weightSentiment, false},
	}
	if in.Historical != nil {
		terms[2].value = *in.Historical
	}

	// Redistribute the weight of absent terms proportionally.
	presentWeight := 0.0
	for _, t := range terms {
		if !t.absent {
			presentWeight += t.weight
		}
	}

	score := 0.0
	for _, t := range terms {
		if t.absent {
			continue
		}
		score += t.value * (t.weight / presentWeight)
	}
	score = math.Round(score*100) / 100

	if err := core.CheckScoreRange("engagement predictor", score, 0, 100); err != nil {
		return core.EngagementPrediction{}, err
	}

	pred := core.EngagementPrediction{
		Score: score,
		Tier:  tierFor(score),
	}

	for i, entry := range factorCatalog {
		t := terms[i]
		if t.absent {
			continue
		}
		if t.value >= entry.positiveMin {
			pred.PositiveFactors = append(pred.PositiveFactors, entry.positive)
		} else if t.value < entry.negativeBelow {
			pred.NegativeFactors = append(pred.NegativeFactors, entry.negative)
		}
	}

	return pred, nil
}

func tierFor(score float64) core.PerformanceTier {
	switch {
	case score >= tierViralMin:
		return core.TierViralPotential
	case score >= tierHighMin:
		return core.TierHighPerformer
	case score >= tierAvgMin:
		return core.TierAverage
	default:
		return core.TierUnderperforming
	}
}
