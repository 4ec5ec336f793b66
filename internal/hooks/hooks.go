// Package hooks analyzes the opening span of a title: the hook a viewer reads
// before deciding to click.
package hooks

import (
	"math"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

// Signal weights. Emotion hits contribute per distinct category, capped so
// the three signals together never exceed 100.
const (
	hookWindowWords = 8

	weightNumeral     = 25.0
	weightQuestion    = 25.0
	weightPerEmotion  = 16.67
	emotionContribCap = 50.0
)

// Takeaway strings, keyed by signal. Order of emission follows the fixed
// signal priority: question, numeral, then emotion categories in lexicon
// order.
var (
	takeawayQuestion = "A direct question engages the viewer's brain - they start thinking of the answer before they click."
	takeawayNumeral  = "Specific numbers build trust and set clear expectations - viewers know exactly what they'll get."

	emotionTakeaways = map[string]string{
		"excitement": "High-energy words create anticipation - viewers expect something extraordinary.",
		"fear":       "Threat language triggers protective attention - viewers click to understand the risk.",
		"anger":      "Outrage words provoke a reaction - viewers click to agree or argue.",
		"surprise":   "Unexpected framing breaks prediction - the brain flags it as worth a look.",
		"curiosity":  "Mystery words activate the brain's reward center - the unknown is irresistible.",
		"urgency":    "Time-sensitive language triggers immediate action - it prevents procrastination.",
	}
)

const maxTakeaways = 3

// Analyzer extracts and scores title hooks.
type Analyzer struct{}

// NewAnalyzer creates a new hook analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts the hook of a title and scores its attention signals. It
// is a pure function of the title. Fails with core.ErrEmptyTitle on blank
// input.
func (a *Analyzer) Analyze(title string) (core.HookAnalysis, error) {
	if textutil.Normalize(title) == "" {
		return core.HookAnalysis{}, core.ErrEmptyTitle
	}

	hook := extractHook(title)
	hookLower := textutil.Normalize(hook)

	hasNumeral := strings.ContainsAny(hook, "0123456789")
	hasQuestion := strings.Contains(hook, "?")
	emotions := triggeredEmotions(hookLower)

	score := 0.0
	if hasNumeral {
		score += weightNumeral
	}
	if hasQuestion {
		score += weightQuestion
	}
	score += math.Min(emotionContribCap, weightPerEmotion*float64(len(emotions)))
	score = math.Min(100, score)
	score = math.Round(score*100) / 100 // exactly 2 decimal places

	if err := core.CheckScoreRange("hook analyzer", score, 0, 100); err != nil {
		return core.HookAnalysis{}, err
	}

	return core.HookAnalysis{
		HookText:           hook,
		EffectivenessScore: score,
		HasPowerHook:       hasNumeral || hasQuestion || len(emotions) > 0,
		EmotionsTriggered:  emotions,
		Takeaways:          buildTakeaways(hasQuestion, hasNumeral, emotions),
	}, nil
}

// extractHook returns the leading window of the title: the first
// hookWindowWords words or everything up to the first sentence terminator,
// whichever is shorter.
func extractHook(title string) string {
	words := textutil.Words(strings.TrimSpace(title))
	if len(words) > hookWindowWords {
		words = words[:hookWindowWords]
	}
	for i, w := range words {
		if strings.ContainsAny(w, ".!?") {
			words = words[:i+1]
			break
		}
	}
	return strings.Join(words, " ")
}

// triggeredEmotions scans the hook left to right and keeps the first trigger
// word per distinct emotion category, ordered by first occurrence.
func triggeredEmotions(hookLower string) []core.EmotionHit {
	seen := make(map[string]bool)
	var hits []core.EmotionHit
	for _, w := range textutil.Words(hookLower) {
		w = strings.Trim(w, ".,!?;:()[]\"'")
		cat, ok := taxonomy.LookupEmotion(w)
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		hits = append(hits, core.EmotionHit{Emotion: cat, TriggerWord: w})
	}
	return hits
}

func buildTakeaways(hasQuestion, hasNumeral bool, emotions []core.EmotionHit) []string {
	var out []string
	if hasQuestion {
		out = append(out, takeawayQuestion)
	}
	if hasNumeral {
		out = append(out, takeawayNumeral)
	}
	triggered := make(map[string]bool, len(emotions))
	for _, e := range emotions {
		triggered[e.Emotion] = true
	}
	for _, cat := range taxonomy.EmotionCategories {
		if triggered[cat] {
			out = append(out, emotionTakeaways[cat])
		}
	}
	if len(out) > maxTakeaways {
		out = out[:maxTakeaways]
	}
	return out
}
