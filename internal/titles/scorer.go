package titles

import (
	"math"
	"sort"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

// Scoring weights for the four subscores. The weights are part of the
// catalog: they stay stable so that identical input always produces identical
// scores.
const (
	weightPattern   = 0.35
	weightLength    = 0.25
	weightPowerWord = 0.25
	weightStructure = 0.15

	perTagWeight = 25.0 // pattern subscore per distinct matched tag

	optimalWordsMin = 6
	optimalWordsMax = 12
	lengthDecay     = 15.0 // points lost per word outside the optimal window
)

// suggestion is one catalog message emitted when its subscore falls below the
// threshold. Entries are in fixed catalog order; ties in gap size keep this
// order.
type suggestion struct {
	threshold float64
	message   string
}

var suggestionCatalog = []struct {
	pick func(core.Subscores) float64
	suggestion
}{
	{func(s core.Subscores) float64 { return s.Pattern }, suggestion{50, "Use a proven title format such as a question opener or a numbered list"}},
	{func(s core.Subscores) float64 { return s.Length }, suggestion{70, "Adjust title length - aim for 6-12 words"}},
	{func(s core.Subscores) float64 { return s.PowerWord }, suggestion{40, "Add power words like 'proven', 'essential' or 'secret'"}},
	{func(s core.Subscores) float64 { return s.Structure }, suggestion{40, "Add a number, a question mark or a bracketed qualifier"}},
}

const maxSuggestions = 3

// Scorer combines pattern matches, length and lexical signals into a title
// effectiveness score with ranked improvement suggestions.
type Scorer struct{}

// NewScorer creates a new title effectiveness scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the effectiveness of a title given the tags the detector
// matched for it. It fails with core.ErrEmptyTitle when the title is empty or
// whitespace-only after normalization.
func (s *Scorer) Score(title string, patterns []string) (core.TitleAnalysis, error) {
	normalized := textutil.Normalize(title)
	if normalized == "" {
		return core.TitleAnalysis{}, core.ErrEmptyTitle
	}

	words := textutil.Words(normalized)
	sub := core.Subscores{
		Pattern:   patternScore(patterns),
		Length:    lengthScore(len(words)),
		PowerWord: powerWordScore(words),
		Structure: structureScore(title),
	}

	weighted := weightPattern*sub.Pattern +
		weightLength*sub.Length +
		weightPowerWord*sub.PowerWord +
		weightStructure*sub.Structure
	final := math.Round(weighted)

	// The weights sum to 1 and every subscore is capped at 100, so an
	// out-of-range result is a defect, not an input problem.
	if err := core.CheckScoreRange("title scorer", final, 0, 100); err != nil {
		return core.TitleAnalysis{}, err
	}

	return core.TitleAnalysis{
		EffectivenessScore: int(final),
		Patterns:           patterns,
		Subscores:          sub,
		Suggestions:        buildSuggestions(sub),
	}, nil
}

func patternScore(patterns []string) float64 {
	return math.Min(100, float64(len(patterns))*perTagWeight)
}

// lengthScore is maximal inside the optimal word window and decays linearly
// outside it.
func lengthScore(wordCount int) float64 {
	switch {
	case wordCount >= optimalWordsMin && wordCount <= optimalWordsMax:
		return 100
	case wordCount < optimalWordsMin:
		return math.Max(0, 100-lengthDecay*float64(optimalWordsMin-wordCount))
	default:
		return math.Max(0, 100-lengthDecay*float64(wordCount-optimalWordsMax))
	}
}

func powerWordScore(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:()[]\"'")
		if _, ok := taxonomy.PowerWords[w]; ok {
			hits++
		}
	}
	return math.Min(100, 400*float64(hits)/float64(len(words)))
}

func structureScore(title string) float64 {
	score := 0.0
	if strings.ContainsAny(title, "0123456789") {
		score += 40
	}
	if strings.Contains(title, "?") {
		score += 30
	}
	if strings.ContainsAny(title, "([") {
		score += 30
	}
	return math.Min(100, score)
}

// buildSuggestions emits the catalog message for every subscore below its
// threshold, ordered by gap size descending, capped at maxSuggestions.
func buildSuggestions(sub core.Subscores) []string {
	type gap struct {
		size    float64
		order   int
		message string
	}
	var gaps []gap
	for i, entry := range suggestionCatalog {
		value := entry.pick(sub)
		if value < entry.threshold {
			gaps = append(gaps, gap{entry.threshold - value, i, entry.message})
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].size != gaps[j].size {
			return gaps[i].size > gaps[j].size
		}
		return gaps[i].order < gaps[j].order
	})

	var out []string
	for _, g := range gaps {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, g.message)
	}
	return out
}
