// Package seo scores video descriptions for discoverability: keyword
// coverage, call-to-action presence, chapter timestamps and length adequacy.
package seo

import (
	"math"
	"regexp"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

// Subscore weights. Stable; part of the catalog.
const (
	weightKeyword   = 0.40
	weightCTA       = 0.25
	weightLength    = 0.20
	weightTimestamp = 0.15

	lengthFloorWords = 100 // word count that earns the full length subscore
)

var (
	timestampRe = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	hashtagRe   = regexp.MustCompile(`#\w+`)
	linkRe      = regexp.MustCompile(`https?://\S+`)
)

// Analyzer scores descriptions against their video's title.
type Analyzer struct{}

// NewAnalyzer creates a new SEO analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scores the description of a video. A missing description yields a
// zero score with a suggestion to add one; it is not an error, since callers
// need the zero-score analysis for the engagement prediction.
func (a *Analyzer) Analyze(title, description string) (core.SEOAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return core.SEOAnalysis{
			Suggestions: []string{"Add a description - videos without one are invisible to search"},
		}, nil
	}

	descLower := textutil.Normalize(description)
	words := textutil.WordCount(description)

	keyword := keywordScore(title, descLower)
	ctas := ctasFound(descLower)
	ctaScore := 0.0
	if len(ctas) > 0 {
		ctaScore = 100
	}
	lengthScore := math.Min(100, float64(words))
	hasTimestamps := timestampRe.MatchString(description)
	tsScore := 0.0
	if hasTimestamps {
		tsScore = 100
	}

	total := math.Round(weightKeyword*keyword + weightCTA*ctaScore + weightLength*lengthScore + weightTimestamp*tsScore)
	if err := core.CheckScoreRange("seo analyzer", total, 0, 100); err != nil {
		return core.SEOAnalysis{}, err
	}

	return core.SEOAnalysis{
		Score:          int(total),
		KeywordScore:   keyword,
		CTAScore:       ctaScore,
		LengthScore:    lengthScore,
		TimestampScore: tsScore,
		HasTimestamps:  hasTimestamps,
		CTAsFound:      ctas,
		HashtagCount:   len(hashtagRe.FindAllString(description, -1)),
		LinkCount:      len(linkRe.FindAllString(description, -1)),
		Suggestions:    buildSuggestions(keyword, len(ctas), hasTimestamps, words),
	}, nil
}

// keywordScore measures how many of the title's significant words the
// description covers.
func keywordScore(title, descLower string) float64 {
	sig := textutil.SignificantTokens(title)
	if len(sig) == 0 {
		return 0
	}
	descTokens := make(map[string]bool)
	for _, tok := range textutil.Tokens(descLower) {
		descTokens[tok] = true
	}
	covered := 0
	for _, tok := range sig {
		if descTokens[tok] {
			covered++
		}
	}
	return 100 * float64(covered) / float64(len(sig))
}

func ctasFound(descLower string) []string {
	var found []string
	for _, phrase := range taxonomy.CTAPhrases {
		if strings.Contains(descLower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

func buildSuggestions(keyword float64, ctaCount int, hasTimestamps bool, words int) []string {
	var out []string
	if keyword < 50 {
		out = append(out, "Work the title's keywords into the description for search relevance")
	}
	if ctaCount == 0 {
		out = append(out, "Add a call to action - ask viewers to subscribe, comment or share")
	}
	if words < lengthFloorWords {
		out = append(out, "Expand the description to at least 100 words")
	}
	if !hasTimestamps {
		out = append(out, "Add timestamps to improve viewer retention and enable chapters")
	}
	return out
}
