// Package textutil provides the shared tokenization rules every analysis
// component normalizes text with, so that scorer, aggregator and SEO analyzer
// agree on what a "word" is.
package textutil

import (
	"regexp"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
)

var tokenRe = regexp.MustCompile(`[a-z0-9']+`)

// Normalize trims surrounding whitespace and case-folds text for lexical
// matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Words splits text on whitespace. Punctuation stays attached; use Tokens for
// lexicon lookups.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the whitespace-separated word count of text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Tokens returns the lower-cased alphanumeric tokens of text, in order.
func Tokens(text string) []string {
	return tokenRe.FindAllString(Normalize(text), -1)
}

// SignificantTokens returns Tokens with stop words and short tokens (three
// characters or fewer) removed.
func SignificantTokens(text string) []string {
	var out []string
	for _, tok := range Tokens(text) {
		if len(tok) <= 3 || taxonomy.StopWords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}
