// Package titles implements the title pattern detector and the title
// effectiveness scorer.
package titles

import (
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

// Detector classifies a title string against the pattern taxonomy.
type Detector struct{}

// NewDetector creates a new pattern detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect evaluates every taxonomy predicate against the normalized title and
// returns the matched tags in taxonomy priority order. A title may match
// zero, one or many patterns; duplicates are impossible since each tag maps
// to exactly one predicate.
func (d *Detector) Detect(title string) []string {
	normalized := textutil.Normalize(title)
	if normalized == "" {
		return nil
	}

	var tags []string
	for _, p := range taxonomy.Patterns() {
		if p.Matches(normalized) {
			tags = append(tags, p.Tag)
		}
	}
	return tags
}
