// Package taxonomy holds the static catalogs the analysis engine scores
// against: the title pattern table, the power-word and emotion lexicons, the
// template library and the recipe catalog. The tables are build-time data,
// loaded once and never mutated; changing scoring behavior means editing this
// package, never the algorithms that consume it.
package taxonomy

import "regexp"

// Version identifies the catalog revision. Every report is a pure function of
// (input, catalog version), so bump this whenever a table changes.
const Version = "2025.08"

// Pattern tags, in priority order. The detector evaluates predicates in this
// order and emits tags in this order.
const (
	TagQuestion       = "question"
	TagNumberList     = "number_list"
	TagTutorial       = "tutorial"
	TagUltimateGuide  = "ultimate_guide"
	TagBeginner       = "beginner"
	TagAdvanced       = "advanced"
	TagReview         = "review"
	TagComparison     = "comparison"
	TagTransformation = "transformation"
	TagEmotional      = "emotional"
	TagUrgency        = "urgency"
	TagCuriosity      = "curiosity"
)

// Pattern is one entry of the title pattern table: a tag, a lexical predicate
// over the normalized (trimmed, lower-cased) title, and a priority rank used
// for ordering and tie-breaking.
type Pattern struct {
	Tag      string         // Taxonomy tag emitted on match
	Priority int            // Rank in the table, 0 is highest
	re       *regexp.Regexp // Detection predicate over normalized title text
}

// Matches reports whether the normalized title satisfies the pattern's
// predicate.
func (p Pattern) Matches(normalizedTitle string) bool {
	return p.re.MatchString(normalizedTitle)
}

var patternTable = []Pattern{
	{TagQuestion, 0, regexp.MustCompile(`^(how|what|why|when|where|who|which|can|should|will|does|is|are|do)\b`)},
	{TagNumberList, 1, regexp.MustCompile(`\d+\s+(?:\w+\s+)?(tips|ways|reasons|steps|things|secrets|habits|hacks|tricks|mistakes|lessons|rules)\b`)},
	{TagTutorial, 2, regexp.MustCompile(`\b(tutorial|how\s+to|step\s+by\s+step|walkthrough)\b`)},
	{TagUltimateGuide, 3, regexp.MustCompile(`\b(ultimate|complete|definitive|comprehensive)\s+guide\b`)},
	{TagBeginner, 4, regexp.MustCompile(`\b(beginner|newbie|starter|basics?|101|intro|introduction)\b`)},
	{TagAdvanced, 5, regexp.MustCompile(`\b(advanced|expert|pro|master|masterclass|professional)\b`)},
	{TagReview, 6, regexp.MustCompile(`\b(review|unboxing|first\s+look|hands\s+on|tested)\b`)},
	{TagComparison, 7, regexp.MustCompile(`\b(vs\.?|versus|compared|comparison|better\s+than)\b`)},
	{TagTransformation, 8, regexp.MustCompile(`\b(transform|transformed|transformation|changed?\s+my\s+life|before\s+and\s+after|i\s+quit|life.changing)\b`)},
	{TagEmotional, 9, regexp.MustCompile(`\b(amazing|incredible|shocking|unbelievable|insane|crazy|mind.blowing|epic)\b`)},
	{TagUrgency, 10, regexp.MustCompile(`\b(now|today|quick|fast|instant|instantly|immediately)\b`)},
	{TagCuriosity, 11, regexp.MustCompile(`\b(secret|truth|hidden|revealed?|nobody|mystery)\b`)},
}

// Patterns returns the full pattern table in priority order. The returned
// slice is shared; callers must not modify it.
func Patterns() []Pattern {
	return patternTable
}

// IsDefinedTag reports whether the tag belongs to the pattern table.
func IsDefinedTag(tag string) bool {
	for _, p := range patternTable {
		if p.Tag == tag {
			return true
		}
	}
	return false
}

// TagPriority returns the priority rank of a tag, or len(table) for unknown
// tags so they sort last.
func TagPriority(tag string) int {
	for _, p := range patternTable {
		if p.Tag == tag {
			return p.Priority
		}
	}
	return len(patternTable)
}
