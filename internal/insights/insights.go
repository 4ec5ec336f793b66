// Package insights synthesizes batch-level statistics and top-performing
// videos into ready-to-use templates, recipes and quick wins.
package insights

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/taxonomy"
)

// Output caps, fixed by the catalog.
const (
	maxTemplates     = 3
	maxFormulas      = 5
	maxStarters      = 8
	maxRecipes       = 3
	maxQuickWins     = 5
	topVideosForWins = 5
)

// Quick-win thresholds on the title subscores and the SEO score. The
// subscore thresholds mirror the title scorer's suggestion thresholds.
const (
	winPatternBelow   = 50.0
	winLengthBelow    = 70.0
	winPowerBelow     = 40.0
	winStructureBelow = 40.0
	winSEOBelow       = 60.0
)

// Generator selects and instantiates templates and recipes from the taxonomy
// catalog. It runs strictly after aggregation, single-threaded, on the
// aggregator's finalized output.
type Generator struct{}

// NewGenerator creates a new insights generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the viral insights for a batch. analyses may arrive in any
// order; the generator ranks them by engagement score descending itself.
func (g *Generator) Generate(agg *core.PatternAggregate, analyses []core.VideoAnalysis) *core.ViralInsights {
	ranked := make([]core.VideoAnalysis, len(analyses))
	copy(ranked, analyses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement.Score > ranked[j].Engagement.Score
	})

	matching := matchingTemplates(agg)

	return &core.ViralInsights{
		ContentTemplates: core.ContentTemplates{
			ReadyToUseTemplates: selectTemplates(matching),
			CopyPasteFormulas:   copyPasteFormulas(matching),
			TitleStarters:       titleStarters(ranked),
		},
		ViralRecipes: core.ViralRecipes{
			Recipes:   selectRecipes(agg, ranked),
			QuickWins: quickWins(ranked),
		},
	}
}

type scoredTemplate struct {
	count int
	entry taxonomy.TemplateEntry
}

// matchingTemplates returns every library template whose tag occurred in the
// batch, ordered by tag frequency descending, ties by taxonomy priority.
func matchingTemplates(agg *core.PatternAggregate) []scoredTemplate {
	var out []scoredTemplate
	for _, entry := range taxonomy.Templates() {
		if count := agg.CommonPatterns[entry.Tag]; count >= 1 {
			out = append(out, scoredTemplate{count: count, entry: entry})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return taxonomy.TagPriority(out[i].entry.Tag) < taxonomy.TagPriority(out[j].entry.Tag)
	})
	return out
}

func selectTemplates(matching []scoredTemplate) []core.ContentTemplate {
	var out []core.ContentTemplate
	for _, st := range matching {
		if len(out) == maxTemplates {
			break
		}
		out = append(out, st.entry.Template)
	}
	return out
}

// copyPasteFormulas derives formulas from the fill_in field of every
// tag-matching template, before the template cap, so the formula list can be
// longer than the template list.
func copyPasteFormulas(matching []scoredTemplate) []string {
	var out []string
	for _, st := range matching {
		if len(out) == maxFormulas {
			break
		}
		out = append(out, st.entry.Template.FillIn)
	}
	return out
}

// titleStarters extracts the leading bigram of each top-5 title, deduped
// case-insensitively, order of first appearance.
func titleStarters(ranked []core.VideoAnalysis) []string {
	seen := make(map[string]bool)
	var out []string
	for i, va := range ranked {
		if i == topVideosForWins || len(out) == maxStarters {
			break
		}
		words := strings.Fields(va.Video.Title)
		if len(words) < 2 {
			continue
		}
		starter := words[0] + " " + words[1]
		key := strings.ToLower(starter)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, starter+" ...")
	}
	return out
}

// selectRecipes picks catalog recipes whose tag occurred in the batch,
// ordered by tag frequency, and instantiates each concrete example with the
// highest-engagement video matching the recipe's tag.
func selectRecipes(agg *core.PatternAggregate, ranked []core.VideoAnalysis) []core.ViralRecipe {
	type scoredRecipe struct {
		count int
		entry taxonomy.RecipeEntry
	}
	var matching []scoredRecipe
	for _, entry := range taxonomy.Recipes() {
		if count := agg.CommonPatterns[entry.Tag]; count >= 1 {
			matching = append(matching, scoredRecipe{count: count, entry: entry})
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].count != matching[j].count {
			return matching[i].count > matching[j].count
		}
		return taxonomy.TagPriority(matching[i].entry.Tag) < taxonomy.TagPriority(matching[j].entry.Tag)
	})

	var out []core.ViralRecipe
	for _, sr := range matching {
		if len(out) == maxRecipes {
			break
		}
		recipe := core.ViralRecipe{
			Name:              sr.entry.Name,
			Formula:           sr.entry.Formula,
			EmotionalTriggers: sr.entry.EmotionalTriggers,
			HowToApply:        sr.entry.HowToApply,
			ExpectedCTR:       sr.entry.ExpectedCTR,
			ConcreteExample:   map[string]string{},
		}
		if best, ok := bestVideoWithTag(ranked, sr.entry.Tag); ok {
			recipe.ConcreteExample["title"] = best.Video.Title
			recipe.ConcreteExample["view_count"] = strconv.FormatInt(best.Video.ViewCount, 10)
		}
		out = append(out, recipe)
	}
	return out
}

// bestVideoWithTag returns the highest-engagement video that matched the tag.
func bestVideoWithTag(ranked []core.VideoAnalysis, tag string) (core.VideoAnalysis, bool) {
	for _, va := range ranked {
		for _, t := range va.Title.Patterns {
			if t == tag {
				return va, true
			}
		}
	}
	return core.VideoAnalysis{}, false
}

// quickWins compares each top video's subscores against the catalog
// thresholds and emits one tip per unmet threshold, deduped by tip text,
// ordered by the engagement score of the source video.
func quickWins(ranked []core.VideoAnalysis) []core.QuickWin {
	seen := make(map[string]bool)
	var out []core.QuickWin

	emit := func(signal string, va core.VideoAnalysis) {
		if len(out) == maxQuickWins {
			return
		}
		for _, entry := range taxonomy.QuickWinCatalog {
			if entry.Signal != signal || seen[entry.Tip] {
				continue
			}
			seen[entry.Tip] = true
			out = append(out, core.QuickWin{
				Tip:     entry.Tip,
				Why:     entry.Why,
				Example: va.Video.Title,
				Impact:  entry.Impact,
			})
		}
	}

	for i, va := range ranked {
		if i == topVideosForWins || len(out) == maxQuickWins {
			break
		}
		if va.Title.Subscores.Pattern < winPatternBelow {
			emit("pattern", va)
		}
		if va.Title.Subscores.Length < winLengthBelow {
			emit("length", va)
		}
		if va.Title.Subscores.PowerWord < winPowerBelow {
			emit("power", va)
		}
		if va.Title.Subscores.Structure < winStructureBelow {
			emit("structure", va)
		}
		if float64(va.SEO.Score) < winSEOBelow {
			emit("seo", va)
		}
	}
	return out
}
