package insights

import (
	"reflect"
	"testing"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

func analysis(title string, patterns []string, engagement float64, views int64, sub core.Subscores, seoScore int) core.VideoAnalysis {
	return core.VideoAnalysis{
		Video:      core.VideoRecord{ID: title, Title: title, ViewCount: views},
		Title:      core.TitleAnalysis{Patterns: patterns, Subscores: sub},
		SEO:        core.SEOAnalysis{Score: seoScore},
		Engagement: core.EngagementPrediction{Score: engagement},
	}
}

func batchFixture() (*core.PatternAggregate, []core.VideoAnalysis) {
	agg := &core.PatternAggregate{
		CommonPatterns: map[string]int{"question": 2, "number_list": 1, "transformation": 1},
		VideosAnalyzed: 3,
	}
	analyses := []core.VideoAnalysis{
		// Deliberately unsorted; the generator ranks by engagement itself.
		analysis("Why Quantum Physics Matters", []string{"question"}, 70, 1000,
			core.Subscores{Pattern: 100, Length: 100, PowerWord: 100, Structure: 100}, 90),
		analysis("What Is Quantum Computing", []string{"question"}, 90, 5000,
			core.Subscores{Pattern: 25, Length: 100, PowerWord: 0, Structure: 0}, 50),
		analysis("7 Morning Habits That Changed My Life", []string{"number_list", "transformation"}, 80, 3000,
			core.Subscores{Pattern: 50, Length: 100, PowerWord: 0, Structure: 40}, 70),
	}
	return agg, analyses
}

func TestGenerate_TemplatesByTagFrequency(t *testing.T) {
	g := NewGenerator()
	agg, analyses := batchFixture()

	got := g.Generate(agg, analyses)

	names := make([]string, 0, len(got.ContentTemplates.ReadyToUseTemplates))
	for _, tmpl := range got.ContentTemplates.ReadyToUseTemplates {
		names = append(names, tmpl.Name)
	}
	// question occurs twice; the two single-occurrence tags tie and break on
	// taxonomy priority, number_list ahead of transformation.
	want := []string{"The Question Opener", "The Number List", "The Transformation Story"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("templates = %v, want %v", names, want)
	}
	if len(got.ContentTemplates.CopyPasteFormulas) != 3 {
		t.Errorf("formulas = %v, want one per matching template", got.ContentTemplates.CopyPasteFormulas)
	}
}

func TestGenerate_TitleStarters(t *testing.T) {
	g := NewGenerator()
	agg, analyses := batchFixture()

	got := g.Generate(agg, analyses)

	want := []string{"What Is ...", "7 Morning ...", "Why Quantum ..."}
	if !reflect.DeepEqual(got.ContentTemplates.TitleStarters, want) {
		t.Errorf("starters = %v, want %v", got.ContentTemplates.TitleStarters, want)
	}
}

func TestGenerate_StartersDedupeCaseInsensitively(t *testing.T) {
	g := NewGenerator()
	agg := &core.PatternAggregate{CommonPatterns: map[string]int{}}
	analyses := []core.VideoAnalysis{
		analysis("How To Cook Rice", nil, 90, 100, core.Subscores{Pattern: 100, Length: 100, PowerWord: 100, Structure: 100}, 100),
		analysis("how to boil eggs", nil, 80, 100, core.Subscores{Pattern: 100, Length: 100, PowerWord: 100, Structure: 100}, 100),
	}

	got := g.Generate(agg, analyses)
	want := []string{"How To ..."}
	if !reflect.DeepEqual(got.ContentTemplates.TitleStarters, want) {
		t.Errorf("starters = %v, want deduped %v", got.ContentTemplates.TitleStarters, want)
	}
}

func TestGenerate_RecipesWithConcreteExample(t *testing.T) {
	g := NewGenerator()
	agg, analyses := batchFixture()

	got := g.Generate(agg, analyses)

	recipes := got.ViralRecipes.Recipes
	if len(recipes) != 2 {
		t.Fatalf("recipes = %v, want two matching catalog entries", recipes)
	}
	// Both matching tags occurred once; number_list wins the priority tie.
	if recipes[0].Name != "The Oddly Specific" || recipes[1].Name != "The Personal Experiment" {
		t.Errorf("recipe order = %q, %q", recipes[0].Name, recipes[1].Name)
	}
	wantExample := map[string]string{
		"title":      "7 Morning Habits That Changed My Life",
		"view_count": "3000",
	}
	if !reflect.DeepEqual(recipes[0].ConcreteExample, wantExample) {
		t.Errorf("concrete example = %v, want %v", recipes[0].ConcreteExample, wantExample)
	}
}

func TestGenerate_QuickWinsDedupedByTip(t *testing.T) {
	g := NewGenerator()
	agg, analyses := batchFixture()

	got := g.Generate(agg, analyses)

	wins := got.ViralRecipes.QuickWins
	if len(wins) != 4 {
		t.Fatalf("quick wins = %v, want four distinct tips", wins)
	}
	wantTips := []string{
		"Use a proven title format",
		"Add a power word like 'proven', 'secret' or 'essential'",
		"Add a number, question mark or bracketed qualifier",
		"Expand the description with keywords, timestamps and a call to action",
	}
	for i, want := range wantTips {
		if wins[i].Tip != want {
			t.Errorf("quick win[%d] tip = %q, want %q", i, wins[i].Tip, want)
		}
	}
	// All four thresholds were missed by the top-ranked video.
	for _, w := range wins {
		if w.Example != "What Is Quantum Computing" {
			t.Errorf("quick win example = %q, want the top video's title", w.Example)
		}
	}
}

func TestGenerate_EmptyBatchYieldsEmptyInsights(t *testing.T) {
	g := NewGenerator()
	got := g.Generate(&core.PatternAggregate{CommonPatterns: map[string]int{}}, nil)
	if len(got.ContentTemplates.ReadyToUseTemplates) != 0 ||
		len(got.ContentTemplates.TitleStarters) != 0 ||
		len(got.ViralRecipes.Recipes) != 0 ||
		len(got.ViralRecipes.QuickWins) != 0 {
		t.Errorf("insights for empty batch should be empty, got %+v", got)
	}
}
