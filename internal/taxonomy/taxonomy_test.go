package taxonomy

import "testing"

func TestPatternTable_MatchesExamples(t *testing.T) {
	tests := []struct {
		tag   string
		title string
	}{
		{TagQuestion, "what happens when you quit sugar"},
		{TagNumberList, "7 morning habits that changed my life"},
		{TagNumberList, "5 tips for better sleep"},
		{TagTutorial, "docker basics tutorial"},
		{TagUltimateGuide, "the ultimate guide to sourdough"},
		{TagBeginner, "python basics explained"},
		{TagAdvanced, "advanced typescript patterns"},
		{TagReview, "iphone 17 review"},
		{TagComparison, "mac vs pc"},
		{TagTransformation, "this changed my life"},
		{TagEmotional, "this is insane"},
		{TagUrgency, "stop doing this now"},
		{TagCuriosity, "the secret nobody tells you"},
	}

	for _, tt := range tests {
		matched := false
		for _, p := range Patterns() {
			if p.Tag == tt.tag && p.Matches(tt.title) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("Pattern %q should match title %q", tt.tag, tt.title)
		}
	}
}

func TestPatternTable_NoFalsePositives(t *testing.T) {
	tests := []struct {
		tag   string
		title string
	}{
		{TagQuestion, "the way questions work"},
		{TagNumberList, "morning habits that help"},
		{TagComparison, "vsauce explains everything"},
	}

	for _, tt := range tests {
		for _, p := range Patterns() {
			if p.Tag == tt.tag && p.Matches(tt.title) {
				t.Errorf("Pattern %q should not match title %q", tt.tag, tt.title)
			}
		}
	}
}

func TestPatterns_PriorityOrder(t *testing.T) {
	patterns := Patterns()
	for i, p := range patterns {
		if p.Priority != i {
			t.Errorf("Pattern %q has priority %d at table index %d", p.Tag, p.Priority, i)
		}
	}
}

func TestIsDefinedTag(t *testing.T) {
	if !IsDefinedTag(TagQuestion) {
		t.Error("question should be a defined tag")
	}
	if IsDefinedTag("made_up") {
		t.Error("made_up should not be a defined tag")
	}
}

func TestTagPriority_UnknownSortsLast(t *testing.T) {
	if TagPriority(TagQuestion) != 0 {
		t.Errorf("question priority = %d, want 0", TagPriority(TagQuestion))
	}
	if TagPriority("made_up") != len(Patterns()) {
		t.Errorf("unknown tag priority = %d, want %d", TagPriority("made_up"), len(Patterns()))
	}
}

func TestLookupEmotion(t *testing.T) {
	cat, ok := LookupEmotion("secret")
	if !ok || cat != "curiosity" {
		t.Errorf("LookupEmotion(secret) = %q, %v; want curiosity, true", cat, ok)
	}
	if _, ok := LookupEmotion("table"); ok {
		t.Error("LookupEmotion(table) should not match")
	}
}

func TestEmotionLexicon_CategoriesAreDeclared(t *testing.T) {
	declared := make(map[string]bool)
	for _, cat := range EmotionCategories {
		declared[cat] = true
	}
	for word, cat := range emotionLexicon {
		if !declared[cat] {
			t.Errorf("word %q maps to undeclared category %q", word, cat)
		}
	}
}

func TestTemplates_TagsAreDefined(t *testing.T) {
	for _, entry := range Templates() {
		if !IsDefinedTag(entry.Tag) {
			t.Errorf("template %q references undefined tag %q", entry.Template.Name, entry.Tag)
		}
		if entry.Template.FillIn == "" {
			t.Errorf("template %q has no fill-in formula", entry.Template.Name)
		}
	}
}

func TestRecipes_TagsAreDefined(t *testing.T) {
	for _, entry := range Recipes() {
		if !IsDefinedTag(entry.Tag) {
			t.Errorf("recipe %q references undefined tag %q", entry.Name, entry.Tag)
		}
		if entry.Formula == "" || entry.ExpectedCTR == "" {
			t.Errorf("recipe %q is missing formula or CTR range", entry.Name)
		}
	}
}

func TestQuickWinCatalog_SignalsAreKnown(t *testing.T) {
	known := map[string]bool{"pattern": true, "length": true, "power": true, "structure": true, "seo": true}
	for _, entry := range QuickWinCatalog {
		if !known[entry.Signal] {
			t.Errorf("quick win %q has unknown signal %q", entry.Tip, entry.Signal)
		}
	}
}
