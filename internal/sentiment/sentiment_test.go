package sentiment

import (
	"errors"
	"testing"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

func TestAnalyzeComments_Positive(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.AnalyzeComments([]Comment{{Text: "This is awesome"}})
	if err != nil {
		t.Fatalf("AnalyzeComments: %v", err)
	}
	// awesome 0.9 dampened by sqrt(3) words: 50 + 50*0.5196 = 75.98.
	if got.Score != 75.98 {
		t.Errorf("score = %v, want 75.98", got.Score)
	}
	if got.PositiveCount != 1 || got.DominantTone != "positive" {
		t.Errorf("counts = +%d -%d =%d tone %q, want one positive", got.PositiveCount, got.NegativeCount, got.NeutralCount, got.DominantTone)
	}
}

func TestAnalyzeComments_Negative(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.AnalyzeComments([]Comment{{Text: "Total clickbait"}})
	if err != nil {
		t.Fatalf("AnalyzeComments: %v", err)
	}
	// clickbait -0.9 dampened by sqrt(2) words: 50 - 50*0.6364 = 18.18.
	if got.Score != 18.18 {
		t.Errorf("score = %v, want 18.18", got.Score)
	}
	if got.NegativeCount != 1 || got.DominantTone != "negative" {
		t.Errorf("tone = %q with -%d, want one negative", got.DominantTone, got.NegativeCount)
	}
}

func TestAnalyzeComments_NeutralAndMixed(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.AnalyzeComments([]Comment{
		{Text: "First"},
		{Text: "Interesting topic overall"},
	})
	if err != nil {
		t.Fatalf("AnalyzeComments: %v", err)
	}
	if got.Score != 50 {
		t.Errorf("score = %v, want neutral 50", got.Score)
	}
	if got.NeutralCount != 2 || got.DominantTone != "neutral" {
		t.Errorf("neutral count = %d tone %q, want 2 neutral", got.NeutralCount, got.DominantTone)
	}
}

func TestAnalyzeComments_SkipsBlankComments(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.AnalyzeComments([]Comment{
		{Text: "   "},
		{Text: "great video, thanks"},
	})
	if err != nil {
		t.Fatalf("AnalyzeComments: %v", err)
	}
	if got.CommentsUsed != 1 {
		t.Errorf("comments used = %d, want 1", got.CommentsUsed)
	}
}

func TestAnalyzeComments_InsufficientData(t *testing.T) {
	a := NewAnalyzer()
	for _, comments := range [][]Comment{nil, {{Text: "  "}}} {
		if _, err := a.AnalyzeComments(comments); !errors.Is(err, core.ErrInsufficientData) {
			t.Errorf("AnalyzeComments(%v) error = %v, want ErrInsufficientData", comments, err)
		}
	}
}

func TestCompoundScore_ClampedToUnitRange(t *testing.T) {
	// Three strong words in three words exceed the clamp.
	got := compoundScore("awesome amazing excellent")
	if got != 1 {
		t.Errorf("compoundScore = %v, want clamped 1", got)
	}
}

func TestCompoundScore_TrimsPunctuation(t *testing.T) {
	if got := compoundScore("awesome!"); got <= 0 {
		t.Errorf("compoundScore(awesome!) = %v, want positive", got)
	}
}
