package engagement

import (
	"math"
	"reflect"
	"testing"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

func ptr(v float64) *float64 { return &v }

func TestPredict_AllTermsPresent(t *testing.T) {
	p := NewPredictor()
	got, err := p.Predict(Inputs{
		TitleScore: 90,
		SEOScore:   80,
		Sentiment:  ptr(90),
		Historical: ptr(100),
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// 0.35*90 + 0.25*80 + 0.25*100 + 0.15*90 = 90.
	if got.Score != 90 {
		t.Errorf("score = %v, want 90", got.Score)
	}
	if got.Tier != core.TierViralPotential {
		t.Errorf("tier = %q, want Viral Potential", got.Tier)
	}
	wantPos := []string{
		"Strong title",
		"Well-optimized description",
		"Outperforms channel baseline",
		"Positive audience sentiment",
	}
	if !reflect.DeepEqual(got.PositiveFactors, wantPos) {
		t.Errorf("positive factors = %v, want %v", got.PositiveFactors, wantPos)
	}
	if got.NegativeFactors != nil {
		t.Errorf("negative factors = %v, want none", got.NegativeFactors)
	}
}

func TestPredict_RedistributesAbsentHistorical(t *testing.T) {
	p := NewPredictor()
	got, err := p.Predict(Inputs{TitleScore: 80, SEOScore: 60})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// Absent historical leaves 0.75 present weight; nil sentiment counts as
	// the neutral 50: 80*(0.35/0.75) + 60*(0.25/0.75) + 50*(0.15/0.75).
	if got.Score != 67.33 {
		t.Errorf("score = %v, want 67.33", got.Score)
	}
	if got.Tier != core.TierHighPerformer {
		t.Errorf("tier = %q, want High Performer", got.Tier)
	}
	wantPos := []string{"Strong title"}
	if !reflect.DeepEqual(got.PositiveFactors, wantPos) {
		t.Errorf("positive factors = %v, want %v", got.PositiveFactors, wantPos)
	}
}

func TestPredict_NegativeFactors(t *testing.T) {
	p := NewPredictor()
	got, err := p.Predict(Inputs{
		TitleScore: 20,
		SEOScore:   10,
		Sentiment:  ptr(20),
		Historical: ptr(20),
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.Tier != core.TierUnderperforming {
		t.Errorf("tier = %q, want Underperforming", got.Tier)
	}
	wantNeg := []string{
		"Weak title effectiveness",
		"Description needs SEO work",
		"Below channel baseline",
		"Negative audience sentiment",
	}
	if !reflect.DeepEqual(got.NegativeFactors, wantNeg) {
		t.Errorf("negative factors = %v, want %v", got.NegativeFactors, wantNeg)
	}
}

func TestPredict_MidRangeTermEmitsNoFactor(t *testing.T) {
	p := NewPredictor()
	got, err := p.Predict(Inputs{
		TitleScore: 55,
		SEOScore:   55,
		Sentiment:  ptr(50),
		Historical: ptr(50),
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(got.PositiveFactors) != 0 || len(got.NegativeFactors) != 0 {
		t.Errorf("mid-range terms emitted factors: +%v -%v", got.PositiveFactors, got.NegativeFactors)
	}
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  core.PerformanceTier
	}{
		{80, core.TierViralPotential},
		{79.99, core.TierHighPerformer},
		{60, core.TierHighPerformer},
		{59.99, core.TierAverage},
		{40, core.TierAverage},
		{39.99, core.TierUnderperforming},
		{0, core.TierUnderperforming},
	}
	for _, tt := range tests {
		if got := tierFor(tt.score); got != tt.want {
			t.Errorf("tierFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPredict_ScoreStaysInRange(t *testing.T) {
	p := NewPredictor()
	got, err := p.Predict(Inputs{
		TitleScore: 100,
		SEOScore:   100,
		Sentiment:  ptr(100),
		Historical: ptr(100),
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if math.Abs(got.Score-100) > 1e-9 {
		t.Errorf("score = %v, want 100", got.Score)
	}
}
