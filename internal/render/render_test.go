package render

import (
	"strings"
	"testing"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

func TestReport_LimitedBatch(t *testing.T) {
	report := &core.BatchReport{
		ID:             "r1",
		Query:          "quantum",
		RecordsSkipped: 3,
	}

	out := Report(report)
	if !strings.Contains(out, "Topic analysis") {
		t.Errorf("output missing topic header:\n%s", out)
	}
	if !strings.Contains(out, "No video produced a valid analysis") {
		t.Errorf("output missing limited-report notice:\n%s", out)
	}
}

func TestReport_FullBatch(t *testing.T) {
	report := &core.BatchReport{
		ID:             "r2",
		Channel:        &core.ChannelInfo{Name: "Test Channel"},
		VideosAnalyzed: 1,
		Videos: []core.VideoAnalysis{
			{
				Video: core.VideoRecord{ID: "v1", Title: "7 Morning Habits That Changed My Life", ViewCount: 1000},
				Title: core.TitleAnalysis{
					EffectivenessScore: 49,
					Patterns:           []string{"number_list", "transformation"},
				},
				Engagement: core.EngagementPrediction{Score: 42.5, Tier: core.TierAverage},
			},
		},
		Metrics:   &core.ChannelMetrics{AverageEngagementScore: 42.5},
		Aggregate: &core.PatternAggregate{CommonPatterns: map[string]int{"number_list": 1}, VideosAnalyzed: 1},
	}

	out := Report(report)
	for _, want := range []string{"Test Channel", "7 Morning Habits", "number_list, transformation", "Average"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVideo_IncludesHookAndSuggestions(t *testing.T) {
	va := core.VideoAnalysis{
		Video: core.VideoRecord{ID: "v1", Title: "What Is Quantum Computing", ViewCount: 10},
		Title: core.TitleAnalysis{
			EffectivenessScore: 40,
			Suggestions:        []string{"Add power words like 'proven', 'essential' or 'secret'"},
		},
		Hook:       &core.HookAnalysis{HookText: "What Is Quantum Computing", EffectivenessScore: 25},
		Engagement: core.EngagementPrediction{Score: 30, Tier: core.TierUnderperforming},
	}

	out := Video(1, va)
	if !strings.Contains(out, "hook 25.00") {
		t.Errorf("output missing hook line:\n%s", out)
	}
	if !strings.Contains(out, "Add power words") {
		t.Errorf("output missing suggestion:\n%s", out)
	}
}
