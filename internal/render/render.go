// Package render formats batch reports for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginTop(1)
)

// Report renders a full batch report.
func Report(report *core.BatchReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(header(report)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Analyzed %d videos (%d skipped) | report %s",
		report.VideosAnalyzed, report.RecordsSkipped, report.ID)))
	b.WriteString("\n")

	if report.VideosAnalyzed == 0 {
		b.WriteString(warnStyle.Render("\nNo video produced a valid analysis."))
		b.WriteString("\n")
		return b.String()
	}

	if report.Metrics != nil {
		b.WriteString(renderMetrics(report.Metrics))
	}
	if report.Aggregate != nil {
		b.WriteString(renderAggregate(report.Aggregate))
	}

	b.WriteString(sectionStyle.Render("Videos"))
	b.WriteString("\n")
	for i, va := range report.Videos {
		b.WriteString(Video(i+1, va))
	}

	if report.Insights != nil {
		b.WriteString(renderInsights(report.Insights))
	}

	return b.String()
}

func header(report *core.BatchReport) string {
	switch {
	case report.Channel != nil:
		return fmt.Sprintf("Channel analysis: %s", report.Channel.Name)
	case report.Query != "":
		return fmt.Sprintf("Topic analysis: %q", report.Query)
	default:
		return "Video analysis"
	}
}

// Video renders one per-video entry.
func Video(rank int, va core.VideoAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s\n", rank, titleStyle.Render(va.Video.Title))
	fmt.Fprintf(&b, "   %s  engagement %s (%s)  title %s  seo %s  views %d\n",
		labelStyle.Render(va.Video.ID),
		scoreStyle(va.Engagement.Score).Render(fmt.Sprintf("%.2f", va.Engagement.Score)),
		string(va.Engagement.Tier),
		scoreStyle(float64(va.Title.EffectivenessScore)).Render(fmt.Sprintf("%d", va.Title.EffectivenessScore)),
		scoreStyle(float64(va.SEO.Score)).Render(fmt.Sprintf("%d", va.SEO.Score)),
		va.Video.ViewCount,
	)

	if len(va.Title.Patterns) > 0 {
		fmt.Fprintf(&b, "   patterns: %s\n", strings.Join(va.Title.Patterns, ", "))
	}
	if va.Hook != nil {
		fmt.Fprintf(&b, "   hook %.2f: %q\n", va.Hook.EffectivenessScore, va.Hook.HookText)
	}
	for _, s := range va.Title.Suggestions {
		fmt.Fprintf(&b, "   %s %s\n", warnStyle.Render("→"), s)
	}

	return b.String()
}

func renderMetrics(m *core.ChannelMetrics) string {
	content := fmt.Sprintf(
		"avg engagement %.2f | avg title %.2f | avg seo %.2f\ntotal views %d | avg views %d | engagement rate %.4f",
		m.AverageEngagementScore,
		m.AverageTitleEffectiveness,
		m.AverageSEOScore,
		m.TotalViewsAnalyzed,
		m.AverageViewsPerVideo,
		m.OverallEngagementRate,
	)
	return boxStyle.Render(content) + "\n"
}

func renderAggregate(agg *core.PatternAggregate) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Patterns"))
	b.WriteString("\n")
	for _, pp := range agg.PerformancePatterns {
		fmt.Fprintf(&b, "  %-16s %d videos, avg %d views\n", pp.Pattern, pp.VideoCount, pp.AvgViews)
	}

	if len(agg.MainTopics) > 0 {
		topics := make([]string, 0, len(agg.MainTopics))
		for _, t := range agg.MainTopics {
			topics = append(topics, fmt.Sprintf("%s(%d)", t.Topic, t.Count))
		}
		fmt.Fprintf(&b, "  topics: %s\n", strings.Join(topics, " "))
	}
	fmt.Fprintf(&b, "  avg title length %.2f words, consistency %.2f%%\n",
		agg.AverageTitleLength, agg.ContentConsistency)

	return b.String()
}

func renderInsights(ins *core.ViralInsights) string {
	var b strings.Builder

	if len(ins.ContentTemplates.ReadyToUseTemplates) > 0 {
		b.WriteString(sectionStyle.Render("Templates"))
		b.WriteString("\n")
		for _, t := range ins.ContentTemplates.ReadyToUseTemplates {
			fmt.Fprintf(&b, "  %s\n    %s\n", goodStyle.Render(t.Name), t.FillIn)
		}
	}

	if len(ins.ContentTemplates.TitleStarters) > 0 {
		fmt.Fprintf(&b, "  starters: %s\n", strings.Join(ins.ContentTemplates.TitleStarters, " | "))
	}

	if len(ins.ViralRecipes.Recipes) > 0 {
		b.WriteString(sectionStyle.Render("Recipes"))
		b.WriteString("\n")
		for _, r := range ins.ViralRecipes.Recipes {
			fmt.Fprintf(&b, "  %s (%s)\n    %s\n", goodStyle.Render(r.Name), r.ExpectedCTR, r.Formula)
			if title, ok := r.ConcreteExample["title"]; ok {
				fmt.Fprintf(&b, "    e.g. %q (%s views)\n", title, r.ConcreteExample["view_count"])
			}
		}
	}

	if len(ins.ViralRecipes.QuickWins) > 0 {
		b.WriteString(sectionStyle.Render("Quick wins"))
		b.WriteString("\n")
		for _, qw := range ins.ViralRecipes.QuickWins {
			fmt.Fprintf(&b, "  %s %s (%s)\n", warnStyle.Render("→"), qw.Tip, qw.Impact)
		}
	}

	return b.String()
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return goodStyle
	case score >= 40:
		return warnStyle
	default:
		return badStyle
	}
}
