package handlers

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
)

// NewSearchCmd creates the topic search analysis command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Analyze the top videos for a topic",
		Long: `Search YouTube for a topic and score the top results as one batch. Shows
which title patterns dominate the topic and what the best performers have
in common.

Requires YOUTUBE_API_KEY.

Examples:
  ytca search "morning routine"
  ytca search productivity tips --max-videos 40 --deep`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "))
		},
	}

	cmd.Flags().Int("max-videos", 0, "videos to analyze (default from config: 25)")
	cmd.Flags().Bool("deep", false, "include hook analysis per video")
	cmd.Flags().Bool("sentiment", false, "fetch top comments and include the sentiment term")
	cmd.Flags().Bool("no-cache", false, "bypass the report cache")

	return cmd
}

func runSearch(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	service, cleanup, err := buildService(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	report, cached, err := service.AnalyzeTopic(ctx, query, defaultOptions(cmd))
	if err != nil {
		logger.Error("Topic analysis failed", err, "query", query)
		return err
	}

	return printReport(cmd, report, cached)
}
