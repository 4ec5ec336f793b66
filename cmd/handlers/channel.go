package handlers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
)

// NewChannelCmd creates the channel analysis command
func NewChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel <@handle-or-id>",
		Short: "Analyze a channel's recent uploads",
		Long: `Fetch a channel's most recent uploads via the YouTube Data API and score
every video: title patterns, description SEO and engagement prediction.
The batch report adds common patterns, top topics, channel metrics and
ready-to-use templates derived from the best performers.

Requires YOUTUBE_API_KEY.

Examples:
  ytca channel @mkbhd
  ytca channel UCBJycsmduvYEL83R_U4JriQ --max-videos 50 --deep
  ytca channel @veritasium --sentiment --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChannel(cmd, args[0])
		},
	}

	cmd.Flags().Int("max-videos", 0, "videos to analyze (default from config: 25)")
	cmd.Flags().Bool("deep", false, "include hook analysis per video")
	cmd.Flags().Bool("sentiment", false, "fetch top comments and include the sentiment term")
	cmd.Flags().Bool("no-cache", false, "bypass the report cache")

	return cmd
}

func runChannel(cmd *cobra.Command, handleOrID string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	service, cleanup, err := buildService(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	report, cached, err := service.AnalyzeChannel(ctx, handleOrID, defaultOptions(cmd))
	if err != nil {
		logger.Error("Channel analysis failed", err, "channel", handleOrID)
		return err
	}

	return printReport(cmd, report, cached)
}
