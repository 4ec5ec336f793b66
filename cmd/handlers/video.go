package handlers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/youtube"
)

// NewVideoCmd creates the single-video analysis command
func NewVideoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video <url-or-id>",
		Short: "Analyze a single video",
		Long: `Score one video's title, hook and description. Uses the Data API when
YOUTUBE_API_KEY is set; otherwise falls back to scraping the public watch
page, which carries no like or comment counts.

Without batch context the engagement prediction redistributes the
historical-performance weight over the remaining terms.

Examples:
  ytca video https://www.youtube.com/watch?v=dQw4w9WgXcQ
  ytca video dQw4w9WgXcQ --deep --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideo(cmd, args[0])
		},
	}

	cmd.Flags().Bool("deep", false, "include hook analysis")
	cmd.Flags().Bool("sentiment", false, "fetch top comments and include the sentiment term")

	return cmd
}

func runVideo(cmd *cobra.Command, urlOrID string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	videoID, err := youtube.ExtractVideoID(urlOrID)
	if err != nil {
		return err
	}

	service, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	analysis, err := service.AnalyzeVideo(ctx, videoID, defaultOptions(cmd))
	if err != nil {
		logger.Error("Video analysis failed", err, "video_id", videoID)
		return err
	}

	return printAnalysis(cmd, analysis)
}
