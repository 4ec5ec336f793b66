package handlers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/services"
)

// NewPatternsCmd creates the offline title scoring command
func NewPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns <title...>",
		Short: "Score a title offline",
		Long: `Detect title patterns and compute the effectiveness score for a bare
title. Runs entirely offline; no API key or network needed.

Examples:
  ytca patterns "7 Morning Habits That Changed My Life"
  ytca patterns --deep "How I Built a SaaS in 30 Days"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(cmd, strings.Join(args, " "))
		},
	}

	cmd.Flags().Bool("deep", false, "include hook analysis")

	return cmd
}

func runPatterns(cmd *cobra.Command, title string) error {
	deep, _ := cmd.Flags().GetBool("deep")

	// Pure scoring, no providers or cache to wire.
	service := services.NewAnalysisService(nil, nil, nil, 0)

	analysis, err := service.DetectPatterns(title, deep)
	if err != nil {
		return err
	}

	return printAnalysis(cmd, analysis)
}
