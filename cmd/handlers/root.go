package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytca",
		Short: "ytca scores YouTube titles, descriptions and channels for content patterns.",
		Long: `ytca analyzes YouTube content for the patterns that drive clicks:
title formats, hooks, description SEO and engagement signals.

It can score a bare title offline, a single video, a channel's recent
uploads or a topic search, and reports proven templates and quick wins
derived from the best-performing videos in the batch.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ytca.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "print the raw JSON report instead of the rendered view")

	rootCmd.AddCommand(NewChannelCmd())
	rootCmd.AddCommand(NewVideoCmd())
	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewPatternsCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewCacheCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.SetLevel(cfg.Logging.Level)

	if cfg.App.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfg.App.ConfigFile)
	}
}
