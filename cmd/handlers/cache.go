package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
	"github.com/aref-vc/youtube-content-analyzer/internal/store"
)

// NewCacheCmd creates the cache management command
func NewCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the report cache",
		Long:  `Inspect, clean and clear the SQLite cache of finished analysis reports.`,
	}

	cacheCmd.AddCommand(newCacheStatsCmd())
	cacheCmd.AddCommand(newCacheClearCmd())
	cacheCmd.AddCommand(newCacheCleanupCmd())

	return cacheCmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics and storage information",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCacheStats(); err != nil {
				logger.Error("Failed to get cache stats", err)
				os.Exit(1)
			}
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached reports",
		Run: func(cmd *cobra.Command, args []string) {
			confirm, _ := cmd.Flags().GetBool("confirm")
			if err := runCacheClear(confirm); err != nil {
				logger.Error("Failed to clear cache", err)
				os.Exit(1)
			}
		},
	}

	clearCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	return clearCmd
}

func newCacheCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove reports older than the configured TTL",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCacheCleanup(); err != nil {
				logger.Error("Failed to clean up cache", err)
				os.Exit(1)
			}
		},
	}
}

func openCacheStore() (*store.Store, error) {
	cacheStore, err := store.NewStore(config.GetCacheDirectory())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache store: %w", err)
	}
	return cacheStore, nil
}

func runCacheStats() error {
	cacheStore, err := openCacheStore()
	if err != nil {
		return err
	}
	defer closeQuietly(cacheStore)

	stats, err := cacheStore.GetCacheStats()
	if err != nil {
		return fmt.Errorf("failed to get cache statistics: %w", err)
	}

	fmt.Println("Cache statistics")
	fmt.Println("================")
	fmt.Printf("Reports cached: %d\n", stats.ReportCount)
	fmt.Printf("Cache size:     %.2f MB\n", float64(stats.CacheSize)/1024/1024)
	fmt.Printf("Last updated:   %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))

	return nil
}

func runCacheClear(confirm bool) error {
	if !confirm {
		fmt.Print("This will remove all cached reports. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" && response != "yes" {
			fmt.Println("Cache clear cancelled")
			return nil
		}
	}

	cacheStore, err := openCacheStore()
	if err != nil {
		return err
	}
	defer closeQuietly(cacheStore)

	if err := cacheStore.ClearCache(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Println("Cache cleared")
	return nil
}

func runCacheCleanup() error {
	cacheStore, err := openCacheStore()
	if err != nil {
		return err
	}
	defer closeQuietly(cacheStore)

	if err := cacheStore.CleanupOldCache(config.CacheTTL()); err != nil {
		return fmt.Errorf("failed to clean up cache: %w", err)
	}

	fmt.Println("Stale reports removed")
	return nil
}

func closeQuietly(s *store.Store) {
	if err := s.Close(); err != nil {
		logger.Error("Failed to close cache store", err)
	}
}
