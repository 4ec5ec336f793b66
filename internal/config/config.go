package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	YouTube  YouTube  `mapstructure:"youtube"`
	Analysis Analysis `mapstructure:"analysis"`
	Cache    Cache    `mapstructure:"cache"`
	Server   Server   `mapstructure:"server"`
	Logging  Logging  `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	DataDir    string `mapstructure:"data_dir"`
	ConfigFile string `mapstructure:"config_file"`
}

// YouTube holds metadata provider configuration
type YouTube struct {
	APIKey      string `mapstructure:"api_key"`
	Region      string `mapstructure:"region"`       // Region code passed to search requests
	Timeout     string `mapstructure:"timeout"`      // Per-request timeout
	MaxComments int    `mapstructure:"max_comments"` // Top-level comments fetched per video
}

// Analysis holds engine configuration
type Analysis struct {
	MaxVideos        int  `mapstructure:"max_videos"`        // Records fetched per channel or topic request
	MaxConcurrency   int  `mapstructure:"max_concurrency"`   // Concurrent per-video workers
	Deep             bool `mapstructure:"deep"`              // Include hook analysis by default
	CommentSentiment bool `mapstructure:"comment_sentiment"` // Fetch comments and feed the sentiment term
}

// Cache holds report cache configuration
type Cache struct {
	Directory string `mapstructure:"directory"`
	TTL       string `mapstructure:"ttl"`     // How long cached reports stay fresh
	Timeout   string `mapstructure:"timeout"` // Database open/query timeout
}

// Server holds HTTP API configuration
type Server struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    string   `mapstructure:"read_timeout"`
	WriteTimeout   string   `mapstructure:"write_timeout"`
	RequestTimeout string   `mapstructure:"request_timeout"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS origins; empty disables CORS
}

// Logging holds logging configuration
type Logging struct {
	Level string `mapstructure:"level"`
}

var globalConfig *Config

// Load loads the configuration from .env, a config file and the environment.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".ytca")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", ".ytca-cache")

	viper.SetDefault("youtube.region", "US")
	viper.SetDefault("youtube.timeout", "15s")
	viper.SetDefault("youtube.max_comments", 50)

	viper.SetDefault("analysis.max_videos", 25)
	viper.SetDefault("analysis.max_concurrency", 5)
	viper.SetDefault("analysis.deep", false)
	viper.SetDefault("analysis.comment_sentiment", false)

	viper.SetDefault("cache.directory", ".ytca-cache")
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.timeout", "5s")

	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8200)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "60s")
	viper.SetDefault("server.request_timeout", "120s")
	viper.SetDefault("server.allowed_origins", []string{})

	viper.SetDefault("logging.level", "info")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	bindEnvKeys("youtube.api_key", []string{
		"YOUTUBE_API_KEY",
		"GOOGLE_API_KEY",
		"YT_API_KEY",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"YTCA_DEBUG",
	})

	bindEnvKeys("logging.level", []string{
		"YTCA_LOG_LEVEL",
		"LOG_LEVEL",
	})

	bindEnvKeys("cache.directory", []string{
		"YTCA_CACHE_DIR",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig expands paths and checks duration strings parse.
func postProcessConfig(config *Config) error {
	if config.Cache.Directory != "" {
		config.Cache.Directory = expandPath(config.Cache.Directory)
	}
	if config.App.DataDir != "" {
		config.App.DataDir = expandPath(config.App.DataDir)
	}

	durations := map[string]string{
		"youtube.timeout":        config.YouTube.Timeout,
		"cache.ttl":              config.Cache.TTL,
		"cache.timeout":          config.Cache.Timeout,
		"server.read_timeout":    config.Server.ReadTimeout,
		"server.write_timeout":   config.Server.WriteTimeout,
		"server.request_timeout": config.Server.RequestTimeout,
	}

	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// validateConfig ensures configuration values are usable. The API key is not
// required here: the keyless watch-page fallback works without one, and
// commands that do need the Data API report it at call time.
func validateConfig(config *Config) error {
	var errs []string

	if config.Analysis.MaxVideos < 1 {
		errs = append(errs, "analysis.max_videos must be at least 1")
	}
	if config.Analysis.MaxConcurrency < 1 {
		errs = append(errs, "analysis.max_concurrency must be at least 1")
	}
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port out of range: %d", config.Server.Port))
	}
	if config.YouTube.MaxComments < 0 {
		errs = append(errs, "youtube.max_comments must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// Convenience getters for commonly used configuration values
func GetApp() App           { return Get().App }
func GetYouTube() YouTube   { return Get().YouTube }
func GetAnalysis() Analysis { return Get().Analysis }
func GetCache() Cache       { return Get().Cache }
func GetServer() Server     { return Get().Server }
func GetLogging() Logging   { return Get().Logging }

// Specific convenience getters for frequently accessed values
func GetAPIKey() string         { return Get().YouTube.APIKey }
func GetCacheDirectory() string { return Get().Cache.Directory }
func IsDebugMode() bool         { return Get().App.Debug }

// HasAPIKey returns true when a usable Data API key is configured.
func HasAPIKey() bool {
	return isValidAPIKey(Get().YouTube.APIKey)
}

// CacheTTL returns the parsed cache TTL, falling back to an hour when the
// string is empty or broken (Load already validated non-empty values).
func CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(Get().Cache.TTL)
	if err != nil || ttl <= 0 {
		return time.Hour
	}
	return ttl
}

// isValidAPIKey checks if an API key is valid (not empty and not a placeholder)
func isValidAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	placeholders := []string{
		"your-api-key", "your-youtube-key", "YOUR_API_KEY",
		"PLACEHOLDER", "TODO", "CHANGE_ME",
	}

	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			return false
		}
	}

	return true
}

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
