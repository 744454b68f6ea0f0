package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/cubesync"
	"github.com/agentstation/cubesync/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "CUBESYNC"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Pipeline configuration
	CollectionPath      string
	ManifestPath        string
	FailurePath         string
	CheckpointInterval  int
	StatusInterval      int
	Delay               time.Duration
	ManifestHeaderLines int
	ManifestBodyLines   int
	LookupURL           string
	AtomicWrites        bool
	DryRun              bool

	// Logging configuration. LogLevel comes from --log-level only;
	// EnvLogLevel from LOG_LEVEL and sits below -v/-q in precedence.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CUBESYNC_*)
// 3. .env files
// 4. Config file (configFile, or .cubesync.yaml in $HOME or .)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.BindEnv("no_color", EnvPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, errors.NewConfigError("env", "binding NO_COLOR", err)
	}

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cubesync")

		// A missing default config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "reading .cubesync.yaml", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CollectionPath:      v.GetString("collection_path"),
		ManifestPath:        v.GetString("manifest_path"),
		FailurePath:         v.GetString("failure_path"),
		CheckpointInterval:  v.GetInt("checkpoint_interval"),
		StatusInterval:      v.GetInt("status_interval"),
		Delay:               v.GetDuration("delay"),
		ManifestHeaderLines: v.GetInt("manifest_header_lines"),
		ManifestBodyLines:   v.GetInt("manifest_body_lines"),
		LookupURL:           v.GetString("lookup_url"),
		AtomicWrites:        v.GetBool("atomic_writes"),
		DryRun:              v.GetBool("dry_run"),

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}

	return config, nil
}

// setDefaults seeds viper with the pipeline defaults.
func setDefaults(v *viper.Viper) {
	d := cubesync.DefaultConfig()
	v.SetDefault("collection_path", d.CollectionPath)
	v.SetDefault("manifest_path", d.ManifestPath)
	v.SetDefault("failure_path", d.FailurePath)
	v.SetDefault("checkpoint_interval", d.CheckpointInterval)
	v.SetDefault("status_interval", d.StatusInterval)
	v.SetDefault("delay", d.PerItemDelay)
	v.SetDefault("manifest_header_lines", d.ManifestHeaderLines)
	v.SetDefault("manifest_body_lines", d.ManifestBodyLines)
	v.SetDefault("lookup_url", d.LookupURL)
	v.SetDefault("atomic_writes", d.AtomicWrites)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// SyncConfig converts the application configuration into a pipeline config.
func (c *Config) SyncConfig() cubesync.Config {
	return cubesync.Config{
		CollectionPath:      c.CollectionPath,
		ManifestPath:        c.ManifestPath,
		FailurePath:         c.FailurePath,
		CheckpointInterval:  c.CheckpointInterval,
		StatusInterval:      c.StatusInterval,
		PerItemDelay:        c.Delay,
		ManifestHeaderLines: c.ManifestHeaderLines,
		ManifestBodyLines:   c.ManifestBodyLines,
		LookupURL:           c.LookupURL,
		AtomicWrites:        c.AtomicWrites,
		DryRun:              c.DryRun,
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
