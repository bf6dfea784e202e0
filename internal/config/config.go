package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level timesight configuration.
type Config struct {
	DBPath     string     `mapstructure:"db_path"`
	Browsers   []string   `mapstructure:"browsers"`
	Focus      Focus      `mapstructure:"focus"`
	Categories Categories `mapstructure:"categories"`
	Tracker    Tracker    `mapstructure:"tracker"`
	Output     Output     `mapstructure:"output"`
}

// Focus tunes the focus-session detector.
type Focus struct {
	// MaxGapSeconds is the largest sample gap that still extends a session.
	MaxGapSeconds int `mapstructure:"max_gap_seconds"`
	// MinSessionSeconds is the shortest session worth reporting.
	MinSessionSeconds int `mapstructure:"min_session_seconds"`
}

// Categories sets the daily active-time cutoffs for day classification.
type Categories struct {
	ProductiveSeconds int `mapstructure:"productive_seconds"`
	NeutralSeconds    int `mapstructure:"neutral_seconds"`
}

// Tracker tunes the capture loop.
type Tracker struct {
	PollSeconds          int `mapstructure:"poll_seconds"`
	FlushSeconds         int `mapstructure:"flush_seconds"`
	IdleThresholdSeconds int `mapstructure:"idle_threshold_seconds"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("browsers", DefaultBrowsers)
	v.SetDefault("focus.max_gap_seconds", DefaultFocus.MaxGapSeconds)
	v.SetDefault("focus.min_session_seconds", DefaultFocus.MinSessionSeconds)
	v.SetDefault("categories.productive_seconds", DefaultCategories.ProductiveSeconds)
	v.SetDefault("categories.neutral_seconds", DefaultCategories.NeutralSeconds)
	v.SetDefault("tracker.poll_seconds", DefaultTracker.PollSeconds)
	v.SetDefault("tracker.flush_seconds", DefaultTracker.FlushSeconds)
	v.SetDefault("tracker.idle_threshold_seconds", DefaultTracker.IdleThresholdSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)

	return &cfg, nil
}
