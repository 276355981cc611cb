// Package config provides configuration management for ifccheck using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/boscotek/ifccheck/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "ifccheck"

// Config represents the top-level configuration structure.
type Config struct {
	// Profile is an optional path to a rule profile file (YAML or TOML).
	// Empty means the built-in Boscotek rules.
	Profile string `mapstructure:"profile"`

	// LogFormat selects the diagnostic log format: "text" or "json".
	LogFormat string `mapstructure:"log_format"`

	// Color controls colorized report output: "auto", "always", "never".
	Color string `mapstructure:"color"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support, e.g. IFCCHECK_PROFILE
	viper.SetEnvPrefix("IFCCHECK")
	viper.AutomaticEnv()

	viper.SetDefault("profile", "")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("color", "auto")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load with no file present: defaults apply.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
