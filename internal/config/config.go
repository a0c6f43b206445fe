// Package config loads krds settings using Viper from a .krds.yml file,
// KRDS_ prefixed environment variables and command-line flags.
//
// Settings cover where the navigation file lives, which route is current,
// the depth limit enforced by validation, logging, and the debounce window
// used by the file watcher.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/krds/internal/errors"
	"github.com/conneroisu/krds/internal/logging"
	"github.com/conneroisu/krds/internal/navtree"
)

const (
	DefaultNavFile  = "navigation.yml"
	DefaultDebounce = 300 * time.Millisecond

	// MaxDepthLimit bounds nav.max_depth.
	MaxDepthLimit = 8
)

type Config struct {
	Nav   NavConfig   `mapstructure:"nav"`
	Log   LogConfig   `mapstructure:"log"`
	Watch WatchConfig `mapstructure:"watch"`
}

type NavConfig struct {
	File     string `mapstructure:"file"`
	Current  string `mapstructure:"current"`
	MaxDepth int    `mapstructure:"max_depth"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// EnvPrefix is the prefix of environment overrides, e.g. KRDS_NAV_FILE.
const EnvPrefix = "KRDS"

// Prepare registers defaults and environment overrides on v. Environment
// variables only reach Unmarshal for keys viper already knows about, so
// every key gets a default here.
func Prepare(v *viper.Viper) {
	v.SetDefault("nav.file", DefaultNavFile)
	v.SetDefault("nav.current", "")
	v.SetDefault("nav.max_depth", navtree.MaxDepth)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("watch.debounce", DefaultDebounce)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals the global viper state, applies defaults for anything
// unset and validates the result.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "cannot decode configuration").
			WithContext("cause", err.Error())
	}

	if config.Nav.File == "" {
		config.Nav.File = DefaultNavFile
	}
	if !v.IsSet("nav.max_depth") {
		config.Nav.MaxDepth = navtree.MaxDepth
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if !v.IsSet("watch.debounce") {
		config.Watch.Debounce = DefaultDebounce
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoggerConfig derives the logger settings from the log section.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	lc.Level, _ = logging.ParseLevel(c.Log.Level)
	lc.Format = c.Log.Format

	return lc
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validatePath(config.Nav.File); err != nil {
		return errors.NewConfigError(errors.ErrCodePathTraversal,
			fmt.Sprintf("invalid nav.file: %v", err)).WithFile(config.Nav.File)
	}

	if config.Nav.MaxDepth < 1 || config.Nav.MaxDepth > MaxDepthLimit {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("nav.max_depth %d is not in valid range 1-%d", config.Nav.MaxDepth, MaxDepthLimit))
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("log.level: %v", err))
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("log.format %q must be text or json", config.Log.Format))
	}

	if config.Watch.Debounce < 0 {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("watch.debounce %s must not be negative", config.Watch.Debounce))
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
