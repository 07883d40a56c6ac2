// Package config provides configuration types, defaults and loading for the
// address book.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/addressbook/internal/log"
)

// Config holds all configuration options.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Pattern PatternConfig `mapstructure:"pattern"`
	Fixture FixtureConfig `mapstructure:"fixture"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`  // empty logs to stderr
	Level   string `mapstructure:"level"` // debug | info | warn | error
}

// PatternConfig controls email pattern compilation and evaluation.
type PatternConfig struct {
	// CacheTTL is how long a compiled pattern stays cached after its last
	// use. Zero disables the cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// CleanupInterval is how often expired patterns are purged.
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`

	// MatchTimeout bounds a single match against one email. Zero means no bound.
	MatchTimeout time.Duration `mapstructure:"match_timeout"`
}

// CacheEnabled reports whether compiled patterns are cached.
func (p PatternConfig) CacheEnabled() bool {
	return p.CacheTTL > 0
}

// FixtureConfig points at an optional YAML document loaded at startup.
type FixtureConfig struct {
	Path string `mapstructure:"path"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Enabled: false,
			Path:    "",
			Level:   "info",
		},
		Pattern: PatternConfig{
			CacheTTL:        10 * time.Minute,
			CleanupInterval: 30 * time.Minute,
			MatchTimeout:    time.Second,
		},
	}
}

// Validate checks a configuration for values that cannot work.
func Validate(cfg Config) error {
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if cfg.Pattern.CacheTTL < 0 {
		return fmt.Errorf("pattern.cache_ttl must not be negative, got %s", cfg.Pattern.CacheTTL)
	}
	if cfg.Pattern.CacheEnabled() && cfg.Pattern.CleanupInterval <= 0 {
		return fmt.Errorf("pattern.cleanup_interval must be positive when the cache is enabled, got %s", cfg.Pattern.CleanupInterval)
	}
	if cfg.Pattern.MatchTimeout < 0 {
		return fmt.Errorf("pattern.match_timeout must not be negative, got %s", cfg.Pattern.MatchTimeout)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Address book configuration

# Structured logging
log:
  enabled: false   # Logging is off unless enabled
  path: ""         # Log file; empty writes to stderr
  level: info      # debug | info | warn | error

# Email pattern engine
pattern:
  cache_ttl: 10m          # Keep compiled patterns this long after last use (0 disables caching)
  cleanup_interval: 30m   # Purge expired patterns this often
  match_timeout: 1s       # Bound a single match (0 means unbounded)

# Optional YAML fixture loaded at startup
fixture:
  path: ""
  # Example:
  # path: ./testdata/painters.yaml
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
