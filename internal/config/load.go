package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/addressbook/internal/log"
)

// EnvPrefix is prepended to environment overrides, e.g. ADDRESSBOOK_LOG_LEVEL.
const EnvPrefix = "ADDRESSBOOK"

// Load builds a Config from defaults, the YAML file at path (when non-empty)
// and ADDRESSBOOK_* environment variables, in increasing precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "read config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides apply even when
// the file omits them.
func setDefaults(v *viper.Viper, defaults Config) {
	v.SetDefault("log.enabled", defaults.Log.Enabled)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("pattern.cache_ttl", defaults.Pattern.CacheTTL)
	v.SetDefault("pattern.cleanup_interval", defaults.Pattern.CleanupInterval)
	v.SetDefault("pattern.match_timeout", defaults.Pattern.MatchTimeout)
	v.SetDefault("fixture.path", defaults.Fixture.Path)
}
