package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the EventApp server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// DataDir is the directory holding the durable key-value store.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	// LogLevel is the default log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// SessionKey is the key used to encrypt session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds. Zero keeps
	// the session cookie volatile: it disappears when the browser closes.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// ExploreRefreshSeconds is the interval of the public feed refresh job.
	ExploreRefreshSeconds int `yaml:"explore_refresh_seconds" mapstructure:"explore_refresh_seconds"`
	// Cache holds the feed cache configuration.
	Cache *CacheConfig `yaml:"cache" mapstructure:"cache"`
}

// CacheConfig holds the feed cache configuration.
type CacheConfig struct {
	// Type selects the cache backend: "memory" or "redis".
	Type string `yaml:"type" mapstructure:"type"`
	// RedisURL is the redis address, required when Type is "redis".
	RedisURL string `yaml:"redis_url" mapstructure:"redis_url"`
}

// Load reads the configuration from the given file, or from the default
// search locations when path is empty. Environment variables with the
// EVENTAPP_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("EVENTAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.eventapp")
		v.AddConfigPath("/etc/eventapp")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

const defaultSessionKey = "eventapp-dev-session-key"

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "127.0.0.1:8080")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_key", defaultSessionKey)
	v.SetDefault("session_max_age", 0)
	v.SetDefault("explore_refresh_seconds", 30)
	v.SetDefault("cache.type", "memory")
}

func validateConfig(c *Config) error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.ExploreRefreshSeconds <= 0 {
		return fmt.Errorf("explore_refresh_seconds must be positive")
	}
	if c.Cache == nil {
		c.Cache = &CacheConfig{Type: "memory"}
	}
	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required when cache.type is redis")
		}
	default:
		return fmt.Errorf("unknown cache.type %q", c.Cache.Type)
	}
	if c.SessionKey == defaultSessionKey {
		log.Warn("using the default session key, set session_key in production")
	}
	return nil
}
