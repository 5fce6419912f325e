// Package config loads the service configuration from defaults, an optional config file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

// EnvPrefix is prepended to every environment variable the service reads.
const EnvPrefix = "RESUME_SCORER"

// DefaultConfigName is looked up in the working directory when no config file is given.
const DefaultConfigName = "resume_scorer"

// Config represents the complete service configuration.
type Config struct {
	Port           int             `mapstructure:"port" json:"port"`
	CORSOrigins    []string        `mapstructure:"cors_origins" json:"cors_origins"`
	MaxUploadBytes int64           `mapstructure:"max_upload_bytes" json:"max_upload_bytes"`
	MaxTextBytes   int64           `mapstructure:"max_text_bytes" json:"max_text_bytes"`
	ExtractTimeout time.Duration   `mapstructure:"extract_timeout" json:"extract_timeout"`
	VocabularyFile string          `mapstructure:"vocabulary_file" json:"vocabulary_file"`
	Log            LogConfig       `mapstructure:"log" json:"log"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
}

// LogConfig selects the logger encoding and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// RateLimitConfig mirrors ratelimit.Config in a file- and env-friendly shape.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled" json:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" json:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window" json:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" json:"cleanup_interval"`
	ScoreLimit      int           `mapstructure:"score_limit" json:"score_limit"`
	ScoreWindow     time.Duration `mapstructure:"score_window" json:"score_window"`
	ScoreBurst      int           `mapstructure:"score_burst" json:"score_burst"`
	Whitelist       []string      `mapstructure:"whitelist" json:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist" json:"blacklist"`
}

var defaults = map[string]any{
	"port":                        8000,
	"cors_origins":                []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	"max_upload_bytes":            5 << 20,
	"max_text_bytes":              256 << 10,
	"extract_timeout":             10 * time.Second,
	"vocabulary_file":             "",
	"log.json":                    false,
	"log.debug":                   false,
	"rate_limit.enabled":          true,
	"rate_limit.default_limit":    1000,
	"rate_limit.default_window":   time.Minute,
	"rate_limit.cleanup_interval": 5 * time.Minute,
	"rate_limit.score_limit":      60,
	"rate_limit.score_window":     time.Minute,
	"rate_limit.score_burst":      10,
	"rate_limit.whitelist":        []string{},
	"rate_limit.blacklist":        []string{},
}

// New returns a viper instance with defaults and environment bindings applied.
// Commands bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Bare names kept for deployments that predate the prefix.
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	_ = v.BindEnv("cors_origins", EnvPrefix+"_CORS_ORIGINS", "CORS_ORIGINS")

	return v
}

// Load reads the config file at path (or resume_scorer.{yaml,json} in the working
// directory when path is empty and such a file exists) into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.CORSOrigins = cleanList(cfg.CORSOrigins)
	cfg.RateLimit.Whitelist = cleanList(cfg.RateLimit.Whitelist)
	cfg.RateLimit.Blacklist = cleanList(cfg.RateLimit.Blacklist)

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be positive")
	}
	if c.MaxTextBytes <= 0 {
		return fmt.Errorf("config error: 'max_text_bytes' must be positive")
	}
	if c.ExtractTimeout <= 0 {
		return fmt.Errorf("config error: 'extract_timeout' must be positive")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit < 0 || c.RateLimit.ScoreLimit < 0 || c.RateLimit.ScoreBurst < 0 {
			return fmt.Errorf("config error: rate limits must be non-negative")
		}
		if c.RateLimit.DefaultWindow <= 0 || c.RateLimit.ScoreWindow <= 0 {
			return fmt.Errorf("config error: rate limit windows must be positive")
		}
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// RateLimiter converts the rate limit section into a limiter configuration.
func (c *Config) RateLimiter() *ratelimit.Config {
	rl := c.RateLimit
	return &ratelimit.Config{
		Enabled:         rl.Enabled,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.DefaultWindow,
		CleanupInterval: rl.CleanupInterval,
		IdleTTL:         ratelimit.DefaultIdleTTL,
		Whitelist:       ratelimit.IPSet(rl.Whitelist),
		Blacklist:       ratelimit.IPSet(rl.Blacklist),
		EndpointConfigs: ratelimit.ScoreEndpointConfigs(rl.ScoreLimit, rl.ScoreWindow, rl.ScoreBurst),
	}
}

// cleanList trims entries, splits comma-joined values and drops blanks.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
