// Package config provides configuration loading and validation for the resume matcher.
//
// Values are layered by viper: built-in defaults, then an optional YAML or JSON
// config file, then environment variables (nested keys use underscores, e.g.
// rate_limit.enabled -> RATE_LIMIT_ENABLED), then bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultMaxUploadBytes caps résumé uploads at 5 MiB.
const DefaultMaxUploadBytes int64 = 5 << 20

// DefaultAllowedOrigin is the local development frontend.
const DefaultAllowedOrigin = "http://localhost:3000"

// Config is the complete service configuration.
type Config struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	CatalogPath     string        `mapstructure:"catalog_path"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" validate:"dive,required"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	Log             Log           `mapstructure:"log"`
	RateLimit       RateLimit     `mapstructure:"rate_limit"`
}

// Log configures the structured logger.
type Log struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// RateLimit configures per-client token buckets.
type RateLimit struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" validate:"min=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window" validate:"required_if=Enabled true"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"min=0"`
	CheckLimit      int           `mapstructure:"check_limit" validate:"min=0"`
	CheckWindow     time.Duration `mapstructure:"check_window" validate:"required_if=Enabled true"`
	CheckBurst      int           `mapstructure:"check_burst" validate:"min=0"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

var validate = validator.New()

// NewViper returns a viper instance with defaults registered and environment
// variables bound for every key.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("catalog_path", "")
	v.SetDefault("allowed_origins", []string{DefaultAllowedOrigin})
	v.SetDefault("max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("shutdown_timeout", 30*time.Second)

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.check_limit", 30)
	v.SetDefault("rate_limit.check_window", time.Minute)
	v.SetDefault("rate_limit.check_burst", 5)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path into v and decodes the merged
// configuration. An empty path skips the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.AllowedOrigins = splitList(cfg.AllowedOrigins)
	cfg.RateLimit.Whitelist = splitList(cfg.RateLimit.Whitelist)
	cfg.RateLimit.Blacklist = splitList(cfg.RateLimit.Blacklist)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config error: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// splitList trims entries, splits comma-joined values and drops empties.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
