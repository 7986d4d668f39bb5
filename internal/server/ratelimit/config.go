package ratelimit

import (
	"net/http"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
)

// CheckResumePath is the résumé analysis endpoint, the only expensive route.
const CheckResumePath = "/check_resume"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (trailing "/" enables prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds limiter configuration from service settings.
func NewConfig(s config.RateLimit) *Config {
	return &Config{
		Enabled:         s.Enabled,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.DefaultWindow,
		CleanupInterval: s.CleanupInterval,
		Whitelist:       toSet(s.Whitelist),
		Blacklist:       toSet(s.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(s),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits. Résumé analysis
// parses an upload and scores the catalog, so it gets its own tighter bucket;
// everything else falls back to the default limit.
func DefaultEndpointConfigs(s config.RateLimit) []EndpointConfig {
	return []EndpointConfig{
		{Path: CheckResumePath, Method: http.MethodPost, Limit: s.CheckLimit, Window: s.CheckWindow, Burst: s.CheckBurst},
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item != "" {
			set[item] = true
		}
	}
	return set
}
