package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// Scored endpoints share one tier.
const (
	ScorePath     = "/api/score"
	ScoreFilePath = "/api/score-file"
	ScoreFormPath = "/api/score-form"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (a trailing "/" enables prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the limits used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         DefaultIdleTTL,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: ScoreEndpointConfigs(60, time.Minute, 10),
	}
}

// ScoreEndpointConfigs returns the tier applied to every scoring endpoint.
func ScoreEndpointConfigs(limit int, window time.Duration, burst int) []EndpointConfig {
	paths := []string{ScorePath, ScoreFilePath, ScoreFormPath}
	configs := make([]EndpointConfig, 0, len(paths))
	for _, path := range paths {
		configs = append(configs, EndpointConfig{
			Path:   path,
			Method: http.MethodPost,
			Limit:  limit,
			Window: window,
			Burst:  burst,
		})
	}
	return configs
}

// IPSet builds a lookup set from a list of addresses, ignoring blanks.
func IPSet(ips []string) map[string]bool {
	result := make(map[string]bool, len(ips))
	for _, ip := range ips {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
