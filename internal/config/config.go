// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// FeedBaseURL points at the upstream scoring API.
	FeedBaseURL string `koanf:"feed_base_url"`

	// FeedTimeoutMS bounds each upstream request.
	FeedTimeoutMS int `koanf:"feed_timeout_ms"`

	// RefreshIntervalSec controls how often a fresh snapshot is fetched.
	RefreshIntervalSec int `koanf:"refresh_interval_sec"`

	// PositiveCap and NegativeCap tune where the signed-delta border color
	// saturates. Arbitrary tuning constants, not a fixed law.
	PositiveCap float64 `koanf:"positive_cap"`
	NegativeCap float64 `koanf:"negative_cap"`

	// AssetPools maps severity bucket numbers ("1".."10") to asset file
	// lists. Buckets without a pool fall back to symbolic icons.
	AssetPools map[string][]string `koanf:"asset_pools"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8090",
		FeedBaseURL:        "http://localhost:8000",
		FeedTimeoutMS:      10_000,
		RefreshIntervalSec: 60,
		PositiveCap:        50,
		NegativeCap:        -50,
		AssetPools:         map[string][]string{},
	}
}
