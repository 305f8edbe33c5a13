package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if GLOOM_CONFIG is set
//  3. env (prefix GLOOM_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("GLOOM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: GLOOM_ADDR, GLOOM_FEED_BASE_URL, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("GLOOM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gloom_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.FeedBaseURL == "":
		return fmt.Errorf("%w: feed_base_url must not be empty", ErrInvalidConfig)
	case c.RefreshIntervalSec <= 0:
		return fmt.Errorf("%w: refresh_interval_sec must be positive", ErrInvalidConfig)
	case c.PositiveCap <= 0:
		return fmt.Errorf("%w: positive_cap must be positive", ErrInvalidConfig)
	case c.NegativeCap >= 0:
		return fmt.Errorf("%w: negative_cap must be negative", ErrInvalidConfig)
	}
	return nil
}
