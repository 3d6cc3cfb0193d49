package motion

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the engine's tunables. Load it from the environment with
// LoadConfigFromEnv or start from DefaultConfig.
type Config struct {
	// AssetTimeout bounds how long a triggered asset-backed layer waits for
	// its content before animating anyway.
	AssetTimeout time.Duration `env:"MOTION_ASSET_TIMEOUT" envDefault:"3s"`
	// ScrollThreshold is the visible-area fraction that fires a scroll
	// trigger.
	ScrollThreshold float64 `env:"MOTION_SCROLL_THRESHOLD" envDefault:"0.1"`
	// ScrollExitFraction re-arms a triggered scroll layer once its top edge
	// is below this fraction of the viewport height.
	ScrollExitFraction float64 `env:"MOTION_SCROLL_EXIT_FRACTION" envDefault:"0.95"`
	// TPS is the frame rate a wall-clock host advances at.
	TPS   int  `env:"MOTION_TPS" envDefault:"60"`
	Debug bool `env:"MOTION_DEBUG"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		AssetTimeout:       3 * time.Second,
		ScrollThreshold:    0.1,
		ScrollExitFraction: 0.95,
		TPS:                60,
	}
}

// ParseConfigEnv loads configuration from environment variables.
func ParseConfigEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalized(), nil
}

// LoadConfigFromEnv returns configuration from the environment, falling back
// to DefaultConfig when it cannot be parsed.
func LoadConfigFromEnv() Config {
	cfg, err := ParseConfigEnv()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// normalized replaces out-of-range values with defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.AssetTimeout <= 0 {
		c.AssetTimeout = def.AssetTimeout
	}
	if c.ScrollThreshold <= 0 || c.ScrollThreshold > 1 {
		c.ScrollThreshold = def.ScrollThreshold
	}
	if c.ScrollExitFraction <= 0 || c.ScrollExitFraction > 1 {
		c.ScrollExitFraction = def.ScrollExitFraction
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	return c
}

// FrameDuration returns the wall-clock delta of one frame in ms.
func (c Config) FrameDuration() float64 {
	return 1000 / float64(c.TPS)
}
