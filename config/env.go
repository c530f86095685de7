package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds process level overrides read from the environment.
type EnvConfig struct {
	RenderDir          string `env:"DAYNIGHT_RENDER_DIR"`
	Surface            string `env:"DAYNIGHT_SURFACE"` // WxH, e.g. 1920x1080
	DisableHotkeys     bool   `env:"DAYNIGHT_DISABLE_HOTKEYS" envDefault:"false"`
	DisableUpdateCheck bool   `env:"DAYNIGHT_DISABLE_UPDATE_CHECK" envDefault:"false"`
	FaceModel          string `env:"DAYNIGHT_FACE_MODEL"` // pigo cascade file
}

// ParseEnv loads EnvConfig from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Surface != "" {
		if _, _, err := ParseSurface(cfg.Surface); err != nil {
			return EnvConfig{}, fmt.Errorf("parse env: DAYNIGHT_SURFACE: %w", err)
		}
	}
	return cfg, nil
}

// SurfaceOverride returns the configured surface size, if any.
func (c EnvConfig) SurfaceOverride() (int, int, bool) {
	if c.Surface == "" {
		return 0, 0, false
	}
	w, h, err := ParseSurface(c.Surface)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// ParseSurface parses a "WxH" size string.
func ParseSurface(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid surface size %q, want WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid surface width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid surface height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid surface size %q, dimensions must be positive", s)
	}
	return w, h, nil
}
