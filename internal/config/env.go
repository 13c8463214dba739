package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds the MOLEMATH_* overrides. Nil fields were not set.
type EnvConfig struct {
	Duration   *int    `env:"MOLEMATH_DURATION"`
	Difficulty *string `env:"MOLEMATH_DIFFICULTY"`
	Music      *bool   `env:"MOLEMATH_MUSIC"`
	MusicCmd   *string `env:"MOLEMATH_MUSIC_CMD"`
	Log        *string `env:"MOLEMATH_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
