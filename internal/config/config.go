// Package config loads command-line tool settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/arloliu/savecode/format"
)

// Config holds the savecode CLI settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level `env:"SAVECODE_LOG_LEVEL" envDefault:"info"`
	// Compression selects the byte-stage codec. Codes made with one setting
	// only decode with the same setting.
	Compression format.CompressionType `env:"SAVECODE_COMPRESSION" envDefault:"none"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
