// Package config loads the runtime settings of the game from the environment.
// Game rules and the starting stake are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// ErrUnknownLogLevel is returned by Level for an unrecognised level name.
var ErrUnknownLogLevel = errors.New("unknown log level")

// Config holds the settings read from the environment.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"BLACKJACK_LOG_LEVEL" envDefault:"warn"`
	// Seed makes shuffles reproducible when non-zero.
	Seed    uint64 `env:"BLACKJACK_SEED" envDefault:"0"`
	NoColor bool   `env:"BLACKJACK_NO_COLOR" envDefault:"false"`
}

// Load reads the optional dotenv files (".env" when none is given) and then
// parses the environment. Variables already set are not overridden by the
// files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps LogLevel to the pterm logger level.
func (c Config) Level() (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelWarn, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
}
