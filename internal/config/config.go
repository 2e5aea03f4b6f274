// Package config loads runtime settings from defaults, an optional .env file
// and PONG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Pong/internal/pong"
)

// Config holds the tunables that are not part of the fixed game geometry.
type Config struct {
	TickPeriod   time.Duration // time between engine ticks
	FadeDuration time.Duration // ball fade-out / fade-in length
	Seed         int64         // serve RNG seed; 0 picks one from the clock
	Mute         bool          // disable sound effects
	Scale        float64       // window scale factor for the desktop shell
	LogLevel     string        // zerolog level name
}

// Default returns the reference settings.
func Default() Config {
	return Config{
		TickPeriod:   pong.DefaultTickPeriod,
		FadeDuration: pong.DefaultFadeDuration,
		Scale:        1.0,
		LogLevel:     "info",
	}
}

// Load reads .env (if present) and then the environment on top of the
// defaults. The result is validated.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(envFiles...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var errs []error

	if v := getenv("PONG_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PONG_TICK_MS: %w", err))
		} else {
			c.TickPeriod = time.Duration(ms) * time.Millisecond
		}
	}
	if v := getenv("PONG_FADE_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PONG_FADE_MS: %w", err))
		} else {
			c.FadeDuration = time.Duration(ms) * time.Millisecond
		}
	}
	if v := getenv("PONG_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("PONG_SEED: %w", err))
		} else {
			c.Seed = seed
		}
	}
	if v := getenv("PONG_MUTE"); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PONG_MUTE: %w", err))
		} else {
			c.Mute = mute
		}
	}
	if v := getenv("PONG_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("PONG_SCALE: %w", err))
		} else {
			c.Scale = scale
		}
	}
	if v := getenv("PONG_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	} else if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	if len(errs) > 0 {
		return c, errors.Join(errs...)
	}
	return c, c.Validate()
}

// Validate reports settings the engine can't run with.
func (c Config) Validate() error {
	if c.TickPeriod <= 0 {
		return fmt.Errorf("tick period must be positive, got %s", c.TickPeriod)
	}
	if c.FadeDuration < c.TickPeriod {
		return fmt.Errorf("fade duration %s shorter than one tick (%s)", c.FadeDuration, c.TickPeriod)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed zerolog level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
