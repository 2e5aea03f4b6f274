package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Pong/internal/pong"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.TickPeriod != 15*time.Millisecond || c.FadeDuration != time.Second {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.TickPeriod != pong.DefaultTickPeriod || c.FadeDuration != pong.DefaultFadeDuration {
		t.Fatalf("defaults drifted from the engine: %+v", c)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"PONG_TICK_MS":   "10",
		"PONG_FADE_MS":   "500",
		"PONG_SEED":      "42",
		"PONG_MUTE":      "true",
		"PONG_SCALE":     "0.5",
		"PONG_LOG_LEVEL": "DEBUG",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.TickPeriod != 10*time.Millisecond || c.FadeDuration != 500*time.Millisecond {
		t.Fatalf("durations not applied: %+v", c)
	}
	if c.Seed != 42 || !c.Mute || c.Scale != 0.5 {
		t.Fatalf("fields not applied: %+v", c)
	}
	if c.Level() != zerolog.DebugLevel {
		t.Fatalf("level = %s, want debug", c.Level())
	}
}

func TestFromEnv_FallsBackToLogLevel(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{"LOG_LEVEL": "warn"}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Level() != zerolog.WarnLevel {
		t.Fatalf("level = %s, want warn", c.Level())
	}
}

func TestFromEnv_ReportsEveryBadValue(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"PONG_TICK_MS": "fast",
		"PONG_MUTE":    "maybe",
	}))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"PONG_TICK_MS", "PONG_MUTE"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err, want)
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]Config{
		"zero tick":  {TickPeriod: 0, FadeDuration: time.Second, Scale: 1, LogLevel: "info"},
		"short fade": {TickPeriod: 15 * time.Millisecond, FadeDuration: 5 * time.Millisecond, Scale: 1, LogLevel: "info"},
		"zero scale": {TickPeriod: 15 * time.Millisecond, FadeDuration: time.Second, Scale: 0, LogLevel: "info"},
		"bad level":  {TickPeriod: 15 * time.Millisecond, FadeDuration: time.Second, Scale: 1, LogLevel: "loud"},
	}
	for name, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PONG_SEED=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PONG_SEED", "")
	os.Unsetenv("PONG_SEED")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 7 {
		t.Fatalf("seed = %d, want 7 from .env", c.Seed)
	}
}
