package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLOCKDASH_VIEWPORT_RATIO",
		"CLOCKDASH_WEATHER_URL",
		"CLOCKDASH_WEATHER_REFRESH",
		"CLOCKDASH_WEATHER_TIMEOUT",
		"CLOCKDASH_CLOCK_FONT",
		"CLOCKDASH_DATE_FONT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ViewportRatio != DefaultViewportRatio {
		t.Errorf("ViewportRatio: got %v, want %v", cfg.ViewportRatio, DefaultViewportRatio)
	}
	if cfg.WeatherURL != DefaultWeatherURL {
		t.Errorf("WeatherURL: got %q, want %q", cfg.WeatherURL, DefaultWeatherURL)
	}
	if cfg.WeatherRefresh != DefaultWeatherRefresh {
		t.Errorf("WeatherRefresh: got %v, want %v", cfg.WeatherRefresh, DefaultWeatherRefresh)
	}
	if cfg.WeatherTimeout != DefaultWeatherTimeout {
		t.Errorf("WeatherTimeout: got %v, want %v", cfg.WeatherTimeout, DefaultWeatherTimeout)
	}
	if cfg.ClockFont != DefaultClockFont || cfg.DateFont != DefaultDateFont {
		t.Errorf("fonts: got %q/%q, want %q/%q", cfg.ClockFont, cfg.DateFont, DefaultClockFont, DefaultDateFont)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOCKDASH_VIEWPORT_RATIO", "0.5")
	t.Setenv("CLOCKDASH_WEATHER_URL", "https://example.test/weather")
	t.Setenv("CLOCKDASH_WEATHER_REFRESH", "90s")
	t.Setenv("CLOCKDASH_CLOCK_FONT", "standard")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ViewportRatio != 0.5 {
		t.Errorf("ViewportRatio: got %v, want 0.5", cfg.ViewportRatio)
	}
	if cfg.WeatherURL != "https://example.test/weather" {
		t.Errorf("WeatherURL: got %q", cfg.WeatherURL)
	}
	if cfg.WeatherRefresh != 90*time.Second {
		t.Errorf("WeatherRefresh: got %v, want 90s", cfg.WeatherRefresh)
	}
	if cfg.ClockFont != "standard" {
		t.Errorf("ClockFont: got %q, want standard", cfg.ClockFont)
	}
}

func TestLoadRejectsRatioOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		ratio string
	}{
		{name: "zero", ratio: "0"},
		{name: "negative", ratio: "-0.2"},
		{name: "above one", ratio: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CLOCKDASH_VIEWPORT_RATIO", tt.ratio)

			if _, err := Load(); !errors.Is(err, ErrInvalidRatio) {
				t.Fatalf("expected ErrInvalidRatio, got %v", err)
			}
		})
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOCKDASH_VIEWPORT_RATIO", "a third")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed ratio")
	}

	clearEnv(t)
	t.Setenv("CLOCKDASH_WEATHER_REFRESH", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed refresh interval")
	}
}

func TestLoadAcceptsFullHeightRatio(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOCKDASH_VIEWPORT_RATIO", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ViewportRatio != 1 {
		t.Errorf("ViewportRatio: got %v, want 1", cfg.ViewportRatio)
	}
}
