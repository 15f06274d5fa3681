// Package config loads startup-time settings for clock-dash.
//
// All settings come from environment variables with sensible defaults; a
// .env file in the working directory is honored when present. Settings are
// read once at startup and never reloaded; the dashboard has no runtime
// configuration surface.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/treykane/clock-dash/internal/logging"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultViewportRatio  = 0.33
	DefaultWeatherURL     = "https://wttr.in/?format=3"
	DefaultWeatherRefresh = 10 * time.Minute
	DefaultWeatherTimeout = 5 * time.Second
	DefaultClockFont      = "big"
	DefaultDateFont       = "standard"
)

// ErrInvalidRatio is returned when CLOCKDASH_VIEWPORT_RATIO falls outside (0, 1].
var ErrInvalidRatio = errors.New("viewport ratio must be in (0, 1]")

var configLog = logging.New("config")

// Config stores the dashboard's startup settings.
type Config struct {
	// ViewportRatio is the fraction of terminal height, measured from the
	// top, that the dashboard may draw into.
	ViewportRatio float64

	// WeatherURL is a plain-text endpoint returning a one-line summary.
	WeatherURL string

	// WeatherRefresh is how long a fetched (or failed) weather value is
	// considered fresh before the next fetch is due.
	WeatherRefresh time.Duration

	// WeatherTimeout bounds a single weather HTTP request.
	WeatherTimeout time.Duration

	// ClockFont and DateFont name the figlet fonts used for the large
	// time and date blocks.
	ClockFont string
	DateFont  string
}

// Load reads configuration from the environment with defaults.
//
// A missing .env file is not an error; an out-of-range viewport ratio or an
// unparsable duration is, since the render loop cannot start with them.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		configLog.Debug("no .env file loaded", "error", err)
	}

	cfg := Config{
		WeatherURL: getenvDefault("CLOCKDASH_WEATHER_URL", DefaultWeatherURL),
		ClockFont:  getenvDefault("CLOCKDASH_CLOCK_FONT", DefaultClockFont),
		DateFont:   getenvDefault("CLOCKDASH_DATE_FONT", DefaultDateFont),
	}

	ratio, err := getenvFloat("CLOCKDASH_VIEWPORT_RATIO", DefaultViewportRatio)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CLOCKDASH_VIEWPORT_RATIO: %w", err)
	}
	if ratio <= 0 || ratio > 1 {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	cfg.ViewportRatio = ratio

	refresh, err := getenvDuration("CLOCKDASH_WEATHER_REFRESH", DefaultWeatherRefresh)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CLOCKDASH_WEATHER_REFRESH: %w", err)
	}
	cfg.WeatherRefresh = refresh

	timeout, err := getenvDuration("CLOCKDASH_WEATHER_TIMEOUT", DefaultWeatherTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CLOCKDASH_WEATHER_TIMEOUT: %w", err)
	}
	cfg.WeatherTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
