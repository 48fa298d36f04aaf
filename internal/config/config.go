// Package config loads weather-explorer settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

const appName = "weather-explorer"

// Config holds all client settings, populated from environment variables.
type Config struct {
	// OpenWeather configuration. An empty key disables geocoding and weather.
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration

	GeocodeCacheSize int
	SuggestDebounce  time.Duration
	SuggestLimit     int

	Units      m.UnitSystem
	PixelRatio float64
	SecretCode string

	PreferencesPath string

	LogLevel    string
	LogFile     string
	MetricsAddr string
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is read first; variables already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	timeout, err := parseDuration("OPENWEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	debounce, err := parseDuration("SUGGEST_DEBOUNCE", "300ms")
	if err != nil {
		return nil, err
	}

	units, ok := m.ParseUnitSystem(envOrDefault("WEATHER_UNITS", string(m.UnitsMetric)))
	if !ok {
		return nil, errors.New("invalid WEATHER_UNITS")
	}

	pixelRatio, err := strconv.ParseFloat(envOrDefault("REVEAL_PIXEL_RATIO", "2"), 64)
	if err != nil || !domain.ValidPixelRatio(pixelRatio) {
		return nil, fmt.Errorf("invalid REVEAL_PIXEL_RATIO: want %g to %g", domain.MinPixelRatio, domain.MaxPixelRatio)
	}

	prefsPath := os.Getenv("PREFERENCES_PATH")
	if prefsPath == "" {
		prefsPath = defaultPreferencesPath()
	}

	cfg := &Config{
		APIKey:           os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL:          envOrDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		HTTPTimeout:      timeout,
		GeocodeCacheSize: parsePositiveInt("GEOCODE_CACHE_SIZE", 256),
		SuggestDebounce:  debounce,
		SuggestLimit:     parsePositiveInt("SUGGEST_LIMIT", 5),
		Units:            units,
		PixelRatio:       pixelRatio,
		SecretCode:       envOrDefault("SECRET_CODE", "280828"),
		PreferencesPath:  prefsPath,
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("OPENWEATHER_BASE_URL is required")
	}

	return cfg, nil
}

// Available reports whether the OpenWeather services can be called.
func (c *Config) Available() bool {
	return c.APIKey != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}

	return d, nil
}

func parsePositiveInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}

	return fallback
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, appName, "preferences.yaml")
}
