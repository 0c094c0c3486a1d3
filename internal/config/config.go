package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrAPIKeyMissing is returned when no OpenWeatherMap credential is
// configured. The entry point treats it as fatal before any network activity.
var ErrAPIKeyMissing = errors.New("OPENWEATHER_API_KEY is required")

// Config holds all client settings, populated from environment variables.
type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration // per-request HTTP timeout
	RateLimit float64       // sustained requests per second
	RateBurst int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeout, err := parseTimeout()
	if err != nil {
		return nil, err
	}

	rateLimit, err := parseRateLimit()
	if err != nil {
		return nil, err
	}

	rateBurst, err := parseRateBurst()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:    os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL:   envOrDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		Timeout:   timeout,
		RateLimit: rateLimit,
		RateBurst: rateBurst,
		LogLevel:  envOrDefault("LOG_LEVEL", "warn"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	return cfg, nil
}

func parseTimeout() (time.Duration, error) {
	s := envOrDefault("OPENWEATHER_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid OPENWEATHER_TIMEOUT")
	}
	return d, nil
}

func parseRateLimit() (float64, error) {
	s := envOrDefault("OPENWEATHER_RATE_LIMIT", "1")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("invalid OPENWEATHER_RATE_LIMIT")
	}
	return v, nil
}

func parseRateBurst() (int, error) {
	s := envOrDefault("OPENWEATHER_RATE_BURST", "5")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New("invalid OPENWEATHER_RATE_BURST")
	}
	return n, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
