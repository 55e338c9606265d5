package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Provider ProviderConfig
	Server   ServerConfig
	Log      LogConfig
}

// Transport represents the tool-invocation transport
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ProviderConfig holds Open-Meteo endpoint settings
type ProviderConfig struct {
	GeocodingURL      string
	ForecastURL       string
	AirQualityURL     string
	ArchiveURL        string
	Timeout           time.Duration
	ArchiveTimeout    time.Duration
	RequestsPerSecond float64
	Burst             int
	GeocodingLanguage string
}

// RateLimited returns true if outbound requests should be throttled
func (c ProviderConfig) RateLimited() bool {
	return c.RequestsPerSecond > 0
}

// ServerConfig holds transport configuration
type ServerConfig struct {
	Transport Transport
	Port      string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	transport := Transport(strings.ToLower(getEnv("MCP_TRANSPORT", string(TransportStdio))))
	if transport != TransportStdio && transport != TransportHTTP {
		transport = TransportStdio
	}

	config := &Config{
		Provider: ProviderConfig{
			GeocodingURL:      getEnv("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search"),
			ForecastURL:       getEnv("FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
			AirQualityURL:     getEnv("AIR_QUALITY_URL", "https://air-quality-api.open-meteo.com/v1/air-quality"),
			ArchiveURL:        getEnv("ARCHIVE_URL", "https://archive-api.open-meteo.com/v1/archive"),
			Timeout:           getEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),
			ArchiveTimeout:    getEnvAsDuration("ARCHIVE_TIMEOUT", 15*time.Second),
			RequestsPerSecond: getEnvAsFloat("PROVIDER_RPS", 0),
			Burst:             getEnvAsInt("PROVIDER_BURST", 5),
			GeocodingLanguage: getEnv("GEOCODING_LANGUAGE", "vi"),
		},
		Server: ServerConfig{
			Transport: transport,
			Port:      getEnv("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("15s") or bare seconds ("15")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
