package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the API process. It is built
// once at startup and passed down immutably; nothing reads the environment
// after Load returns.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Environment is the deployment environment name.
	Environment string

	// WAQIToken authenticates against the live air quality feed.
	// Empty means air quality requests will fail (fatal per request).
	WAQIToken string

	// TomTomKey authenticates against the live traffic feed.
	// Empty disables traffic corridors entirely.
	TomTomKey string

	// LiveAirQualityTimeout bounds the live air quality fetch.
	LiveAirQualityTimeout time.Duration

	// ArchiveTimeout bounds the historical PM2.5 archive fetch.
	ArchiveTimeout time.Duration

	// TrafficTimeout bounds a single traffic flow fetch.
	TrafficTimeout time.Duration

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled toggles OTLP export.
	TelemetryEnabled bool
}

// Load reads configuration from the environment. A local .env file is
// loaded first when present; missing files are not an error.
func Load() Config {
	_ = godotenv.Load()

	liveTimeout, _ := time.ParseDuration(getEnvOrDefault("WAQI_TIMEOUT", "10s"))
	archiveTimeout, _ := time.ParseDuration(getEnvOrDefault("OPEN_METEO_TIMEOUT", "10s"))
	trafficTimeout, _ := time.ParseDuration(getEnvOrDefault("TOMTOM_TIMEOUT", "8s"))

	return Config{
		Port:                  getEnvOrDefault("APP_PORT", "8080"),
		Environment:           getEnvOrDefault("APP_ENV", "development"),
		WAQIToken:             os.Getenv("WAQI_API_KEY"),
		TomTomKey:             os.Getenv("TOMTOM_API_KEY"),
		LiveAirQualityTimeout: liveTimeout,
		ArchiveTimeout:        archiveTimeout,
		TrafficTimeout:        trafficTimeout,
		OTLPEndpoint:          getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:      os.Getenv("OTEL_ENABLED") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
