// Package main provides the entrypoint for the GeoSense API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/geosense/geosense/internal/airquality"
	"github.com/geosense/geosense/internal/airquality/openmeteo"
	"github.com/geosense/geosense/internal/airquality/waqi"
	"github.com/geosense/geosense/internal/api"
	"github.com/geosense/geosense/internal/api/middleware"
	"github.com/geosense/geosense/internal/config"
	"github.com/geosense/geosense/internal/provider/resilience"
	"github.com/geosense/geosense/internal/report"
	"github.com/geosense/geosense/internal/telemetry"
	"github.com/geosense/geosense/internal/traffic"
	"github.com/geosense/geosense/internal/traffic/tomtom"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "geosense-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting GeoSense API")

	cfg := config.Load()

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// City profiles
	cities := config.NewCityRegistry()
	log.Info().Int("cities", cities.Count()).Msg("city registry loaded")

	// Provider health registry, surfaced by the ops status endpoint
	providers := resilience.NewRegistry()

	// Shared outbound request metrics, one instrument set for all providers
	providerMetrics, err := resilience.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Live air quality feed
	if cfg.WAQIToken == "" {
		log.Warn().Msg("WAQI_API_KEY not set - eco report requests will fail")
	}
	waqiHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:            waqi.ProviderName,
		Metrics:         providerMetrics,
		Timeout:         cfg.LiveAirQualityTimeout,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	})
	providers.Register(waqi.ProviderName, waqiHTTP)
	liveClient := waqi.NewClient(waqi.ClientConfig{
		Token:      cfg.WAQIToken,
		HTTPClient: waqiHTTP,
		Health:     providers,
	})

	// Historical PM2.5 archive
	archiveHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:            openmeteo.ProviderName,
		Metrics:         providerMetrics,
		Timeout:         cfg.ArchiveTimeout,
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	})
	providers.Register(openmeteo.ProviderName, archiveHTTP)
	archiveClient := openmeteo.NewClient(openmeteo.ClientConfig{
		HTTPClient: archiveHTTP,
		Health:     providers,
	})

	airService := airquality.NewService(airquality.ServiceConfig{
		Live:    liveClient,
		Archive: archiveClient,
		Logger:  log,
	})
	log.Info().Msg("air quality service initialized")

	// Traffic flow provider is optional; without a key the report carries
	// an empty traffic section.
	var flowProvider traffic.FlowProvider
	if cfg.TomTomKey != "" {
		tomtomHTTP := resilience.NewClient(resilience.ClientConfig{
			Name:            tomtom.ProviderName,
			Metrics:         providerMetrics,
			Timeout:         cfg.TrafficTimeout,
			MaxRetries:      2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     3 * time.Second,
		})
		providers.Register(tomtom.ProviderName, tomtomHTTP)
		flowProvider = tomtom.NewClient(tomtom.ClientConfig{
			APIKey:     cfg.TomTomKey,
			HTTPClient: tomtomHTTP,
			Health:     providers,
		})
		log.Info().Msg("traffic flow provider initialized")
	} else {
		log.Warn().Msg("TOMTOM_API_KEY not set - traffic corridors disabled")
	}

	simulator := traffic.NewSimulator(traffic.SimulatorConfig{
		Provider: flowProvider,
		Logger:   log,
	})

	reportService := report.NewService(report.ServiceConfig{
		Cities:         cities,
		AirQuality:     airService,
		Traffic:        simulator,
		Logger:         log,
		LiveTimeout:    cfg.LiveAirQualityTimeout,
		ArchiveTimeout: cfg.ArchiveTimeout,
	})
	log.Info().Msg("report service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:       Version,
		BuildTime:     BuildTime,
		Logger:        log,
		ServiceName:   serviceName,
		Metrics:       metrics,
		ReportService: reportService,
		Cities:        cities,
		Providers:     providers,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
