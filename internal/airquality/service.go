package airquality

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LiveProvider fetches the current snapshot for a city from the live feed.
type LiveProvider interface {
	FetchCity(ctx context.Context, cityName string) (*Snapshot, error)
}

// ArchiveProvider fetches hourly PM2.5 samples for a coordinate and a
// closed date range. The range never extends past today.
type ArchiveProvider interface {
	FetchHourlyPM25(ctx context.Context, lat, lon float64, startDate, endDate time.Time) ([]HourlySample, error)
}

// ServiceConfig holds configuration for the air quality service.
type ServiceConfig struct {
	// Live is the live feed provider (required).
	Live LiveProvider

	// Archive is the historical archive provider (required).
	Archive ArchiveProvider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service fetches and reconciles air quality data.
type Service struct {
	live    LiveProvider
	archive ArchiveProvider
	logger  zerolog.Logger
}

// NewService creates a new air quality service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		live:    cfg.Live,
		archive: cfg.Archive,
		logger:  cfg.Logger,
	}
}

// Current returns the reconciled snapshot for a city. The feed AQI is
// corrected against the PM2.5 evidence before the snapshot is returned.
// Any provider failure is fatal to the caller's report.
func (s *Service) Current(ctx context.Context, cityName string) (*Snapshot, error) {
	snapshot, err := s.live.FetchCity(ctx, cityName)
	if err != nil {
		return nil, err
	}

	reconciled := ReconcileAQI(snapshot.AQI, snapshot.PM25)
	if snapshot.AQI != nil && reconciled != nil && *reconciled != *snapshot.AQI {
		s.logger.Info().
			Str("city", cityName).
			Int("feed_aqi", *snapshot.AQI).
			Int("corrected_aqi", *reconciled).
			Msg("feed AQI corrected against PM2.5")
	}
	snapshot.AQI = reconciled

	return snapshot, nil
}

// History returns the daily PM2.5 trend for a coordinate over a closed
// date range. An archive failure is returned to the caller, which is
// expected to degrade to an empty trend rather than fail the report.
func (s *Service) History(ctx context.Context, lat, lon float64, startDate, endDate time.Time) ([]TrendPoint, error) {
	samples, err := s.archive.FetchHourlyPM25(ctx, lat, lon, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return AggregateTrend(samples), nil
}
