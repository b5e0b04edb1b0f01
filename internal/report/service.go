package report

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/geosense/geosense/internal/airquality"
	"github.com/geosense/geosense/internal/api/models"
	"github.com/geosense/geosense/internal/config"
	"github.com/geosense/geosense/internal/insights"
	"github.com/geosense/geosense/internal/traffic"
)

// Source labels in the response contract.
const (
	airQualitySource = "WAQI + Open-Meteo"
	trafficSource    = "TomTom"
)

// Request identifies one report invocation. Unrecognized values degrade
// to the documented defaults; they never error.
type Request struct {
	City  string
	Range string
}

// ServiceConfig holds configuration for the report service.
type ServiceConfig struct {
	// Cities is the city profile registry (required).
	Cities *config.CityRegistry

	// AirQuality is the air quality service (required).
	AirQuality *airquality.Service

	// Traffic is the corridor simulator (required).
	Traffic *traffic.Simulator

	// Logger for service operations.
	Logger zerolog.Logger

	// LiveTimeout bounds the live air quality fetch (default: 10s).
	LiveTimeout time.Duration

	// ArchiveTimeout bounds the historical archive fetch (default: 10s).
	ArchiveTimeout time.Duration

	// TrafficTimeout bounds the corridor sampling pass (default: 30s,
	// covering all sampled points).
	TrafficTimeout time.Duration

	// Now is the clock used to anchor the window; defaults to time.Now.
	// Tests pin it.
	Now func() time.Time
}

// Service assembles eco reports. Each invocation is independent and
// side-effect free apart from the outbound provider calls.
type Service struct {
	cities         *config.CityRegistry
	air            *airquality.Service
	sim            *traffic.Simulator
	logger         zerolog.Logger
	liveTimeout    time.Duration
	archiveTimeout time.Duration
	trafficTimeout time.Duration
	now            func() time.Time
}

// NewService creates a new report service.
func NewService(cfg ServiceConfig) *Service {
	liveTimeout := cfg.LiveTimeout
	if liveTimeout == 0 {
		liveTimeout = 10 * time.Second
	}
	archiveTimeout := cfg.ArchiveTimeout
	if archiveTimeout == 0 {
		archiveTimeout = 10 * time.Second
	}
	trafficTimeout := cfg.TrafficTimeout
	if trafficTimeout == 0 {
		trafficTimeout = 30 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cities:         cfg.Cities,
		air:            cfg.AirQuality,
		sim:            cfg.Traffic,
		logger:         cfg.Logger,
		liveTimeout:    liveTimeout,
		archiveTimeout: archiveTimeout,
		trafficTimeout: trafficTimeout,
		now:            now,
	}
}

// Build produces the report for one request. The three upstream fetches
// run concurrently, each under its own timeout. A live air quality
// failure is fatal; archive and traffic failures degrade their sections
// to empty instead of failing the request.
func (s *Service) Build(ctx context.Context, req Request) (*models.EcoReport, error) {
	cityKey := strings.ToLower(strings.TrimSpace(req.City))
	profile, known := s.cities.Lookup(cityKey)
	if !known && cityKey != "" {
		s.logger.Debug().
			Str("requested", cityKey).
			Str("substituted", profile.Key).
			Msg("unknown city key, using default profile")
	}

	window := ResolveWindow(strings.TrimSpace(req.Range), s.now())

	var (
		wg        sync.WaitGroup
		snapshot  *airquality.Snapshot
		snapErr   error
		trend     []airquality.TrendPoint
		corridors []traffic.Corridor
		stats     traffic.Stats
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, s.liveTimeout)
		defer cancel()
		snapshot, snapErr = s.air.Current(fetchCtx, profile.WAQIName)
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, s.archiveTimeout)
		defer cancel()
		points, err := s.air.History(fetchCtx, profile.Lat, profile.Lon, window.StartDate, window.EndDate)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("city", profile.Key).
				Msg("archive fetch failed, trend degraded to empty")
			return
		}
		trend = points
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, s.trafficTimeout)
		defer cancel()
		corridors, stats = s.sim.Corridors(fetchCtx, profile)
	}()
	wg.Wait()

	if snapErr != nil {
		return nil, fmt.Errorf("live air quality fetch for %s: %w", profile.WAQIName, snapErr)
	}

	traffic.ApplyLocalAQI(snapshot.AQI, corridors, stats)

	summary := airquality.SummarizeTrend(trend)
	correlations := insights.CorridorCorrelations(corridors)
	breakdown := insights.EstimateBreakdown(snapshot.PM25, snapshot.PM10, snapshot.NO2)
	recommendations := insights.Recommend(snapshot.AQI)

	return &models.EcoReport{
		City: profile.WAQIName,
		TimeWindow: models.TimeWindow{
			From:  window.From,
			To:    window.To,
			Label: window.Label,
		},
		AirQuality: models.AirQualitySection{
			Source: airQualitySource,
			Pollutants: models.Pollutants{
				AQI:  snapshot.AQI,
				PM25: snapshot.PM25,
				PM10: snapshot.PM10,
				NO2:  snapshot.NO2,
				CO:   snapshot.CO,
				O3:   snapshot.O3,
				SO2:  snapshot.SO2,
			},
			Trend: models.Trend{
				Label:  fmt.Sprintf("Air Quality Trend (PM2.5 → AQI) — %s", window.Label),
				Points: toTrendPoints(trend),
			},
			MonthlyInsights: models.MonthlyInsights{
				DataPoints:  summary.DataPoints,
				AvgPM25:     summary.AvgPM25,
				MaxPM25:     summary.MaxPM25,
				MaxPM25Date: summary.MaxPM25Date,
				WindowLabel: window.Label,
			},
			Station: models.StationMeta{
				Name: snapshot.Station.Name,
				Geo:  stationGeo(snapshot.Station),
				URL:  snapshot.Station.URL,
			},
		},
		Traffic: models.TrafficSection{
			Source:    trafficSource,
			RadiusKm:  traffic.RadiusKm,
			Corridors: toReportCorridors(corridors),
			Stats: models.TrafficStats{
				AvgCongestion: stats.AvgCongestion,
				MaxCongestion: stats.MaxCongestion,
			},
		},
		Environment: models.EnvironmentBlock{
			Overview: models.CityOverview{
				TotalCO2Tons:       profile.Overview.TotalCO2Tons,
				FuelWastedLiters:   profile.Overview.FuelWastedLiters,
				AffectedPopulation: profile.Overview.AffectedPopulation,
				EcoScore:           profile.Overview.EcoScore,
			},
			EmissionBreakdown: breakdown,
		},
		Insights: models.InsightsSection{
			Correlations:    correlations,
			Recommendations: recommendations,
		},
	}, nil
}

func toTrendPoints(points []airquality.TrendPoint) []models.TrendPoint {
	out := make([]models.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.TrendPoint{Date: p.Date, PM25: p.PM25, AQI: p.AQI})
	}
	return out
}

func toReportCorridors(corridors []traffic.Corridor) []models.ReportCorridor {
	out := make([]models.ReportCorridor, 0, len(corridors))
	for _, c := range corridors {
		out = append(out, models.ReportCorridor{
			ID:                 c.ID,
			Name:               c.Name,
			Issue:              c.Issue,
			CongestionPercent:  c.CongestionPercent,
			DailyEmissionsTons: c.DailyEmissionsTons,
			AQI:                c.AQI,
			CenterLat:          c.CenterLat,
			CenterLon:          c.CenterLon,
		})
	}
	return out
}

func stationGeo(meta airquality.StationMeta) []float64 {
	if meta.Lat == 0 && meta.Lon == 0 {
		return nil
	}
	return []float64{meta.Lat, meta.Lon}
}
