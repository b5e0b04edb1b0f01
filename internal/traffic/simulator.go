package traffic

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/rs/zerolog"

	"github.com/geosense/geosense/internal/config"
)

// FlowProvider fetches live traffic flow at a coordinate.
type FlowProvider interface {
	FetchFlow(ctx context.Context, lat, lon float64) (*FlowSample, error)
}

// RadiusKm is the sampling radius around the city centre. All corridor
// offsets fall inside it.
const RadiusKm = 10.0

// corridorIssue is the canned issue label attached to every corridor.
const corridorIssue = "Traffic Congestion"

// implausibleCongestionPct: live readings at or below this are treated as
// bad source data rather than true free flow.
const implausibleCongestionPct = 2.0

// corridorOffsets are the fixed directional offsets (degrees) sampled
// around the city centre, roughly 4-8 km out.
var corridorOffsets = []struct {
	dLat  float64
	dLon  float64
	label string
}{
	{0.06, 0.00, "North"},
	{-0.06, 0.00, "South"},
	{0.00, 0.08, "East"},
	{0.00, -0.08, "West"},
	{0.04, 0.06, "North-East"},
	{-0.04, -0.06, "South-West"},
}

// SimulatorConfig holds configuration for the corridor simulator.
type SimulatorConfig struct {
	// Provider is the live traffic flow provider. Nil means the provider
	// key is absent; the simulator then returns no corridors at all.
	Provider FlowProvider

	// Logger for simulator operations.
	Logger zerolog.Logger

	// NewRand builds the request-local random source used for fallback
	// congestion. If nil, an OS-seeded source is created per request.
	// Tests inject a fixed seed here.
	NewRand func() *rand.Rand
}

// Simulator produces the per-request corridor set.
type Simulator struct {
	provider FlowProvider
	logger   zerolog.Logger
	newRand  func() *rand.Rand
}

// NewSimulator creates a new corridor simulator.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	newRand := cfg.NewRand
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	return &Simulator{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		newRand:  newRand,
	}
}

// Corridors samples the fixed offsets around the city centre and returns
// the corridor set sorted descending by congestion, plus aggregate stats.
// Every live-data problem is absorbed here: a failed or implausible
// reading falls back to a random value inside the city's congestion band.
// With no provider configured the result is empty corridors and nil stats,
// which is a valid terminal state rather than an error.
func (s *Simulator) Corridors(ctx context.Context, profile config.CityProfile) ([]Corridor, Stats) {
	if s.provider == nil || profile.WAQIName == "" {
		return nil, Stats{}
	}

	rng := s.newRand()
	corridors := make([]Corridor, 0, len(corridorOffsets))

	for idx, off := range corridorOffsets {
		lat := profile.Lat + off.dLat
		lon := profile.Lon + off.dLon

		congestion, fellBack := s.congestionAt(ctx, rng, profile, lat, lon)
		if fellBack {
			s.logger.Debug().
				Str("city", profile.Key).
				Str("direction", off.label).
				Float64("congestion", congestion).
				Msg("using fallback congestion")
		}

		corridors = append(corridors, Corridor{
			ID:                 idx + 1,
			Name:               profile.WAQIName + " " + off.label + " Corridor",
			Issue:              corridorIssue,
			CongestionPercent:  congestion,
			DailyEmissionsTons: round2(profile.EmissionBase * (0.6 + congestion/100)),
			CenterLat:          lat,
			CenterLon:          lon,
		})
	}

	sort.SliceStable(corridors, func(i, j int) bool {
		return corridors[i].CongestionPercent > corridors[j].CongestionPercent
	})

	return corridors, computeStats(corridors)
}

// congestionAt returns the congestion percentage for one sampled point
// and whether the fallback band was used. The hard-failure branch
// (provider error) and the soft-implausibility branch (reading <= 2%)
// are deliberately separate.
func (s *Simulator) congestionAt(ctx context.Context, rng *rand.Rand, profile config.CityProfile, lat, lon float64) (float64, bool) {
	flow, err := s.provider.FetchFlow(ctx, lat, lon)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("city", profile.Key).
			Msg("traffic flow fetch failed")
		return fallbackCongestion(rng, profile), true
	}

	if flow.CurrentSpeed == nil || flow.FreeFlowSpeed == nil || *flow.FreeFlowSpeed <= 0 {
		return fallbackCongestion(rng, profile), true
	}

	congestion := round1(100 * (1 - *flow.CurrentSpeed / *flow.FreeFlowSpeed))
	congestion = math.Max(0, math.Min(100, congestion))
	if congestion <= implausibleCongestionPct {
		return fallbackCongestion(rng, profile), true
	}
	return congestion, false
}

// fallbackCongestion draws a uniform value from the city's plausible band.
func fallbackCongestion(rng *rand.Rand, profile config.CityProfile) float64 {
	low, high := profile.CongestionLow, profile.CongestionHigh
	return round1(low + rng.Float64()*(high-low))
}

func computeStats(corridors []Corridor) Stats {
	if len(corridors) == 0 {
		return Stats{}
	}

	sum := 0.0
	maxCong := corridors[0].CongestionPercent
	for _, c := range corridors {
		sum += c.CongestionPercent
		if c.CongestionPercent > maxCong {
			maxCong = c.CongestionPercent
		}
	}

	avg := round1(sum / float64(len(corridors)))
	maxCong = round1(maxCong)
	return Stats{AvgCongestion: &avg, MaxCongestion: &maxCong}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
