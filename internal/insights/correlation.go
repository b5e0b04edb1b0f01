// Package insights derives cross-metric correlations, the pollution
// source breakdown, and threshold-based recommendations.
package insights

import (
	"math"

	"github.com/geosense/geosense/internal/traffic"
)

// Correlation pair names in the report contract.
const (
	PairCongestionEmissions = "congestion_emissions"
	PairCongestionAQI       = "congestion_aqi"
)

// Pearson computes the linear correlation coefficient between two
// sequences, rounded to 2 decimals. It returns nil when the result is
// not computable: fewer than 2 points, mismatched lengths, or zero
// variance in either sequence. Nil is never a sentinel zero.
func Pearson(x, y []float64) *float64 {
	if len(x) < 2 || len(x) != len(y) {
		return nil
	}

	n := float64(len(x))
	meanX, meanY := 0.0, 0.0
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	num, varX, varY := 0.0, 0.0, 0.0
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX) * math.Sqrt(varY)
	if denom == 0 {
		return nil
	}

	r := math.Round(num/denom*100) / 100
	return &r
}

// CorridorCorrelations computes the two fixed metric pairs over the
// corridor set. Pairs that are not computable are simply absent from the
// map; an empty corridor set yields an empty map.
func CorridorCorrelations(corridors []traffic.Corridor) map[string]float64 {
	correlations := make(map[string]float64)
	if len(corridors) == 0 {
		return correlations
	}

	congestion := make([]float64, 0, len(corridors))
	emissions := make([]float64, 0, len(corridors))
	localAQI := make([]float64, 0, len(corridors))
	for _, c := range corridors {
		congestion = append(congestion, c.CongestionPercent)
		emissions = append(emissions, c.DailyEmissionsTons)
		if c.AQI != nil {
			localAQI = append(localAQI, float64(*c.AQI))
		}
	}

	if r := Pearson(congestion, emissions); r != nil {
		correlations[PairCongestionEmissions] = *r
	}
	if r := Pearson(congestion, localAQI); r != nil {
		correlations[PairCongestionAQI] = *r
	}
	return correlations
}
