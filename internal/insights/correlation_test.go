package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosense/geosense/internal/insights"
	"github.com/geosense/geosense/internal/traffic"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPearson_PerfectPositive(t *testing.T) {
	r := insights.Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NotNil(t, r)
	assert.Equal(t, 1.0, *r)
}

func TestPearson_PerfectNegative(t *testing.T) {
	r := insights.Pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.NotNil(t, r)
	assert.Equal(t, -1.0, *r)
}

func TestPearson_Rounded(t *testing.T) {
	r := insights.Pearson([]float64{1, 2, 3, 4}, []float64{2, 1, 4, 3})
	require.NotNil(t, r)
	assert.Equal(t, 0.6, *r)
}

func TestPearson_NotComputable(t *testing.T) {
	// single point
	assert.Nil(t, insights.Pearson([]float64{1}, []float64{2}))
	// mismatched lengths
	assert.Nil(t, insights.Pearson([]float64{1, 2}, []float64{1, 2, 3}))
	// zero variance
	assert.Nil(t, insights.Pearson([]float64{5, 5, 5}, []float64{1, 2, 3}))
	// empty
	assert.Nil(t, insights.Pearson(nil, nil))
}

func TestCorridorCorrelations(t *testing.T) {
	corridors := []traffic.Corridor{
		{CongestionPercent: 80, DailyEmissionsTons: 3.9, AQI: intPtr(120)},
		{CongestionPercent: 60, DailyEmissionsTons: 3.4, AQI: intPtr(100)},
		{CongestionPercent: 40, DailyEmissionsTons: 2.8, AQI: intPtr(80)},
	}

	correlations := insights.CorridorCorrelations(corridors)

	require.Contains(t, correlations, insights.PairCongestionEmissions)
	assert.InDelta(t, 1.0, correlations[insights.PairCongestionEmissions], 0.01)
	require.Contains(t, correlations, insights.PairCongestionAQI)
	assert.Equal(t, 1.0, correlations[insights.PairCongestionAQI])
}

func TestCorridorCorrelations_ZeroVarianceOmitsPair(t *testing.T) {
	// Equal congestion everywhere: neither pair is computable.
	corridors := []traffic.Corridor{
		{CongestionPercent: 50, DailyEmissionsTons: 3.1, AQI: intPtr(100)},
		{CongestionPercent: 50, DailyEmissionsTons: 3.1, AQI: intPtr(100)},
	}

	correlations := insights.CorridorCorrelations(corridors)
	assert.Empty(t, correlations)
}

func TestCorridorCorrelations_MissingAQIOmitsPair(t *testing.T) {
	// AQI missing on one corridor makes the AQI series shorter than the
	// congestion series, so only the emissions pair survives.
	corridors := []traffic.Corridor{
		{CongestionPercent: 80, DailyEmissionsTons: 3.9, AQI: intPtr(120)},
		{CongestionPercent: 60, DailyEmissionsTons: 3.4},
		{CongestionPercent: 40, DailyEmissionsTons: 2.8, AQI: intPtr(80)},
	}

	correlations := insights.CorridorCorrelations(corridors)
	assert.Contains(t, correlations, insights.PairCongestionEmissions)
	assert.NotContains(t, correlations, insights.PairCongestionAQI)
}

func TestCorridorCorrelations_Empty(t *testing.T) {
	correlations := insights.CorridorCorrelations(nil)
	assert.NotNil(t, correlations)
	assert.Empty(t, correlations)
}
