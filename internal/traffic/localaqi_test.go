package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosense/geosense/internal/traffic"
)

func corridorsWithCongestion(values ...float64) []traffic.Corridor {
	out := make([]traffic.Corridor, len(values))
	for i, v := range values {
		out[i] = traffic.Corridor{ID: i + 1, CongestionPercent: v}
	}
	return out
}

func TestApplyLocalAQI_ShiftsAroundAverage(t *testing.T) {
	corridors := corridorsWithCongestion(80, 60, 40)
	stats := traffic.Stats{AvgCongestion: floatPtr(60)}

	traffic.ApplyLocalAQI(intPtr(100), corridors, stats)

	require.NotNil(t, corridors[0].AQI)
	assert.Equal(t, 112, *corridors[0].AQI)
	require.NotNil(t, corridors[1].AQI)
	assert.Equal(t, 100, *corridors[1].AQI)
	require.NotNil(t, corridors[2].AQI)
	assert.Equal(t, 88, *corridors[2].AQI)
}

func TestApplyLocalAQI_ClampsToScale(t *testing.T) {
	corridors := corridorsWithCongestion(100, 0)
	stats := traffic.Stats{AvgCongestion: floatPtr(50)}

	traffic.ApplyLocalAQI(intPtr(495), corridors, stats)
	require.NotNil(t, corridors[0].AQI)
	assert.Equal(t, 500, *corridors[0].AQI)

	corridors = corridorsWithCongestion(0, 100)
	traffic.ApplyLocalAQI(intPtr(10), corridors, stats)
	require.NotNil(t, corridors[0].AQI)
	assert.Equal(t, 0, *corridors[0].AQI)
}

func TestApplyLocalAQI_NilCityAQIUsesFallback(t *testing.T) {
	corridors := corridorsWithCongestion(80, 20)
	stats := traffic.Stats{AvgCongestion: floatPtr(50)}

	traffic.ApplyLocalAQI(nil, corridors, stats)

	for _, c := range corridors {
		require.NotNil(t, c.AQI)
		assert.Equal(t, 100, *c.AQI)
	}
}

func TestApplyLocalAQI_MissingStatsTreatsAverageAsZero(t *testing.T) {
	corridors := corridorsWithCongestion(50)

	traffic.ApplyLocalAQI(intPtr(100), corridors, traffic.Stats{})

	require.NotNil(t, corridors[0].AQI)
	assert.Equal(t, 130, *corridors[0].AQI)
}

func TestApplyLocalAQI_EmptyCorridors(t *testing.T) {
	assert.NotPanics(t, func() {
		traffic.ApplyLocalAQI(intPtr(100), nil, traffic.Stats{})
	})
}
