package airquality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosense/geosense/internal/airquality"
)

func TestAggregateTrend_BucketsByDay(t *testing.T) {
	samples := []airquality.HourlySample{
		{Time: "2026-08-01T00:00", PM25: floatPtr(20)},
		{Time: "2026-08-01T01:00", PM25: floatPtr(40)},
		{Time: "2026-08-02T00:00", PM25: floatPtr(90)},
	}

	points := airquality.AggregateTrend(samples)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-08-01", points[0].Date)
	assert.Equal(t, 30.0, points[0].PM25)
	assert.Equal(t, 50, points[0].AQI)

	assert.Equal(t, "2026-08-02", points[1].Date)
	assert.Equal(t, 90.0, points[1].PM25)
	assert.Equal(t, 150, points[1].AQI)
}

func TestAggregateTrend_DropsNullSamples(t *testing.T) {
	samples := []airquality.HourlySample{
		{Time: "2026-08-01T00:00", PM25: nil},
		{Time: "2026-08-01T01:00", PM25: floatPtr(60)},
		{Time: "2026-08-02T00:00", PM25: nil},
	}

	points := airquality.AggregateTrend(samples)
	require.Len(t, points, 1)

	// The null hour does not drag the average down, and the all-null day
	// produces no point at all.
	assert.Equal(t, "2026-08-01", points[0].Date)
	assert.Equal(t, 60.0, points[0].PM25)
}

func TestAggregateTrend_OrdersAscendingRegardlessOfInput(t *testing.T) {
	samples := []airquality.HourlySample{
		{Time: "2026-08-03T05:00", PM25: floatPtr(10)},
		{Time: "2026-08-01T05:00", PM25: floatPtr(20)},
		{Time: "2026-08-02T05:00", PM25: floatPtr(30)},
	}

	points := airquality.AggregateTrend(samples)
	require.Len(t, points, 3)
	assert.Equal(t, "2026-08-01", points[0].Date)
	assert.Equal(t, "2026-08-02", points[1].Date)
	assert.Equal(t, "2026-08-03", points[2].Date)
}

func TestAggregateTrend_RoundsDailyAverage(t *testing.T) {
	samples := []airquality.HourlySample{
		{Time: "2026-08-01T00:00", PM25: floatPtr(10)},
		{Time: "2026-08-01T01:00", PM25: floatPtr(10)},
		{Time: "2026-08-01T02:00", PM25: floatPtr(11)},
	}

	points := airquality.AggregateTrend(samples)
	require.Len(t, points, 1)
	assert.Equal(t, 10.33, points[0].PM25)
}

func TestAggregateTrend_Empty(t *testing.T) {
	assert.Empty(t, airquality.AggregateTrend(nil))
	assert.Empty(t, airquality.AggregateTrend([]airquality.HourlySample{
		{Time: "2026-08-01T00:00", PM25: nil},
	}))
}

func TestAggregateTrend_MalformedTimestamps(t *testing.T) {
	samples := []airquality.HourlySample{
		{Time: "not-a-timestamp", PM25: floatPtr(10)},
		{Time: "", PM25: floatPtr(10)},
		{Time: "2026-08-01T00:00", PM25: floatPtr(42)},
	}

	points := airquality.AggregateTrend(samples)
	require.Len(t, points, 1)
	assert.Equal(t, 42.0, points[0].PM25)
}

func TestSummarizeTrend(t *testing.T) {
	points := []airquality.TrendPoint{
		{Date: "2026-08-01", PM25: 30, AQI: 50},
		{Date: "2026-08-02", PM25: 90, AQI: 150},
		{Date: "2026-08-03", PM25: 60, AQI: 100},
	}

	summary := airquality.SummarizeTrend(points)

	assert.Equal(t, 3, summary.DataPoints)
	require.NotNil(t, summary.AvgPM25)
	assert.Equal(t, 60.0, *summary.AvgPM25)
	require.NotNil(t, summary.MaxPM25)
	assert.Equal(t, 90.0, *summary.MaxPM25)
	require.NotNil(t, summary.MaxPM25Date)
	assert.Equal(t, "2026-08-02", *summary.MaxPM25Date)
}

func TestSummarizeTrend_TieKeepsFirstDate(t *testing.T) {
	points := []airquality.TrendPoint{
		{Date: "2026-08-01", PM25: 90, AQI: 150},
		{Date: "2026-08-02", PM25: 90, AQI: 150},
	}

	summary := airquality.SummarizeTrend(points)
	require.NotNil(t, summary.MaxPM25Date)
	assert.Equal(t, "2026-08-01", *summary.MaxPM25Date)
}

func TestSummarizeTrend_Empty(t *testing.T) {
	summary := airquality.SummarizeTrend(nil)

	assert.Equal(t, 0, summary.DataPoints)
	assert.Nil(t, summary.AvgPM25)
	assert.Nil(t, summary.MaxPM25)
	assert.Nil(t, summary.MaxPM25Date)
}
