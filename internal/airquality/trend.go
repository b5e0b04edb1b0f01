package airquality

import (
	"math"
	"sort"
	"strings"
)

// TrendPoint is a daily PM2.5 average with its derived AQI.
type TrendPoint struct {
	// Date is the calendar date, "YYYY-MM-DD".
	Date string

	// PM25 is the daily average, rounded to 2 decimals.
	PM25 float64

	// AQI is derived from the daily average via the fixed mapping.
	AQI int
}

// TrendSummary aggregates a trend point sequence. All fields except
// DataPoints are nil when the sequence is empty.
type TrendSummary struct {
	DataPoints  int
	AvgPM25     *float64
	MaxPM25     *float64
	MaxPM25Date *string
}

// AggregateTrend buckets hourly samples into one point per calendar day,
// averaging PM2.5 within each day. Samples without a numeric value are
// dropped, not zero-filled; days with no valid sample produce no point.
// Output is ordered ascending by date regardless of input order. Zero
// usable samples yield an empty sequence.
func AggregateTrend(samples []HourlySample) []TrendPoint {
	buckets := make(map[string][]float64)
	for _, s := range samples {
		if s.PM25 == nil {
			continue
		}
		day, _, found := strings.Cut(s.Time, "T")
		if !found || day == "" {
			continue
		}
		buckets[day] = append(buckets[day], *s.PM25)
	}

	points := make([]TrendPoint, 0, len(buckets))
	for day, values := range buckets {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		avg := round2(sum / float64(len(values)))
		points = append(points, TrendPoint{
			Date: day,
			PM25: avg,
			AQI:  *AQIFromPM25(&avg),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// SummarizeTrend computes the count, the mean of per-day averages, and
// the maximum average with the first date it occurred.
func SummarizeTrend(points []TrendPoint) TrendSummary {
	if len(points) == 0 {
		return TrendSummary{}
	}

	sum := 0.0
	maxIdx := 0
	for i, p := range points {
		sum += p.PM25
		if p.PM25 > points[maxIdx].PM25 {
			maxIdx = i
		}
	}

	avg := round2(sum / float64(len(points)))
	maxVal := points[maxIdx].PM25
	maxDate := points[maxIdx].Date

	return TrendSummary{
		DataPoints:  len(points),
		AvgPM25:     &avg,
		MaxPM25:     &maxVal,
		MaxPM25Date: &maxDate,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
