package models

import "github.com/geosense/geosense/internal/insights"

// EcoReport is the full report response for one city and time window.
type EcoReport struct {
	City        string            `json:"city"`
	TimeWindow  TimeWindow        `json:"timeWindow"`
	AirQuality  AirQualitySection `json:"airQuality"`
	Traffic     TrafficSection    `json:"traffic"`
	Environment EnvironmentBlock  `json:"environment"`
	Insights    InsightsSection   `json:"insights"`
}

// TimeWindow describes the resolved reporting window.
type TimeWindow struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// AirQualitySection carries the current pollutants, the trend, and the
// window-level insights.
type AirQualitySection struct {
	Source          string          `json:"source"`
	Pollutants      Pollutants      `json:"pollutants"`
	Trend           Trend           `json:"trend"`
	MonthlyInsights MonthlyInsights `json:"monthlyInsights"`
	Station         StationMeta     `json:"station"`
}

// Pollutants holds the reconciled snapshot readings; null means the feed
// did not report the value.
type Pollutants struct {
	AQI  *int     `json:"aqi"`
	PM25 *float64 `json:"pm25"`
	PM10 *float64 `json:"pm10"`
	NO2  *float64 `json:"no2"`
	CO   *float64 `json:"co"`
	O3   *float64 `json:"o3"`
	SO2  *float64 `json:"so2"`
}

// Trend is the daily PM2.5/AQI curve over the window.
type Trend struct {
	Label  string       `json:"label"`
	Points []TrendPoint `json:"points"`
}

// TrendPoint is one day of the trend.
type TrendPoint struct {
	Date string  `json:"date"`
	PM25 float64 `json:"pm25"`
	AQI  int     `json:"aqi"`
}

// MonthlyInsights summarizes the trend sequence.
type MonthlyInsights struct {
	DataPoints  int      `json:"dataPoints"`
	AvgPM25     *float64 `json:"avgPm25"`
	MaxPM25     *float64 `json:"maxPm25"`
	MaxPM25Date *string  `json:"maxPm25Date"`
	WindowLabel string   `json:"windowLabel"`
}

// StationMeta is opaque metadata about the reporting station.
type StationMeta struct {
	Name string    `json:"name"`
	Geo  []float64 `json:"geo,omitempty"`
	URL  string    `json:"url,omitempty"`
}

// TrafficSection carries the corridor set and its aggregate stats.
type TrafficSection struct {
	Source    string           `json:"source"`
	RadiusKm  float64          `json:"radiusKm"`
	Corridors []ReportCorridor `json:"corridors"`
	Stats     TrafficStats     `json:"stats"`
}

// ReportCorridor is one simulated corridor in the response.
type ReportCorridor struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Issue              string  `json:"issue"`
	CongestionPercent  float64 `json:"congestionPercent"`
	DailyEmissionsTons float64 `json:"dailyEmissionsTons"`
	AQI                *int    `json:"aqi"`
	CenterLat          float64 `json:"centerLat"`
	CenterLon          float64 `json:"centerLon"`
}

// TrafficStats aggregates the corridor set; null when no corridors exist.
type TrafficStats struct {
	AvgCongestion *float64 `json:"avgCongestion"`
	MaxCongestion *float64 `json:"maxCongestion"`
}

// EnvironmentBlock carries the static overview and the source breakdown.
type EnvironmentBlock struct {
	Overview          CityOverview       `json:"overview"`
	EmissionBreakdown insights.Breakdown `json:"emissionBreakdown"`
}

// CityOverview is the static per-city environmental overview.
type CityOverview struct {
	TotalCO2Tons       float64 `json:"totalCO2Tons"`
	FuelWastedLiters   int     `json:"fuelWastedLiters"`
	AffectedPopulation int     `json:"affectedPopulation"`
	EcoScore           int     `json:"ecoScore"`
}

// InsightsSection carries correlations and recommendations.
type InsightsSection struct {
	Correlations    map[string]float64       `json:"correlations"`
	Recommendations insights.Recommendations `json:"recommendations"`
}

// CityInfo describes one supported city in the metadata listing.
type CityInfo struct {
	Key      string       `json:"key"`
	Name     string       `json:"name"`
	Point    Point        `json:"point"`
	Overview CityOverview `json:"overview"`
}

// CityList is the metadata listing of supported cities.
type CityList struct {
	Items []CityInfo `json:"items"`
}
