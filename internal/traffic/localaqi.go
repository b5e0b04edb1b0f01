package traffic

import "math"

const (
	// fallbackLocalAQI is assigned when the city AQI is unknown. It is a
	// "no information" placeholder, not an estimate.
	fallbackLocalAQI = 100

	// congestionSpanPct and aqiSpanPoints define the propagation slope:
	// a +/-50 percentage-point congestion deviation from the corridor
	// mean maps to +/-30 AQI points around the city baseline.
	congestionSpanPct = 50.0
	aqiSpanPoints     = 30.0
)

// ApplyLocalAQI fills each corridor's AQI from the city-level value,
// shifted proportionally to the corridor's congestion deviation from the
// average and clamped to [0, 500]. A nil city AQI assigns the fixed
// fallback to every corridor instead.
func ApplyLocalAQI(cityAQI *int, corridors []Corridor, stats Stats) {
	if cityAQI == nil {
		for i := range corridors {
			aqi := fallbackLocalAQI
			corridors[i].AQI = &aqi
		}
		return
	}

	avg := 0.0
	if stats.AvgCongestion != nil {
		avg = *stats.AvgCongestion
	}

	base := float64(*cityAQI)
	for i := range corridors {
		deviation := corridors[i].CongestionPercent - avg
		local := base + (deviation/congestionSpanPct)*aqiSpanPoints
		aqi := int(math.Min(500, math.Max(0, math.Round(local))))
		corridors[i].AQI = &aqi
	}
}
