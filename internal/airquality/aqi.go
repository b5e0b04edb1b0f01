package airquality

// AQI breakpoints: PM2.5 upper bound (µg/m³) to category AQI. This is a
// coarse fixed lookup, not the official piecewise-linear scale, and must
// not be re-derived.
var aqiBreakpoints = []struct {
	pm25 float64
	aqi  int
}{
	{30, 50},
	{60, 100},
	{90, 150},
	{120, 200},
	{250, 300},
}

// aqiCeiling is returned for PM2.5 above the last breakpoint.
const aqiCeiling = 400

// AQIFromPM25 maps a PM2.5 concentration to a category AQI.
// A nil input yields a nil output.
func AQIFromPM25(pm25 *float64) *int {
	if pm25 == nil {
		return nil
	}
	aqi := aqiCeiling
	for _, bp := range aqiBreakpoints {
		if *pm25 <= bp.pm25 {
			aqi = bp.aqi
			break
		}
	}
	return &aqi
}

// reconcileTolerance is the band, in AQI points, within which the feed's
// own AQI is trusted over the PM2.5-derived value.
const reconcileTolerance = 20

// ReconcileAQI corrects a feed AQI that under-reports relative to the
// particulate evidence: when the feed value sits more than the tolerance
// below the PM2.5-derived AQI, the derived value wins. The correction is
// one-directional; a feed value higher than the derived one is kept.
// Missing inputs disable the correction and the feed value passes through.
func ReconcileAQI(feedAQI *int, pm25 *float64) *int {
	if feedAQI == nil || pm25 == nil {
		return feedAQI
	}
	calculated := AQIFromPM25(pm25)
	if *feedAQI < *calculated-reconcileTolerance {
		return calculated
	}
	return feedAQI
}
