// Package traffic simulates traffic corridors around a city centre and
// distributes the city AQI across them.
package traffic

// Corridor is a simulated traffic-monitoring point near the city centre,
// not a real road segment. Corridors are created fresh per request and
// never persisted.
type Corridor struct {
	// ID numbers corridors 1..N in offset order.
	ID int

	// Name combines the city with the offset direction.
	Name string

	// Issue is the canned issue label.
	Issue string

	// CongestionPercent is the relative speed reduction, 0-100.
	CongestionPercent float64

	// DailyEmissionsTons is the per-corridor emission estimate.
	DailyEmissionsTons float64

	// AQI is nil until the propagator assigns a local value.
	AQI *int

	// CenterLat and CenterLon locate the sampled point.
	CenterLat float64
	CenterLon float64
}

// Stats aggregates the corridor set for one request. Both fields are nil
// when there are no corridors.
type Stats struct {
	AvgCongestion *float64
	MaxCongestion *float64
}

// FlowSample is a live traffic flow reading at a point. Speeds are nil
// when the provider did not report them.
type FlowSample struct {
	CurrentSpeed  *float64
	FreeFlowSpeed *float64
}
