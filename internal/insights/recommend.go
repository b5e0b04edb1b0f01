package insights

// Recommendations holds four named lists of guidance text. The first two
// are always populated; the last two depend on the city AQI band and stay
// empty when the AQI is unknown.
type Recommendations struct {
	TrafficManagement []string `json:"trafficManagement"`
	UrbanPlanning     []string `json:"urbanPlanning"`
	PollutionControl  []string `json:"pollutionControl"`
	CitizenAwareness  []string `json:"citizenAwareness"`
}

// AQI band boundaries for the conditional recommendations.
const (
	severeAQIBand   = 150
	moderateAQIBand = 100
)

// Recommend selects guidance from the city AQI. One entry is appended to
// each conditional category per band; the bands are mutually exclusive.
func Recommend(cityAQI *int) Recommendations {
	rec := Recommendations{
		TrafficManagement: []string{
			"Prioritize public transport on high-AQI days.",
			"Implement dynamic congestion management on worst corridors.",
		},
		UrbanPlanning: []string{
			"Plan green buffers around high-AQI hotspots.",
		},
		PollutionControl: []string{},
		CitizenAwareness: []string{},
	}

	if cityAQI == nil {
		return rec
	}

	switch {
	case *cityAQI >= severeAQIBand:
		rec.PollutionControl = append(rec.PollutionControl,
			"Trigger red-alert protocol: restrict heavy diesel vehicles in core areas.")
		rec.CitizenAwareness = append(rec.CitizenAwareness,
			"Advise citizens to limit outdoor activity and use masks.")
	case *cityAQI >= moderateAQIBand:
		rec.PollutionControl = append(rec.PollutionControl,
			"Increase roadside emission checks for polluting vehicles.")
		rec.CitizenAwareness = append(rec.CitizenAwareness,
			"Encourage work-from-home and carpooling on moderate AQI days.")
	default:
		rec.PollutionControl = append(rec.PollutionControl,
			"Maintain current emission control policies and expand EV infrastructure.")
		rec.CitizenAwareness = append(rec.CitizenAwareness,
			"Promote off-peak travel and public transport usage.")
	}

	return rec
}
