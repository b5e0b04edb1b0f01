package insights

import "math"

// Breakdown attributes pollution to four source categories. Values are
// fractions in [0,1] summing to 1 within rounding.
type Breakdown struct {
	Vehicles     float64 `json:"vehicles"`
	Industry     float64 `json:"industry"`
	Construction float64 `json:"construction"`
	Others       float64 `json:"others"`
}

// Prior split and adjustment thresholds for the source attribution
// heuristic. Adjustments are independent and additive; "others" is never
// adjusted directly, only diluted by renormalization.
const (
	priorVehicles     = 0.50
	priorIndustry     = 0.20
	priorConstruction = 0.20
	priorOthers       = 0.10

	pm25Threshold = 100.0
	pm10Threshold = 80.0
	no2Threshold  = 40.0
)

// EstimateBreakdown converts three pollutant concentrations into the
// normalized four-category attribution. Missing readings count as zero
// for this computation only.
func EstimateBreakdown(pm25, pm10, no2 *float64) Breakdown {
	p25 := valueOrZero(pm25)
	p10 := valueOrZero(pm10)
	n2 := valueOrZero(no2)

	vehicles := priorVehicles
	industry := priorIndustry
	construction := priorConstruction
	others := priorOthers

	if p25 > pm25Threshold {
		vehicles += 0.15
		industry += 0.05
	}
	if p10 > pm10Threshold {
		construction += 0.10
	}
	if n2 > no2Threshold {
		vehicles += 0.10
		industry += 0.05
	}

	total := vehicles + industry + construction + others
	return Breakdown{
		Vehicles:     round2(vehicles / total),
		Industry:     round2(industry / total),
		Construction: round2(construction / total),
		Others:       round2(others / total),
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
