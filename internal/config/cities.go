// Package config provides environment configuration and the static city
// profile registry for the GeoSense API.
package config

import "sort"

// Overview holds the static environmental overview block for a city.
type Overview struct {
	TotalCO2Tons       float64 `json:"totalCO2Tons"`
	FuelWastedLiters   int     `json:"fuelWastedLiters"`
	AffectedPopulation int     `json:"affectedPopulation"`
	EcoScore           int     `json:"ecoScore"`
}

// CityProfile describes a supported city: the name the air quality feed
// knows it by, its centre coordinates, the static overview block, and the
// constants the corridor simulator uses for fallback data.
type CityProfile struct {
	// Key is the lowercase lookup key.
	Key string

	// WAQIName is the city name used by the live air quality feed.
	WAQIName string

	// Lat and Lon are the city centre coordinates.
	Lat float64
	Lon float64

	// Overview is the static environmental overview block.
	Overview Overview

	// CongestionLow and CongestionHigh bound the plausible congestion
	// band used when live traffic data is missing or implausible.
	CongestionLow  float64
	CongestionHigh float64

	// EmissionBase is the per-corridor base emission estimate in tons/day.
	EmissionBase float64

	// BaseAQI is the typical city AQI, used only as a fallback reference.
	BaseAQI int
}

// Default simulator constants for cities without published bands.
const (
	DefaultCongestionLow  = 40
	DefaultCongestionHigh = 70
	DefaultEmissionBase   = 3.0
	DefaultBaseAQI        = 100
)

// DefaultCityKey is the profile substituted for unrecognized city keys.
const DefaultCityKey = "hyderabad"

// CityRegistry is an immutable keyed lookup of city profiles.
type CityRegistry struct {
	profiles map[string]CityProfile
}

// NewCityRegistry builds the registry of supported cities.
func NewCityRegistry() *CityRegistry {
	profiles := map[string]CityProfile{
		"hyderabad": {
			WAQIName: "Hyderabad", Lat: 17.3850, Lon: 78.4867,
			Overview:      Overview{TotalCO2Tons: 1.1, FuelWastedLiters: 3200, AffectedPopulation: 9_000_000, EcoScore: 46},
			CongestionLow: 30, CongestionHigh: 60, EmissionBase: 2.8, BaseAQI: 110,
		},
		"bangalore": {
			WAQIName: "Bengaluru", Lat: 12.9716, Lon: 77.5946,
			Overview:      Overview{TotalCO2Tons: 1.0, FuelWastedLiters: 3000, AffectedPopulation: 12_000_000, EcoScore: 48},
			CongestionLow: 40, CongestionHigh: 75, EmissionBase: 3.2, BaseAQI: 100,
		},
		// alias
		"bengaluru": {
			WAQIName: "Bengaluru", Lat: 12.9716, Lon: 77.5946,
			Overview:      Overview{TotalCO2Tons: 1.0, FuelWastedLiters: 3000, AffectedPopulation: 12_000_000, EcoScore: 48},
			CongestionLow: 40, CongestionHigh: 75, EmissionBase: 3.2, BaseAQI: 100,
		},
		"mumbai": {
			WAQIName: "Mumbai", Lat: 19.0760, Lon: 72.8777,
			Overview:      Overview{TotalCO2Tons: 1.6, FuelWastedLiters: 4700, AffectedPopulation: 20_000_000, EcoScore: 42},
			CongestionLow: 45, CongestionHigh: 80, EmissionBase: 3.8, BaseAQI: 120,
		},
		"delhi": {
			WAQIName: "Delhi", Lat: 28.6139, Lon: 77.2090,
			Overview:      Overview{TotalCO2Tons: 1.8, FuelWastedLiters: 5200, AffectedPopulation: 33_000_000, EcoScore: 38},
			CongestionLow: 50, CongestionHigh: 85, EmissionBase: 4.2, BaseAQI: 180,
		},
		"chennai": {
			WAQIName: "Chennai", Lat: 13.0827, Lon: 80.2707,
			Overview:      Overview{TotalCO2Tons: 1.2, FuelWastedLiters: 3100, AffectedPopulation: 11_000_000, EcoScore: 47},
			CongestionLow: 35, CongestionHigh: 65, EmissionBase: 3.0, BaseAQI: 105,
		},
		"pune": {
			WAQIName: "Pune", Lat: 18.5204, Lon: 73.8567,
			Overview:      Overview{TotalCO2Tons: 0.9, FuelWastedLiters: 2500, AffectedPopulation: 7_000_000, EcoScore: 52},
			CongestionLow: 35, CongestionHigh: 55, EmissionBase: 2.5, BaseAQI: 95,
		},
		"kolkata": {
			WAQIName: "Kolkata", Lat: 22.5726, Lon: 88.3639,
			Overview: Overview{TotalCO2Tons: 1.4, FuelWastedLiters: 3800, AffectedPopulation: 15_000_000, EcoScore: 45},
		},
		"ahmedabad": {
			WAQIName: "Ahmedabad", Lat: 23.0225, Lon: 72.5714,
			Overview: Overview{TotalCO2Tons: 1.1, FuelWastedLiters: 2900, AffectedPopulation: 8_000_000, EcoScore: 49},
		},
		"jaipur": {
			WAQIName: "Jaipur", Lat: 26.9124, Lon: 75.7873,
			Overview: Overview{TotalCO2Tons: 1.0, FuelWastedLiters: 2600, AffectedPopulation: 4_000_000, EcoScore: 51},
		},
		"lucknow": {
			WAQIName: "Lucknow", Lat: 26.8467, Lon: 80.9462,
			Overview: Overview{TotalCO2Tons: 1.3, FuelWastedLiters: 3300, AffectedPopulation: 3_500_000, EcoScore: 44},
		},
		"surat": {
			WAQIName: "Surat", Lat: 21.1702, Lon: 72.8311,
			Overview: Overview{TotalCO2Tons: 0.8, FuelWastedLiters: 2000, AffectedPopulation: 6_000_000, EcoScore: 55},
		},
		"nagpur": {
			WAQIName: "Nagpur", Lat: 21.1458, Lon: 79.0882,
			Overview: Overview{TotalCO2Tons: 0.7, FuelWastedLiters: 1800, AffectedPopulation: 3_000_000, EcoScore: 57},
		},
		"visakhapatnam": {
			WAQIName: "Visakhapatnam", Lat: 17.6868, Lon: 83.2185,
			Overview: Overview{TotalCO2Tons: 0.9, FuelWastedLiters: 2300, AffectedPopulation: 5_000_000, EcoScore: 53},
		},
		"bhopal": {
			WAQIName: "Bhopal", Lat: 23.2599, Lon: 77.4126,
			Overview: Overview{TotalCO2Tons: 0.8, FuelWastedLiters: 1900, AffectedPopulation: 2_500_000, EcoScore: 56},
		},
		"patna": {
			WAQIName: "Patna", Lat: 25.5941, Lon: 85.1376,
			Overview: Overview{TotalCO2Tons: 1.5, FuelWastedLiters: 3500, AffectedPopulation: 3_000_000, EcoScore: 41},
		},
	}

	for key, p := range profiles {
		p.Key = key
		if p.CongestionLow == 0 && p.CongestionHigh == 0 {
			p.CongestionLow = DefaultCongestionLow
			p.CongestionHigh = DefaultCongestionHigh
		}
		if p.EmissionBase == 0 {
			p.EmissionBase = DefaultEmissionBase
		}
		if p.BaseAQI == 0 {
			p.BaseAQI = DefaultBaseAQI
		}
		profiles[key] = p
	}

	return &CityRegistry{profiles: profiles}
}

// Lookup returns the profile for a city key. Unknown keys resolve to the
// default profile; the boolean reports whether the key was recognized.
func (r *CityRegistry) Lookup(key string) (CityProfile, bool) {
	if p, ok := r.profiles[key]; ok {
		return p, true
	}
	return r.profiles[DefaultCityKey], false
}

// Keys returns all recognized city keys in sorted order.
func (r *CityRegistry) Keys() []string {
	keys := make([]string, 0, len(r.profiles))
	for key := range r.profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of registered profiles.
func (r *CityRegistry) Count() int {
	return len(r.profiles)
}
