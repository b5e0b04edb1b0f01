// Package airquality provides the pollutant snapshot, the PM2.5-to-AQI
// mapping, the feed reconciliation rule, and the historical trend
// aggregation.
package airquality

import (
	"errors"
	"time"
)

// Provider errors.
var (
	// ErrMissingToken means the live feed credential is not configured.
	ErrMissingToken = errors.New("air quality token not configured")

	// ErrProviderUnavailable means the live feed could not be reached
	// or returned a non-success status.
	ErrProviderUnavailable = errors.New("air quality provider unavailable")

	// ErrMalformedPayload means the live feed returned an unparseable body.
	ErrMalformedPayload = errors.New("air quality payload malformed")
)

// Snapshot is a normalized point-in-time reading from the live feed.
// Pointer fields are nil when the feed did not report the value.
type Snapshot struct {
	AQI  *int
	PM25 *float64
	PM10 *float64
	NO2  *float64
	CO   *float64
	O3   *float64
	SO2  *float64

	// Station is opaque metadata about the reporting station.
	Station StationMeta

	// FetchedAt is when the snapshot was retrieved.
	FetchedAt time.Time

	// Provider identifies the data source.
	Provider string
}

// StationMeta describes the station behind a snapshot.
type StationMeta struct {
	Name string
	Lat  float64
	Lon  float64
	URL  string
}

// HourlySample is one hourly PM2.5 reading from the historical archive.
// The timestamp keeps the archive's own local-time string; only its date
// portion is ever used.
type HourlySample struct {
	Time string
	PM25 *float64
}
