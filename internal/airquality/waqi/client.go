// Package waqi provides a client for the World Air Quality Index feed.
package waqi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geosense/geosense/internal/airquality"
	"github.com/geosense/geosense/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the WAQI API.
	DefaultBaseURL = "https://api.waqi.info"

	// ProviderName identifies this provider.
	ProviderName = "waqi"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the WAQI client.
type ClientConfig struct {
	// Token is the WAQI API token (required).
	Token string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// Health is the provider registry to record outcomes in (optional).
	Health *resilience.Registry
}

// Client is a WAQI API client.
type Client struct {
	token      string
	baseURL    string
	httpClient HTTPDoer
	health     *resilience.Registry
}

// NewClient creates a new WAQI client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		})
	}

	return &Client{
		token:      cfg.Token,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		health:     cfg.Health,
	}
}

// API response types (from the WAQI city feed).

type feedResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	AQI  json.RawMessage      `json:"aqi"`
	IAQI map[string]iaqiValue `json:"iaqi"`
	City cityMeta             `json:"city"`
}

type iaqiValue struct {
	V float64 `json:"v"`
}

type cityMeta struct {
	Name string    `json:"name"`
	Geo  []float64 `json:"geo"`
	URL  string    `json:"url"`
}

// FetchCity retrieves the current snapshot for a city by its feed name.
func (c *Client) FetchCity(ctx context.Context, cityName string) (*airquality.Snapshot, error) {
	snapshot, err := c.fetchCity(ctx, cityName)
	if c.health != nil {
		if err != nil {
			c.health.RecordFailure(ProviderName, err)
		} else {
			c.health.RecordSuccess(ProviderName)
		}
	}
	return snapshot, err
}

func (c *Client) fetchCity(ctx context.Context, cityName string) (*airquality.Snapshot, error) {
	if c.token == "" {
		return nil, airquality.ErrMissingToken
	}

	u := fmt.Sprintf("%s/feed/%s/?token=%s", c.baseURL, url.PathEscape(cityName), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", airquality.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from city feed", airquality.ErrProviderUnavailable, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", airquality.ErrMalformedPayload, err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("%w: feed status %q", airquality.ErrProviderUnavailable, payload.Status)
	}

	var data feedData
	if err := json.Unmarshal(payload.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", airquality.ErrMalformedPayload, err)
	}

	return c.toSnapshot(&data), nil
}

// toSnapshot converts feed data to the domain Snapshot.
func (c *Client) toSnapshot(data *feedData) *airquality.Snapshot {
	snapshot := &airquality.Snapshot{
		AQI:       parseAQI(data.AQI),
		PM25:      data.concentration("pm25"),
		PM10:      data.concentration("pm10"),
		NO2:       data.concentration("no2"),
		CO:        data.concentration("co"),
		O3:        data.concentration("o3"),
		SO2:       data.concentration("so2"),
		FetchedAt: time.Now(),
		Provider:  ProviderName,
	}

	snapshot.Station.Name = data.City.Name
	snapshot.Station.URL = data.City.URL
	if len(data.City.Geo) >= 2 {
		snapshot.Station.Lat = data.City.Geo[0]
		snapshot.Station.Lon = data.City.Geo[1]
	}

	return snapshot
}

// concentration extracts one pollutant reading, nil when absent.
func (d *feedData) concentration(key string) *float64 {
	if v, ok := d.IAQI[key]; ok {
		value := v.V
		return &value
	}
	return nil
}

// parseAQI decodes the feed AQI field, which is a number for live
// stations but the string "-" for stale ones. Non-numeric values map
// to nil rather than an error.
func parseAQI(raw json.RawMessage) *int {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	aqi := int(math.Round(v))
	return &aqi
}
