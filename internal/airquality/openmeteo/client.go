// Package openmeteo provides a client for the Open-Meteo air quality
// archive.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/geosense/geosense/internal/airquality"
	"github.com/geosense/geosense/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the Open-Meteo air quality API.
	DefaultBaseURL = "https://air-quality-api.open-meteo.com/v1"

	// ProviderName identifies this provider.
	ProviderName = "open-meteo"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
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

// Client is an Open-Meteo air quality archive client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	health     *resilience.Registry
}

// NewClient creates a new Open-Meteo client. No credential is needed;
// the archive is an open API.
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
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		health:     cfg.Health,
	}
}

type archiveResponse struct {
	Hourly hourlyBlock `json:"hourly"`
}

type hourlyBlock struct {
	Time []string   `json:"time"`
	PM25 []*float64 `json:"pm2_5"`
}

// FetchHourlyPM25 retrieves hourly PM2.5 samples for a coordinate between
// two dates inclusive. An empty or ragged payload yields an empty sample
// set, not an error.
func (c *Client) FetchHourlyPM25(ctx context.Context, lat, lon float64, startDate, endDate time.Time) ([]airquality.HourlySample, error) {
	samples, err := c.fetchHourlyPM25(ctx, lat, lon, startDate, endDate)
	if c.health != nil {
		if err != nil {
			c.health.RecordFailure(ProviderName, err)
		} else {
			c.health.RecordSuccess(ProviderName)
		}
	}
	return samples, err
}

func (c *Client) fetchHourlyPM25(ctx context.Context, lat, lon float64, startDate, endDate time.Time) ([]airquality.HourlySample, error) {
	u := fmt.Sprintf("%s/air-quality?latitude=%.4f&longitude=%.4f&start_date=%s&end_date=%s&hourly=pm2_5",
		c.baseURL, lat, lon,
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from archive", resp.StatusCode)
	}

	var payload archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode archive response: %w", err)
	}

	times := payload.Hourly.Time
	values := payload.Hourly.PM25
	if len(times) == 0 || len(values) == 0 || len(times) != len(values) {
		return nil, nil
	}

	samples := make([]airquality.HourlySample, 0, len(times))
	for i, t := range times {
		samples = append(samples, airquality.HourlySample{
			Time: t,
			PM25: values[i],
		})
	}
	return samples, nil
}
