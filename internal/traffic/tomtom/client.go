// Package tomtom provides a client for the TomTom traffic flow API.
package tomtom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geosense/geosense/internal/provider/resilience"
	"github.com/geosense/geosense/internal/traffic"
)

const (
	// DefaultBaseURL is the base URL for the TomTom traffic API.
	DefaultBaseURL = "https://api.tomtom.com"

	// flowPath is the absolute flow segment endpoint, zoom 10.
	flowPath = "/traffic/services/4/flowSegmentData/absolute/10/json"

	// ProviderName identifies this provider.
	ProviderName = "tomtom"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the TomTom client.
type ClientConfig struct {
	// APIKey is the TomTom API key (required).
	APIKey string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 8s).
	Timeout time.Duration

	// Health is the provider registry to record outcomes in (optional).
	Health *resilience.Registry
}

// Client is a TomTom traffic flow client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	health     *resilience.Registry
}

// NewClient creates a new TomTom client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 8 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     3 * time.Second,
		})
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		health:     cfg.Health,
	}
}

type flowResponse struct {
	FlowSegmentData flowSegmentData `json:"flowSegmentData"`
}

type flowSegmentData struct {
	CurrentSpeed  *float64 `json:"currentSpeed"`
	FreeFlowSpeed *float64 `json:"freeFlowSpeed"`
}

// FetchFlow retrieves the traffic flow reading at a coordinate. Failures
// surface as errors; the corridor simulator absorbs them via its fallback.
func (c *Client) FetchFlow(ctx context.Context, lat, lon float64) (*traffic.FlowSample, error) {
	flow, err := c.fetchFlow(ctx, lat, lon)
	if c.health != nil {
		if err != nil {
			c.health.RecordFailure(ProviderName, err)
		} else {
			c.health.RecordSuccess(ProviderName)
		}
	}
	return flow, err
}

func (c *Client) fetchFlow(ctx context.Context, lat, lon float64) (*traffic.FlowSample, error) {
	u := fmt.Sprintf("%s%s?key=%s&point=%s",
		c.baseURL, flowPath,
		url.QueryEscape(c.apiKey),
		url.QueryEscape(fmt.Sprintf("%.6f,%.6f", lat, lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch flow: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from flow endpoint", resp.StatusCode)
	}

	var payload flowResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode flow response: %w", err)
	}

	return &traffic.FlowSample{
		CurrentSpeed:  payload.FlowSegmentData.CurrentSpeed,
		FreeFlowSpeed: payload.FlowSegmentData.FreeFlowSpeed,
	}, nil
}
