package tomtom_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosense/geosense/internal/traffic/tomtom"
)

func newTestClient(serverURL string) *tomtom.Client {
	return tomtom.NewClient(tomtom.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    serverURL,
		HTTPClient: http.DefaultClient,
	})
}

func TestClient_FetchFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/traffic/services/4/flowSegmentData/absolute/10/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "17.445000,78.486700", r.URL.Query().Get("point"))

		_, _ = w.Write([]byte(`{"flowSegmentData":{"currentSpeed":32,"freeFlowSegment":0,"freeFlowSpeed":58}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	flow, err := client.FetchFlow(context.Background(), 17.445, 78.4867)
	require.NoError(t, err)

	require.NotNil(t, flow.CurrentSpeed)
	assert.Equal(t, 32.0, *flow.CurrentSpeed)
	require.NotNil(t, flow.FreeFlowSpeed)
	assert.Equal(t, 58.0, *flow.FreeFlowSpeed)
}

func TestClient_FetchFlow_MissingSpeeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"flowSegmentData":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	flow, err := client.FetchFlow(context.Background(), 17.445, 78.4867)
	require.NoError(t, err)
	assert.Nil(t, flow.CurrentSpeed)
	assert.Nil(t, flow.FreeFlowSpeed)
}

func TestClient_FetchFlow_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchFlow(context.Background(), 17.445, 78.4867)
	assert.Error(t, err)
}

func TestClient_FetchFlow_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchFlow(context.Background(), 17.445, 78.4867)
	assert.Error(t, err)
}
