package transport

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test successful requests are counted with their status code
func TestMetricsRecordsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)

	tr := New(
		WithMetrics(m),
		WithRoundTripper(RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `{}`), nil
		})),
	)

	_, err := tr.Get(context.Background(), "https://api.example.com/x", nil)
	require.NoError(t, err)

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "200"))
	assert.Equal(t, float64(1), count)

	inFlight := testutil.ToFloat64(m.requestsInFlight.WithLabelValues("GET"))
	assert.Equal(t, float64(0), inFlight)
}

// Test failures are counted by classified kind
func TestMetricsRecordsErrorKind(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)

	tr := New(
		WithMetrics(m),
		WithTimeout(10*time.Millisecond),
		WithRoundTripper(RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			time.Sleep(200 * time.Millisecond)
			return jsonResponse(200, `{}`), nil
		})),
	)

	_, err := tr.Get(context.Background(), "https://api.example.com/x", nil)
	require.Error(t, err)

	count := testutil.ToFloat64(m.errorsTotal.WithLabelValues("GET", "timeout"))
	assert.Equal(t, float64(1), count)
}
