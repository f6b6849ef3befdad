package client

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpipe-project/solpipe-go/pkg/config"
)

// stubTransport records every request and replies with a canned response.
type stubTransport struct {
	status      int
	body        string
	contentType string

	calls    int
	lastReq  *http.Request
	lastBody []byte
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	s.lastReq = req
	if req.Body != nil {
		s.lastBody, _ = io.ReadAll(req.Body)
	}

	ct := s.contentType
	if ct == "" {
		ct = "application/json"
	}
	return &http.Response{
		StatusCode: s.status,
		Status:     fmt.Sprintf("%d %s", s.status, http.StatusText(s.status)),
		Header:     http.Header{"Content-Type": []string{ct}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func newTestClient(t *testing.T, stub *stubTransport, opts ...Option) *Client {
	t.Helper()
	c, err := New(config.Config{
		Endpoint:  "https://api.example.com",
		Transport: stub,
	}, opts...)
	require.NoError(t, err)
	return c
}

// Test New normalizes the configuration once, at construction
func TestNewNormalizesConfig(t *testing.T) {
	c, err := New(config.Config{Endpoint: "https://api.example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", c.Endpoint())
	assert.Equal(t, config.NetworkMainnetBeta, c.Config().Network)
	assert.Equal(t, config.DefaultTimeout, c.Config().Timeout)
}

// Test New rejects invalid configuration before any request can be made
func TestNewInvalidConfig(t *testing.T) {
	_, err := New(config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")

	_, err = New(config.Config{Endpoint: "api.example.com"})
	assert.Error(t, err)

	_, err = New(config.Config{Endpoint: "https://api.example.com", Timeout: -time.Second})
	assert.Error(t, err)
}

// Test the service groups are all wired
func TestNewServices(t *testing.T) {
	c := newTestClient(t, &stubTransport{status: 200, body: `{}`})

	assert.NotNil(t, c.Auth)
	assert.NotNil(t, c.Wallet)
	assert.NotNil(t, c.Pipeline)
}

// Test Config returns a copy the caller cannot use to mutate the client
func TestConfigIsCopy(t *testing.T) {
	c := newTestClient(t, &stubTransport{status: 200, body: `{}`})

	cfg := c.Config()
	cfg.Endpoint = "https://evil.example.com"

	assert.Equal(t, "https://api.example.com", c.Endpoint())
}
