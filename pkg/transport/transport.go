// Copyright (C) 2025 Solpipe Project
//
// This file is part of solpipe-go.
//
// solpipe-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// solpipe-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with solpipe-go.  If not, see <https://www.gnu.org/licenses/>.

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
)

// RoundTripper issues a single HTTP request and yields the response. It is
// the injection point for the whole SDK: production code uses the ambient
// http.Client, tests substitute a stub.
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc adapts a plain function to the RoundTripper interface.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// DefaultTimeout is applied when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// defaultClient is the ambient transport used when none is injected. It
// carries no client-side timeout; the deadline race in Request owns that.
var defaultClient = &http.Client{}

// Transport executes single-shot HTTP requests with a deadline race,
// classifying every failure as exactly one apierr kind. It is immutable
// after construction and safe for concurrent use.
type Transport struct {
	rt      RoundTripper
	timeout time.Duration
	logger  zerolog.Logger
	metrics *Metrics
}

// Option configures a Transport.
type Option func(*Transport)

// WithRoundTripper injects the function used to issue requests. A nil
// value keeps the ambient default.
func WithRoundTripper(rt RoundTripper) Option {
	return func(t *Transport) {
		if rt != nil {
			t.rt = rt
		}
	}
}

// WithTimeout sets the deadline applied to every request. Zero or negative
// values keep the default; validation of caller-supplied timeouts happens
// in the config package before a Transport is ever built.
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithLogger attaches a zerolog logger for per-request debug lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// WithMetrics attaches a Prometheus metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(t *Transport) {
		t.metrics = m
	}
}

// New constructs a Transport from the provided options.
func New(opts ...Option) *Transport {
	t := &Transport{
		rt:      RoundTripperFunc(defaultClient.Do),
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Timeout returns the deadline applied to every request.
func (t *Transport) Timeout() time.Duration {
	return t.timeout
}

// roundTripResult carries the outcome of the in-flight request goroutine.
type roundTripResult struct {
	resp *http.Response
	err  error
}

// Request issues a single HTTP request and returns the raw response body.
//
// The request carries Content-Type: application/json by default; headers
// supplied by the caller take precedence on key collision. A nil body means
// no body at all, not an empty one. The request races against the
// configured deadline: if the deadline fires first the call fails with a
// Timeout error and the in-flight request is abandoned, not cancelled.
//
// Non-2xx responses fail with an HTTPStatus error carrying the status,
// status text and whatever body could be parsed (decoded JSON when the
// response declares it, raw text otherwise). Connectivity failures are
// wrapped as Network errors preserving their cause. Failures that already
// carry a classification pass through unchanged.
//
// The returned bytes are not shape-checked here; decoding into a typed
// result and validating it is the caller's responsibility.
func (t *Transport) Request(ctx context.Context, method, url string, body any, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.WrapValidation("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apierr.WrapValidation("invalid request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	t.logger.Debug().Str("method", method).Str("url", url).Msg("request start")
	if t.metrics != nil {
		t.metrics.recordStart(method)
	}

	resp, err := t.race(req)
	if err != nil {
		t.observe(method, url, 0, start, err)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err = apierr.NewNetwork("failed to read response body", err)
		t.observe(method, url, resp.StatusCode, start, err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = apierr.NewHTTPStatus(resp.StatusCode, statusText(resp), parseErrorBody(resp, data))
		t.observe(method, url, resp.StatusCode, start, err)
		return nil, err
	}

	t.observe(method, url, resp.StatusCode, start, nil)
	return data, nil
}

// Get issues a GET request with no body.
func (t *Transport) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return t.Request(ctx, http.MethodGet, url, nil, headers)
}

// Post issues a POST request carrying the given body.
func (t *Transport) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	return t.Request(ctx, http.MethodPost, url, body, headers)
}

// race executes the request, returning whichever of {response, deadline}
// settles first. The losing side is abandoned: the transport is not assumed
// to honor cancellation, so a late response is merely drained and dropped.
func (t *Transport) race(req *http.Request) (*http.Response, error) {
	done := make(chan roundTripResult, 1)
	go func() {
		resp, err := t.rt.RoundTrip(req)
		done <- roundTripResult{resp: resp, err: err}
	}()

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			if apierr.Classified(r.err) {
				return nil, r.err
			}
			return nil, apierr.NewNetwork("request failed", r.err)
		}
		return r.resp, nil
	case <-timer.C:
		go func() {
			// Drain the orphaned request so its body does not leak.
			if r := <-done; r.resp != nil {
				r.resp.Body.Close()
			}
		}()
		return nil, apierr.NewTimeout(t.timeout)
	}
}

func (t *Transport) observe(method, url string, status int, start time.Time, err error) {
	elapsed := time.Since(start)
	if t.metrics != nil {
		t.metrics.recordEnd(method, status, elapsed, err)
	}
	evt := t.logger.Debug().Str("method", method).Str("url", url).Dur("elapsed", elapsed)
	if err != nil {
		evt.Err(err).Msg("request failed")
		return
	}
	evt.Int("status", status).Msg("request done")
}

// isJSON reports whether the response declares a JSON body.
func isJSON(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "application/json")
}

// parseErrorBody extracts whatever can be made of a failure response body:
// a decoded JSON value when the content type declares JSON and the body
// parses, the raw text when there is any, otherwise nil.
func parseErrorBody(resp *http.Response, data []byte) any {
	if len(data) == 0 {
		return nil
	}
	if isJSON(resp) {
		var v any
		if err := json.Unmarshal(data, &v); err == nil {
			return v
		}
	}
	return string(data)
}

func statusText(resp *http.Response) string {
	// resp.Status is "404 Not Found"; strip the leading code when present.
	if i := strings.IndexByte(resp.Status, ' '); i >= 0 {
		return resp.Status[i+1:]
	}
	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}
