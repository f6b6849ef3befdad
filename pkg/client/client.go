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

package client

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
	"github.com/solpipe-project/solpipe-go/pkg/config"
	"github.com/solpipe-project/solpipe-go/pkg/transport"
	"github.com/solpipe-project/solpipe-go/pkg/wallet"
)

// Client is the entry point for talking to a solpipe backend. Operations
// are grouped by concern: Auth for signature verification, Wallet for
// signing and balances, Pipeline for resource creation.
//
// A Client is immutable after New and safe for concurrent use; any number
// of operations may be in flight at once.
type Client struct {
	cfg     config.Config
	tr      *transport.Transport
	signer  wallet.Signer
	logger  zerolog.Logger
	metrics *transport.Metrics

	// Auth verifies wallet signatures against the backend.
	Auth *AuthService

	// Wallet signs messages locally and queries balances.
	Wallet *WalletService

	// Pipeline creates pipeline resources.
	Pipeline *PipelineService
}

// Option configures a Client beyond its connection settings.
type Option func(*Client) error

// WithSigner binds the signer used by Wallet.SignMessage.
func WithSigner(s wallet.Signer) Option {
	return func(c *Client) error {
		c.signer = s
		return nil
	}
}

// WithLogger attaches a zerolog logger to the underlying transport.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics attaches a Prometheus metrics collector to the underlying
// transport.
func WithMetrics(m *transport.Metrics) Option {
	return func(c *Client) error {
		c.metrics = m
		return nil
	}
}

// New constructs a Client. The configuration is normalized exactly once,
// here; a normalization failure is returned as a plain configuration error
// before any request can be made.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	normalized, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}

	c := &Client{cfg: normalized, logger: zerolog.Nop()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.tr = transport.New(
		transport.WithRoundTripper(normalized.Transport),
		transport.WithTimeout(normalized.Timeout),
		transport.WithLogger(c.logger),
		transport.WithMetrics(c.metrics),
	)

	c.Auth = &AuthService{client: c}
	c.Wallet = &WalletService{client: c}
	c.Pipeline = &PipelineService{client: c}
	return c, nil
}

// Config returns a copy of the normalized configuration.
func (c *Client) Config() config.Config {
	return c.cfg
}

// Endpoint returns the normalized backend base URL.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint
}

// url joins the backend endpoint with an API path.
func (c *Client) url(path string) string {
	return c.cfg.Endpoint + path
}

// parseObject decodes a response body as a JSON object, failing with a
// Validation error when the backend replied with anything else. This is
// how callers distinguish "backend reachable but replied with garbage"
// from transport-level failures.
func parseObject(body []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, apierr.WrapValidation("response is not a JSON object", err)
	}
	if obj == nil {
		return nil, apierr.NewValidation("response is not a JSON object")
	}
	return obj, nil
}
