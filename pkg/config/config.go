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

// Package config describes and normalizes the connection settings shared by
// every solpipe-go operation.
//
// Normalize runs exactly once, when the client facade is constructed, and
// returns a filled-in copy: the endpoint is checked and stripped of its
// trailing slash, the network and timeout defaults are applied, and the
// injected round tripper passes through untouched. The result is treated as
// immutable by everything downstream.
//
// Normalization failures are plain configuration errors, not part of the
// runtime error taxonomy: a bad Config never gets as far as issuing a
// request.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/solpipe-project/solpipe-go/pkg/transport"
)

// Network identifies the Solana cluster the backend operates against.
// Treated as an open enumeration: adding a cluster is a one-line change to
// the supported set below.
type Network string

// NetworkMainnetBeta is the only cluster the backend currently supports.
const NetworkMainnetBeta Network = "mainnet-beta"

// DefaultTimeout is applied when no timeout is configured.
const DefaultTimeout = 30 * time.Second

var supportedNetworks = map[Network]struct{}{
	NetworkMainnetBeta: {},
}

// Valid reports whether the network is one the backend supports.
func (n Network) Valid() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// Config holds the connection settings for a solpipe backend.
type Config struct {
	// Endpoint is the backend base URL, e.g. "https://api.solpipe.io".
	// Required; must start with http:// or https://. A single trailing
	// slash is stripped during normalization.
	Endpoint string

	// Network selects the Solana cluster. Defaults to NetworkMainnetBeta.
	Network Network

	// Timeout bounds every request. Zero means DefaultTimeout; negative
	// values are rejected.
	Timeout time.Duration

	// Transport optionally injects the round tripper used for every
	// request. Nil means the ambient http.Client.
	Transport transport.RoundTripper
}

// Normalize validates the configuration and returns a copy with defaults
// filled in. The receiver is not modified.
func (c Config) Normalize() (Config, error) {
	if c.Endpoint == "" {
		return Config{}, fmt.Errorf("config: endpoint is required")
	}
	if !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		return Config{}, fmt.Errorf("config: endpoint %q must start with http:// or https://", c.Endpoint)
	}
	c.Endpoint = strings.TrimSuffix(c.Endpoint, "/")

	if c.Network == "" {
		c.Network = NetworkMainnetBeta
	}
	if !c.Network.Valid() {
		return Config{}, fmt.Errorf("config: unsupported network %q", c.Network)
	}

	if c.Timeout < 0 {
		return Config{}, fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	return c, nil
}
