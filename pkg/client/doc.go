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

// Package client is the solpipe-go facade: one Client, built once from a
// Config, exposing the backend operations grouped by concern.
//
// # Construction
//
//	c, err := client.New(config.Config{
//	    Endpoint: "https://api.solpipe.io",
//	}, client.WithSigner(mySigner))
//	if err != nil {
//	    return err
//	}
//
// The configuration is normalized exactly once, at construction; every
// operation afterwards reads the same immutable copy, so a Client is safe
// for arbitrary concurrent use.
//
// # Operations
//
//	res, err := c.Wallet.SignMessage(ctx, "Hello, Solana!")     // local
//	ok, err  := c.Auth.Verify(ctx, client.AuthPayload{...})      // POST /api/auth/verify
//	bal, err := c.Wallet.Balance(ctx, address)                   // GET  /api/wallet/balance
//	pipe, err := c.Pipeline.Create(ctx, client.PipelineConfig{   // POST /api/pipeline/create
//	    Name: "ingest",
//	})
//
// Each operation validates its input before touching the network, makes a
// single attempt (retry policy belongs to the caller), validates the
// response shape, and returns either a fully-validated typed result or an
// error classified by the apierr package. Transport failures keep their
// original classification; a reachable backend replying with garbage is a
// Validation error.
//
// # Testing
//
// Inject a transport.RoundTripper through Config.Transport to run
// operations against a stub without any network:
//
//	cfg := config.Config{
//	    Endpoint: "https://api.example.com",
//	    Transport: transport.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
//	        ...
//	    }),
//	}
package client
