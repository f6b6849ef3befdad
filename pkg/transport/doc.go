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

// Package transport executes the single HTTP request behind every
// solpipe-go operation.
//
// A Transport is built once from the client configuration and then shared
// by all operations; it is immutable and safe for concurrent use. Each call
// is single-shot: no retries, no connection management beyond what the
// underlying http.Client provides.
//
// # Injectable round tripper
//
// The actual request execution goes through the RoundTripper interface.
// Production binds the ambient http.Client; tests inject a stub:
//
//	stub := transport.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
//	    return &http.Response{StatusCode: 200, Body: ...}, nil
//	})
//	t := transport.New(transport.WithRoundTripper(stub))
//
// # Deadline race
//
// Every request races against the configured timeout. Whichever side
// settles first wins; the loser is abandoned, not cancelled. A transport
// with native cancellation still gets the request context, so it may abort
// early, but correctness does not depend on that.
//
// # Failure classification
//
// Request returns the raw response body on success and a classified
// apierr.Error otherwise: Network for connectivity failures, Timeout when
// the deadline fires, HTTPStatus for non-2xx responses (carrying the parsed
// body for caller inspection). Already-classified errors pass through
// unchanged.
//
// # Observability
//
// WithLogger attaches a zerolog logger emitting a debug line per request;
// WithMetrics attaches a Prometheus collector tracking request counts,
// durations, in-flight gauge and failures by kind. Both are off by default.
package transport
