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

// Package apierr defines the error taxonomy shared by every solpipe-go
// operation.
//
// Every failure surfaced by the SDK is an *Error tagged with one of four
// kinds:
//
//   - KindValidation — caller input or backend response data is malformed.
//     Retrying cannot help.
//   - KindNetwork — the transport rejected the request (DNS failure,
//     connection refused, broken connection). Retrying may help.
//   - KindTimeout — the configured deadline elapsed before the transport
//     settled. The error carries the deadline that was used.
//   - KindHTTPStatus — the backend answered with a non-2xx status. The
//     error carries the status code, status text and the parsed body.
//
// # Branching on failures
//
// Dispatch by kind, not by message text:
//
//	balance, err := client.Wallet.Balance(ctx, address)
//	if err != nil {
//	    switch apierr.KindOf(err) {
//	    case apierr.KindTimeout, apierr.KindNetwork:
//	        // safe to retry
//	    case apierr.KindHTTPStatus:
//	        e := apierr.AsError(err)
//	        log.Printf("backend rejected: %d %s", e.Status, e.StatusText)
//	    default:
//	        // validation: fix the input
//	    }
//	}
//
// errors.Is also works, comparing kinds:
//
//	if errors.Is(err, &apierr.Error{Kind: apierr.KindTimeout}) { ... }
//
// # Propagation rule
//
// Once an error is classified it is never re-wrapped: every layer of the
// SDK forwards classified errors unchanged and classifies only the raw
// failures it observes first-hand. Classified reports whether an error
// already carries a kind.
package apierr
