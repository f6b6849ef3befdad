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

package apierr

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the machine-readable classification of a client failure.
type Kind string

const (
	// KindValidation marks input or response data that failed a local,
	// synchronous check. Never worth retrying.
	KindValidation Kind = "validation"

	// KindNetwork marks a connectivity failure: the transport itself
	// rejected the request before any HTTP response was produced.
	KindNetwork Kind = "network"

	// KindTimeout marks a request abandoned because the configured
	// deadline elapsed before the transport settled.
	KindTimeout Kind = "timeout"

	// KindHTTPStatus marks an explicit rejection by the backend, carried
	// as a non-2xx HTTP response.
	KindHTTPStatus Kind = "http_status"
)

// Error is a classified client failure. Every public operation of the SDK
// fails with exactly one of the four kinds; callers branch on Kind (or use
// errors.Is with a kind sentinel) rather than matching message text.
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	// Status, StatusText and Body are set for KindHTTPStatus. Body holds
	// whatever could be parsed from the response: a decoded JSON value if
	// the response declared JSON, a raw text string otherwise, or nil.
	Status     int
	StatusText string
	Body       any

	// Timeout is the deadline that elapsed, set for KindTimeout.
	Timeout time.Duration
}

// NewValidation returns a Validation error.
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// WrapValidation returns a Validation error preserving the underlying cause.
func WrapValidation(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Cause: cause}
}

// NewNetwork returns a Network error preserving the underlying cause.
func NewNetwork(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Cause: cause}
}

// NewTimeout returns a Timeout error carrying the deadline that elapsed.
func NewTimeout(timeout time.Duration) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("request timed out after %s", timeout),
		Timeout: timeout,
	}
}

// NewHTTPStatus returns an HTTPStatus error carrying the response status,
// status text and whatever body could be parsed.
func NewHTTPStatus(status int, statusText string, body any) *Error {
	return &Error{
		Kind:       KindHTTPStatus,
		Message:    fmt.Sprintf("HTTP error %d: %s", status, statusText),
		Status:     status,
		StatusText: statusText,
		Body:       body,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &Error{Kind: KindTimeout}) matches any timeout.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Classified reports whether err already carries one of the four kinds.
// Classified errors are forwarded unchanged by every layer of the SDK;
// only raw failures are classified at the layer that first observes them.
func Classified(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// KindOf returns the kind carried by err, or "" if err is unclassified.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsKind reports whether err is classified with the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// AsError returns the classified error carried by err, or nil.
func AsError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
