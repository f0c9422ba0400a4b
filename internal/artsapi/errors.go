// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies where a request failed.
type ErrorType string

const (
	// ErrorTypeClient is a local precondition failure; no request was sent.
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeNetwork is a transport failure, timeout or cancellation.
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeHTTP is a response status outside 2xx.
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeParse is a 2xx body that is not JSON or not an envelope.
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeBusiness is a valid envelope with a non-zero code.
	ErrorTypeBusiness ErrorType = "business"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 64 * 1024

// ErrorInput is everything known about a failed call. It is handed to the
// ErrorFormatter, which decides what the caller receives.
type ErrorInput struct {
	Type    ErrorType
	Code    int    // envelope code, HTTP status for non-envelope HTTP errors, 0 otherwise
	Message string // envelope msg or a description of the failure
	Status  int    // HTTP status when a response was received
	Data    any    // envelope data, when present
	URL     string
	Method  string
	Raw     error // underlying transport or decode error
}

// Error is the default error returned for every failed call.
type Error struct {
	Type    ErrorType
	Code    int
	Message string
	Status  int
	Data    any
	URL     string
	Method  string
	Raw     error
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "arts api %s error", e.Type)
	if e.Method != "" || e.URL != "" {
		fmt.Fprintf(&b, " [%s %s]", e.Method, e.URL)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Code != 0 {
		fmt.Fprintf(&b, " (code %d)", e.Code)
	}
	if e.Status != 0 && e.Status != e.Code {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	return b.String()
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *Error) Unwrap() error {
	return e.Raw
}

// ErrorFormatter turns an ErrorInput into the error a caller receives.
// Every failure of every call passes through it exactly once.
type ErrorFormatter interface {
	FormatError(in ErrorInput) error
}

// ErrorFormatterFunc adapts a function to ErrorFormatter.
type ErrorFormatterFunc func(in ErrorInput) error

// FormatError calls f.
func (f ErrorFormatterFunc) FormatError(in ErrorInput) error {
	return f(in)
}

// DefaultErrorFormatter copies the input into an *Error.
var DefaultErrorFormatter ErrorFormatter = ErrorFormatterFunc(func(in ErrorInput) error {
	e := Error(in)
	return &e
})

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsType reports whether err carries an *Error of type t.
func IsType(err error, t ErrorType) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Type == t
}

// IsUnauthorized reports an HTTP 401 or a 401 envelope code.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	if !ok {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Code == http.StatusUnauthorized
}
