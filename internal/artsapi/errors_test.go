// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "business",
			err:  &Error{Type: ErrorTypeBusiness, Code: 1001, Message: "insufficient balance", Status: 200, Method: "POST", URL: "https://h/arts/points/redeem"},
			want: "arts api business error [POST https://h/arts/points/redeem]: insufficient balance (code 1001) (status 200)",
		},
		{
			name: "http without envelope",
			err:  &Error{Type: ErrorTypeHTTP, Code: 502, Message: "Bad Gateway", Status: 502, Method: "GET", URL: "https://h/x"},
			want: "arts api http error [GET https://h/x]: Bad Gateway (code 502)",
		},
		{
			name: "local",
			err:  &Error{Type: ErrorTypeClient, Message: "authentication token is required"},
			want: "arts api client error: authentication token is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := error(&Error{Type: ErrorTypeNetwork, Raw: fmt.Errorf("dial: %w", context.DeadlineExceeded)})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	wrapped := fmt.Errorf("load profile: %w", err)
	apiErr, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNetwork, apiErr.Type)
	assert.True(t, IsType(wrapped, ErrorTypeNetwork))
	assert.False(t, IsType(wrapped, ErrorTypeHTTP))
}

func TestAsError_Foreign(t *testing.T) {
	_, ok := AsError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsType(nil, ErrorTypeClient))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Type: ErrorTypeHTTP, Status: 401, Code: 401}))
	assert.True(t, IsUnauthorized(&Error{Type: ErrorTypeBusiness, Status: 200, Code: 401}))
	assert.False(t, IsUnauthorized(&Error{Type: ErrorTypeHTTP, Status: 403, Code: 403}))
}

func TestDefaultErrorFormatter(t *testing.T) {
	in := ErrorInput{Type: ErrorTypeParse, Code: 0, Message: "bad", Status: 200, Data: "x", URL: "u", Method: "GET"}
	err := DefaultErrorFormatter.FormatError(in)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, Error(in), *apiErr)
}

func TestFormatError_NilFallsBack(t *testing.T) {
	silent := ErrorFormatterFunc(func(ErrorInput) error { return nil })
	err := formatError(silent, ErrorInput{Type: ErrorTypeClient, Message: "m"})
	require.Error(t, err)
	assert.True(t, IsType(err, ErrorTypeClient))
}

func TestIsResponse(t *testing.T) {
	decode := func(s string) any {
		var v any
		require.NoError(t, json.Unmarshal([]byte(s), &v))
		return v
	}

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"valid", decode(`{"code":0,"msg":"ok","data":null}`), true},
		{"no data", decode(`{"code":3,"msg":""}`), true},
		{"string code", decode(`{"code":"0","msg":"ok"}`), false},
		{"missing msg", decode(`{"code":0}`), false},
		{"numeric msg", decode(`{"code":0,"msg":1}`), false},
		{"array", decode(`[1,2]`), false},
		{"null", decode(`null`), false},
		{"go map", map[string]any{"code": 5, "msg": "x"}, true},
		{"nil map", map[string]any(nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsResponse(tt.v))
		})
	}
}

func TestEnvelopeFields(t *testing.T) {
	code, msg, data := envelopeFields(map[string]any{"code": json.Number("40401"), "msg": "missing", "data": []any{1.0}})
	assert.Equal(t, float64(40401), code)
	assert.Equal(t, "missing", msg)
	assert.Equal(t, []any{1.0}, data)
}
