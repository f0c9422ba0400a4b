// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package logging

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// sensitiveKeys are header and field names whose values never reach a log line verbatim.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
	"password":      true,
	"secret":        true,
	"signature":     true,
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// MaskSecret masks a secret, keeping the first and last 4 characters.
// Secrets of 12 characters or fewer are fully masked.
//
//	MaskSecret("eyJhbGciOiJIUzI1NiJ9.payload") -> "eyJh...load"
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// IsSensitiveKey reports whether values stored under key must be masked.
func IsSensitiveKey(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}

// SanitizeValue masks value when key names a credential.
func SanitizeValue(key, value string) string {
	if IsSensitiveKey(key) {
		return MaskSecret(value)
	}
	return value
}

// HeaderDict renders request headers as a zerolog dictionary with credentials masked.
// Keys are emitted in sorted order so log lines are stable.
func HeaderDict(h http.Header) *zerolog.Event {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dict := zerolog.Dict()
	for _, k := range keys {
		dict = dict.Str(k, SanitizeValue(k, strings.Join(h.Values(k), ",")))
	}
	return dict
}
