// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"github.com/goccy/go-json"
)

// IsResponse reports whether v has the envelope shape: an object with a
// numeric code and a string msg. It accepts decoded JSON (map[string]any)
// as well as Go maps built by hand.
func IsResponse(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	if _, ok := envelopeCode(m["code"]); !ok {
		return false
	}
	_, ok = m["msg"].(string)
	return ok
}

// envelopeCode reads a numeric envelope code.
func envelopeCode(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// envelopeFields extracts code, msg and data from a value accepted by IsResponse.
func envelopeFields(v any) (code float64, msg string, data any) {
	m := v.(map[string]any)
	code, _ = envelopeCode(m["code"])
	msg, _ = m["msg"].(string)
	return code, msg, m["data"]
}
