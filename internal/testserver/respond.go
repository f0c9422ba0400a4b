// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package testserver

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope is the backend's response wrapper.
type Envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// WriteEnvelope writes an envelope with the given HTTP status.
func WriteEnvelope(w http.ResponseWriter, status, code int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Code: code, Msg: msg, Data: data})
}

// OK answers 200 with code 0 and data.
func OK(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, http.StatusOK, 0, "success", data)
	}
}

// Business answers 200 with a non-zero envelope code.
func Business(code int, msg string, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, http.StatusOK, code, msg, data)
	}
}

// EnvelopeStatus answers status with an envelope body.
func EnvelopeStatus(status, code int, msg string, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, status, code, msg, data)
	}
}

// Raw answers status with an arbitrary body.
func Raw(status int, contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}

// Attachment answers 200 with body as a named download.
func Attachment(contentType, filename string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
