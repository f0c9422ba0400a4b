// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package testserver

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RecordsRequests(t *testing.T) {
	srv := New(t)
	srv.Handle(http.MethodPost, "/arts/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		WriteEnvelope(w, http.StatusOK, 0, "success", string(body))
	})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/arts/echo?a=1", bytes.NewBufferString("hello"))
	require.NoError(t, err)
	req.Header.Set("Token", "abc")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "hello", env.Data, "handler still sees the body")

	require.Equal(t, 1, srv.Count())
	got, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/arts/echo", got.Path)
	assert.Equal(t, "a=1", got.RawQuery)
	assert.Equal(t, "abc", got.Header.Get("Token"))
	assert.Equal(t, []byte("hello"), got.Body)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := New(t)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, srv.Count())
}

func TestServer_LastEmpty(t *testing.T) {
	srv := New(t)
	_, ok := srv.Last()
	assert.False(t, ok)
	assert.Empty(t, srv.Requests())
}

func TestAttachment(t *testing.T) {
	srv := New(t)
	srv.Handle(http.MethodGet, "/file", Attachment("text/csv", "holders.csv", []byte("a,b\n")))

	resp, err := http.Get(srv.URL + "/file")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "a,b\n", string(body))
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "holders.csv")
}

func TestServer_Fallback(t *testing.T) {
	srv := New(t)
	srv.Fallback(OK("any"))

	resp, err := http.Post(srv.URL+"/arts/anything", "application/json", bytes.NewBufferString("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "any", env.Data)

	got, ok := srv.Last()
	require.True(t, ok, "fallback-only servers still record requests")
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/arts/anything", got.Path)
	assert.Equal(t, []byte("{}"), got.Body)
}

func TestServer_RecordsEscapedPath(t *testing.T) {
	srv := New(t)
	srv.Fallback(OK(nil))

	resp, err := http.Get(srv.URL + "/arts/deposit/D%2F1")
	require.NoError(t, err)
	resp.Body.Close()

	got, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "/arts/deposit/D/1", got.Path)
	assert.Equal(t, "/arts/deposit/D%2F1", got.EscapedPath)
}

func TestServer_RateLimit(t *testing.T) {
	srv := New(t, WithRateLimit(2, time.Minute))
	srv.Handle(http.MethodGet, "/arts/health", OK("up"))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := http.Get(srv.URL + "/arts/health")
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)

		if resp.StatusCode == http.StatusTooManyRequests {
			var env Envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.Equal(t, http.StatusTooManyRequests, env.Code)
			assert.Equal(t, "too many requests", env.Msg)
		}
		resp.Body.Close()
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, 3, srv.Count(), "rejected requests are recorded too")
}
