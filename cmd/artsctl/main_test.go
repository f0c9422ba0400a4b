// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/artsapi/internal/artsapi"
	"github.com/tomtom215/artsapi/internal/models/arts"
	"github.com/tomtom215/artsapi/internal/testserver"
)

// clearEnv keeps the host environment out of the layered config.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ARTS_BASE_URL", "ARTS_TOKEN", "ARTS_LANGUAGE", "ARTS_TIMEOUT", "CONFIG_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// runCLI runs artsctl against srv and returns the exit code and both streams.
func runCLI(t *testing.T, srv *testserver.Server, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	full := append([]string{"--base-url", srv.URL, "--env-file", ""}, args...)
	code := run(full, &out, &errb)
	return code, out.String(), errb.String()
}

func TestRun_Health(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/health", testserver.OK(arts.HealthStatus{Status: "ok", Version: "1.4.0"}))

	code, out, _ := runCLI(t, srv, "health")
	require.Equal(t, 0, code)

	var resp arts.Response[arts.HealthStatus]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "ok", resp.Data.Status)
	assert.Equal(t, "1.4.0", resp.Data.Version)

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Empty(t, last.Header.Get("Token"))
}

func TestRun_RequiredAuthWithoutToken(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/user/info", testserver.OK(arts.UserInfo{}))

	code, out, errOut := runCLI(t, srv, "user", "info")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "authentication token is required")
	assert.Zero(t, srv.Count(), "no request may reach the server")
}

func TestRun_TokenFlag(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/user/info", testserver.OK(arts.UserInfo{Nickname: "mira"}))

	code, out, _ := runCLI(t, srv, "--token", "tok-123", "--lang", "zh", "user", "info")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "mira")

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "tok-123", last.Header.Get("Token"))
	assert.Equal(t, "zh-CN", last.Header.Get("Accept-Language"))
}

func TestRun_BusinessError(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/work/{id}", testserver.Business(40401, "work not found", nil))

	code, _, errOut := runCLI(t, srv, "work", "detail", "77")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "business")
	assert.Contains(t, errOut, "work not found")
	assert.Contains(t, errOut, "40401")
}

func TestRun_WorkListFlags(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/work/list", testserver.OK(arts.Page[arts.Work]{Page: 2}))

	code, _, _ := runCLI(t, srv, "work", "list", "--page", "2", "--keyword", "ink", "--tag", "a", "--tag", "b")
	require.Equal(t, 0, code)

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "2", last.Query.Get("page"))
	assert.Equal(t, "ink", last.Query.Get("keyword"))
	assert.Equal(t, []string{"a", "b"}, last.Query["tags"])
	assert.NotContains(t, last.RawQuery, "pageSize")
}

func TestRun_InvalidID(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)

	code, _, errOut := runCLI(t, srv, "ticket", "detail", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `invalid id "abc"`)
	assert.Zero(t, srv.Count())
}

func TestRun_Call(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodPost, "/arts/work/like", testserver.OK(map[string]any{"liked": true}))

	code, out, _ := runCLI(t, srv,
		"--token", "tok",
		"call", "post", "/arts/work/like",
		"--query", "src=cli", "--query", "tag=x", "--query", "tag=y",
		"--data", `{"workId":12}`,
		"--auth", "required",
	)
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"liked": true`)

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "src=cli&tag=x&tag=y", last.RawQuery)
	assert.JSONEq(t, `{"workId":12}`, string(last.Body))
	assert.Equal(t, "tok", last.Header.Get("Token"))
}

func TestRun_CallRejectsBadInput(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad json", []string{"call", "POST", "/arts/x", "--data", "{nope"}, "--data is not valid JSON"},
		{"bad query", []string{"call", "GET", "/arts/x", "--query", "novalue"}, "want key=value"},
		{"bad auth", []string{"call", "GET", "/arts/x", "--auth", "sometimes"}, "unknown auth mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, srv, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
	assert.Zero(t, srv.Count())
}

func TestRun_StaticCoverToFile(t *testing.T) {
	clearEnv(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/static/ticket/{id}/cover", testserver.Attachment("image/png", "cover-8.png", png))

	path := filepath.Join(t.TempDir(), "cover.png")
	code, out, _ := runCLI(t, srv, "static", "cover", "8", "-o", path)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, png, got)
	assert.Contains(t, out, `"filename": "cover-8.png"`)
	assert.Contains(t, out, `"contentType": "image/png"`)
}

func TestRun_DumpMetrics(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/health", testserver.OK(arts.HealthStatus{Status: "ok"}))

	code, _, errOut := runCLI(t, srv, "--dump-metrics", "health")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "arts_client_requests_total")
	assert.Contains(t, errOut, `outcome="success"`)
	assert.NotContains(t, errOut, "go_goroutines", "runtime collectors are filtered out")
	assert.Contains(t, errOut, `app_info{go_version="`)
	assert.Contains(t, errOut, `version="dev"`)
}

func TestRun_InvalidBaseURL(t *testing.T) {
	clearEnv(t)
	var out, errb bytes.Buffer

	code := run([]string{"--base-url", "ftp://nowhere", "--env-file", "", "health"}, &out, &errb)
	assert.Equal(t, 1, code)
	assert.Contains(t, errb.String(), "configuration validation failed")
	assert.Contains(t, errb.String(), "API.BaseURL")
	assert.Contains(t, errb.String(), "(httpurl)")
}

func TestParseQueryFlags(t *testing.T) {
	q, err := parseQueryFlags([]string{"a=1", "b=2", "a=3", "a=4", "c="})
	require.NoError(t, err)
	assert.Equal(t, artsapi.Query{"a": []string{"1", "3", "4"}, "b": "2", "c": ""}, q)

	q, err = parseQueryFlags(nil)
	require.NoError(t, err)
	assert.Nil(t, q)

	_, err = parseQueryFlags([]string{"=x"})
	assert.Error(t, err)
}

func TestRun_UserNonceChecksumsAddress(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	srv.Handle(http.MethodGet, "/arts/user/nonce", testserver.OK(map[string]any{"nonce": "n-1"}))

	code, _, _ := runCLI(t, srv, "user", "nonce", "--address", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.Equal(t, 0, code)

	last, ok := srv.Last()
	require.True(t, ok)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", last.Query.Get("address"))
}

func TestRun_UserNonceRejectsBadAddress(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)

	code, _, errOut := runCLI(t, srv, "user", "nonce", "--address", "0x1234")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "40 hex digits")
	assert.Zero(t, srv.Count())
}

func TestRun_Token(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)
	expires := time.Now().Add(-time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(expires),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	code, out, errOut := runCLI(t, srv, "--token", token, "token")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"subject": "42"`)
	assert.Contains(t, out, `"expired": true`)
	assert.Contains(t, errOut, "session token has expired")
	assert.Zero(t, srv.Count())
}

func TestRun_TokenMissing(t *testing.T) {
	clearEnv(t)
	srv := testserver.New(t)

	code, _, errOut := runCLI(t, srv, "token")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no session token configured")
}
