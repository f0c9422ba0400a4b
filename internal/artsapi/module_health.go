// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"net/http"

	"github.com/tomtom215/artsapi/internal/models/arts"
)

// HealthAPI is the backend liveness check.
type HealthAPI interface {
	Check(ctx context.Context) (*arts.Response[arts.HealthStatus], error)
}

var _ HealthAPI = (*HealthService)(nil)

// HealthService implements HealthAPI.
type HealthService struct {
	c *Client
}

// Check calls GET /arts/health without a token.
func (s *HealthService) Check(ctx context.Context) (*arts.Response[arts.HealthStatus], error) {
	return RequestJSON[arts.HealthStatus](ctx, s.c, http.MethodGet, "/arts/health", RequestOptions{Auth: AuthNone})
}
