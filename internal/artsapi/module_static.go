// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"net/http"
	"strings"
)

// StaticAPI downloads public assets. Responses are raw bytes, not envelopes.
type StaticAPI interface {
	TicketCover(ctx context.Context, id int64) (*Blob, error)
	File(ctx context.Context, path string) (*Blob, error)
}

var _ StaticAPI = (*StaticService)(nil)

// StaticService implements StaticAPI.
type StaticService struct {
	c *Client
}

func (s *StaticService) TicketCover(ctx context.Context, id int64) (*Blob, error) {
	return s.c.RequestBinary(ctx, http.MethodGet, "/arts/static/ticket/"+IDSegment(id)+"/cover", RequestOptions{Auth: AuthNone})
}

// File fetches a stored file by its relative path, as returned in
// UploadResult.Path. Each segment is escaped; slashes are kept.
func (s *StaticService) File(ctx context.Context, path string) (*Blob, error) {
	return s.c.RequestBinary(ctx, http.MethodGet, "/arts/static/"+EncodePath(strings.TrimLeft(path, "/")), RequestOptions{Auth: AuthNone})
}
