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

// ChannelAPI serves public channel metadata, banners and announcements.
type ChannelAPI interface {
	List(ctx context.Context) (*arts.Response[[]arts.Channel], error)
	Detail(ctx context.Context, code string) (*arts.Response[arts.Channel], error)
	Banners(ctx context.Context, params arts.BannerParams) (*arts.Response[[]arts.Banner], error)
	Announcements(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Announcement]], error)
}

var _ ChannelAPI = (*ChannelService)(nil)

// ChannelService implements ChannelAPI. Every call is public.
type ChannelService struct {
	c *Client
}

func (s *ChannelService) List(ctx context.Context) (*arts.Response[[]arts.Channel], error) {
	return RequestJSON[[]arts.Channel](ctx, s.c, http.MethodGet, "/arts/channel/list", RequestOptions{Auth: AuthNone})
}

func (s *ChannelService) Detail(ctx context.Context, code string) (*arts.Response[arts.Channel], error) {
	return RequestJSON[arts.Channel](ctx, s.c, http.MethodGet, "/arts/channel/"+EncodePathSegment(code), RequestOptions{Auth: AuthNone})
}

func (s *ChannelService) Banners(ctx context.Context, params arts.BannerParams) (*arts.Response[[]arts.Banner], error) {
	return RequestJSON[[]arts.Banner](ctx, s.c, http.MethodGet, "/arts/channel/banners", RequestOptions{Auth: AuthNone, Query: params})
}

func (s *ChannelService) Announcements(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Announcement]], error) {
	return RequestJSON[arts.Page[arts.Announcement]](ctx, s.c, http.MethodGet, "/arts/channel/announcements", RequestOptions{Auth: AuthNone, Query: params})
}
