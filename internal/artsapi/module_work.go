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

// WorkAPI browses published artworks and manages likes.
type WorkAPI interface {
	List(ctx context.Context, params arts.WorkListParams) (*arts.Response[arts.Page[arts.Work]], error)
	Categories(ctx context.Context) (*arts.Response[[]arts.WorkCategory], error)
	Detail(ctx context.Context, id int64) (*arts.Response[arts.WorkDetail], error)
	Related(ctx context.Context, id int64, params arts.RelatedParams) (*arts.Response[[]arts.Work], error)
	Like(ctx context.Context, workID int64) (*arts.Response[arts.LikeResult], error)
	Unlike(ctx context.Context, workID int64) (*arts.Response[arts.LikeResult], error)
	Favorites(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Work]], error)
}

var _ WorkAPI = (*WorkService)(nil)

// WorkService implements WorkAPI.
type WorkService struct {
	c *Client
}

// List pages through works. A token, when set, fills in Work.Liked.
func (s *WorkService) List(ctx context.Context, params arts.WorkListParams) (*arts.Response[arts.Page[arts.Work]], error) {
	return RequestJSON[arts.Page[arts.Work]](ctx, s.c, http.MethodGet, "/arts/work/list", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *WorkService) Categories(ctx context.Context) (*arts.Response[[]arts.WorkCategory], error) {
	return RequestJSON[[]arts.WorkCategory](ctx, s.c, http.MethodGet, "/arts/work/categories", RequestOptions{Auth: AuthNone})
}

func (s *WorkService) Detail(ctx context.Context, id int64) (*arts.Response[arts.WorkDetail], error) {
	return RequestJSON[arts.WorkDetail](ctx, s.c, http.MethodGet, "/arts/work/"+IDSegment(id), RequestOptions{Auth: AuthOptional})
}

func (s *WorkService) Related(ctx context.Context, id int64, params arts.RelatedParams) (*arts.Response[[]arts.Work], error) {
	return RequestJSON[[]arts.Work](ctx, s.c, http.MethodGet, "/arts/work/"+IDSegment(id)+"/related", RequestOptions{Auth: AuthOptional, Query: params})
}

func (s *WorkService) Like(ctx context.Context, workID int64) (*arts.Response[arts.LikeResult], error) {
	return RequestJSON[arts.LikeResult](ctx, s.c, http.MethodPost, "/arts/work/like", RequestOptions{Auth: AuthRequired, Body: arts.WorkIDParams{WorkID: workID}})
}

func (s *WorkService) Unlike(ctx context.Context, workID int64) (*arts.Response[arts.LikeResult], error) {
	return RequestJSON[arts.LikeResult](ctx, s.c, http.MethodPost, "/arts/work/unlike", RequestOptions{Auth: AuthRequired, Body: arts.WorkIDParams{WorkID: workID}})
}

// Favorites lists the works the user has liked.
func (s *WorkService) Favorites(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Work]], error) {
	return RequestJSON[arts.Page[arts.Work]](ctx, s.c, http.MethodGet, "/arts/work/favorites", RequestOptions{Auth: AuthRequired, Query: params})
}
