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

// AdminAPI is the back-office surface. Apart from Login every call needs an
// admin token, which is sent in the same Token header as a user token.
type AdminAPI interface {
	Login(ctx context.Context, params arts.AdminLoginParams) (*arts.Response[arts.AdminLoginResult], error)
	Profile(ctx context.Context) (*arts.Response[arts.AdminProfile], error)
}

// AdminUserAPI manages end-user accounts.
type AdminUserAPI interface {
	List(ctx context.Context, params arts.AdminUserListParams) (*arts.Response[arts.Page[arts.AdminUser]], error)
	SetStatus(ctx context.Context, id int64, status string) (*arts.Response[any], error)
}

// AdminTokenAPI manages the platform's issued tokens.
type AdminTokenAPI interface {
	List(ctx context.Context, params arts.AdminTokenListParams) (*arts.Response[arts.Page[arts.ManagedToken]], error)
	Create(ctx context.Context, params arts.TokenCreateParams) (*arts.Response[arts.ManagedToken], error)
	Update(ctx context.Context, id int64, params arts.TokenUpdateParams) (*arts.Response[arts.ManagedToken], error)
	Delete(ctx context.Context, id int64) (*arts.Response[any], error)
	Mint(ctx context.Context, id int64, params arts.TokenMintParams) (*arts.Response[arts.MintResult], error)
}

// AdminWorkAPI edits and publishes artworks.
type AdminWorkAPI interface {
	List(ctx context.Context, params arts.AdminWorkListParams) (*arts.Response[arts.Page[arts.Work]], error)
	Create(ctx context.Context, work arts.WorkInput) (*arts.Response[arts.WorkDetail], error)
	Update(ctx context.Context, id int64, work arts.WorkInput) (*arts.Response[arts.WorkDetail], error)
	SetPublished(ctx context.Context, id int64, published bool) (*arts.Response[any], error)
}

// AdminTicketStatsAPI reports ticket sales and holder distribution.
type AdminTicketStatsAPI interface {
	Summary(ctx context.Context, params arts.TicketStatsParams) (*arts.Response[arts.TicketStatsSummary], error)
	Holdings(ctx context.Context, params arts.HoldingStatsParams) (*arts.Response[arts.Page[arts.HoldingStat]], error)
	ExportHoldingSnapshot(ctx context.Context, params arts.HoldingSnapshotParams) (*Blob, error)
}

var (
	_ AdminAPI            = (*AdminService)(nil)
	_ AdminUserAPI        = (*AdminUserService)(nil)
	_ AdminTokenAPI       = (*AdminTokenService)(nil)
	_ AdminWorkAPI        = (*AdminWorkService)(nil)
	_ AdminTicketStatsAPI = (*AdminTicketStatsService)(nil)
)

// AdminService implements AdminAPI and groups the admin sub-modules.
type AdminService struct {
	c           *Client
	Users       *AdminUserService
	Tokens      *AdminTokenService
	Works       *AdminWorkService
	TicketStats *AdminTicketStatsService
}

// AdminUserService implements AdminUserAPI.
type AdminUserService struct {
	c *Client
}

// AdminTokenService implements AdminTokenAPI.
type AdminTokenService struct {
	c *Client
}

// AdminWorkService implements AdminWorkAPI.
type AdminWorkService struct {
	c *Client
}

// AdminTicketStatsService implements AdminTicketStatsAPI.
type AdminTicketStatsService struct {
	c *Client
}

// Login authenticates an operator. As with user login the token is returned,
// not stored.
func (s *AdminService) Login(ctx context.Context, params arts.AdminLoginParams) (*arts.Response[arts.AdminLoginResult], error) {
	return RequestJSON[arts.AdminLoginResult](ctx, s.c, http.MethodPost, "/arts/admin/login", RequestOptions{Auth: AuthNone, Body: params})
}

func (s *AdminService) Profile(ctx context.Context) (*arts.Response[arts.AdminProfile], error) {
	return RequestJSON[arts.AdminProfile](ctx, s.c, http.MethodGet, "/arts/admin/profile", RequestOptions{Auth: AuthRequired})
}

func (s *AdminUserService) List(ctx context.Context, params arts.AdminUserListParams) (*arts.Response[arts.Page[arts.AdminUser]], error) {
	return RequestJSON[arts.Page[arts.AdminUser]](ctx, s.c, http.MethodGet, "/arts/admin/users", RequestOptions{Auth: AuthRequired, Query: params})
}

// SetStatus enables or bans an account.
func (s *AdminUserService) SetStatus(ctx context.Context, id int64, status string) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPut, "/arts/admin/users/"+IDSegment(id)+"/status", RequestOptions{Auth: AuthRequired, Body: arts.AdminUserStatusParams{Status: status}})
}

func (s *AdminTokenService) List(ctx context.Context, params arts.AdminTokenListParams) (*arts.Response[arts.Page[arts.ManagedToken]], error) {
	return RequestJSON[arts.Page[arts.ManagedToken]](ctx, s.c, http.MethodGet, "/arts/admin/tokens", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *AdminTokenService) Create(ctx context.Context, params arts.TokenCreateParams) (*arts.Response[arts.ManagedToken], error) {
	return RequestJSON[arts.ManagedToken](ctx, s.c, http.MethodPost, "/arts/admin/tokens", RequestOptions{Auth: AuthRequired, Body: params})
}

// Update changes only the fields that are non-nil in params.
func (s *AdminTokenService) Update(ctx context.Context, id int64, params arts.TokenUpdateParams) (*arts.Response[arts.ManagedToken], error) {
	return RequestJSON[arts.ManagedToken](ctx, s.c, http.MethodPut, "/arts/admin/tokens/"+IDSegment(id), RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *AdminTokenService) Delete(ctx context.Context, id int64) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodDelete, "/arts/admin/tokens/"+IDSegment(id), RequestOptions{Auth: AuthRequired})
}

func (s *AdminTokenService) Mint(ctx context.Context, id int64, params arts.TokenMintParams) (*arts.Response[arts.MintResult], error) {
	return RequestJSON[arts.MintResult](ctx, s.c, http.MethodPost, "/arts/admin/tokens/"+IDSegment(id)+"/mint", RequestOptions{Auth: AuthRequired, Body: params})
}

func (s *AdminWorkService) List(ctx context.Context, params arts.AdminWorkListParams) (*arts.Response[arts.Page[arts.Work]], error) {
	return RequestJSON[arts.Page[arts.Work]](ctx, s.c, http.MethodGet, "/arts/admin/works", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *AdminWorkService) Create(ctx context.Context, work arts.WorkInput) (*arts.Response[arts.WorkDetail], error) {
	return RequestJSON[arts.WorkDetail](ctx, s.c, http.MethodPost, "/arts/admin/works", RequestOptions{Auth: AuthRequired, Body: work})
}

func (s *AdminWorkService) Update(ctx context.Context, id int64, work arts.WorkInput) (*arts.Response[arts.WorkDetail], error) {
	return RequestJSON[arts.WorkDetail](ctx, s.c, http.MethodPut, "/arts/admin/works/"+IDSegment(id), RequestOptions{Auth: AuthRequired, Body: work})
}

func (s *AdminWorkService) SetPublished(ctx context.Context, id int64, published bool) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPut, "/arts/admin/works/"+IDSegment(id)+"/publish", RequestOptions{Auth: AuthRequired, Body: arts.WorkPublishParams{Published: published}})
}

func (s *AdminTicketStatsService) Summary(ctx context.Context, params arts.TicketStatsParams) (*arts.Response[arts.TicketStatsSummary], error) {
	return RequestJSON[arts.TicketStatsSummary](ctx, s.c, http.MethodGet, "/arts/admin/ticket-stats/summary", RequestOptions{Auth: AuthRequired, Query: params})
}

func (s *AdminTicketStatsService) Holdings(ctx context.Context, params arts.HoldingStatsParams) (*arts.Response[arts.Page[arts.HoldingStat]], error) {
	return RequestJSON[arts.Page[arts.HoldingStat]](ctx, s.c, http.MethodGet, "/arts/admin/ticket-stats/holdings", RequestOptions{Auth: AuthRequired, Query: params})
}

// ExportHoldingSnapshot downloads the holder list as a spreadsheet. The
// filename comes from Content-Disposition.
func (s *AdminTicketStatsService) ExportHoldingSnapshot(ctx context.Context, params arts.HoldingSnapshotParams) (*Blob, error) {
	return s.c.RequestBinary(ctx, http.MethodGet, "/arts/admin/ticket-stats/holdings/export", RequestOptions{Auth: AuthRequired, Query: params})
}
