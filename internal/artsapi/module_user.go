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

// UserAPI covers wallet login and the signed-in user's profile, assets and
// invitations.
type UserAPI interface {
	Nonce(ctx context.Context, params arts.NonceParams) (*arts.Response[arts.Nonce], error)
	Login(ctx context.Context, params arts.LoginParams) (*arts.Response[arts.LoginResult], error)
	Logout(ctx context.Context) (*arts.Response[any], error)
	Info(ctx context.Context) (*arts.Response[arts.UserInfo], error)
	UpdateProfile(ctx context.Context, params arts.UpdateProfileParams) (*arts.Response[arts.UserInfo], error)
	Asset(ctx context.Context) (*arts.Response[arts.UserAsset], error)
	InviteInfo(ctx context.Context) (*arts.Response[arts.InviteInfo], error)
	Invitees(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Invitee]], error)
	BindInviter(ctx context.Context, params arts.BindInviterParams) (*arts.Response[any], error)
}

var _ UserAPI = (*UserService)(nil)

// UserService implements UserAPI.
type UserService struct {
	c *Client
}

// Nonce fetches the message a wallet signs to log in.
func (s *UserService) Nonce(ctx context.Context, params arts.NonceParams) (*arts.Response[arts.Nonce], error) {
	return RequestJSON[arts.Nonce](ctx, s.c, http.MethodGet, "/arts/user/nonce", RequestOptions{Auth: AuthNone, Query: params})
}

// Login exchanges a signed nonce for a session token. The token is not
// stored; call SetToken with the result.
func (s *UserService) Login(ctx context.Context, params arts.LoginParams) (*arts.Response[arts.LoginResult], error) {
	return RequestJSON[arts.LoginResult](ctx, s.c, http.MethodPost, "/arts/user/login", RequestOptions{Auth: AuthNone, Body: params})
}

func (s *UserService) Logout(ctx context.Context) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPost, "/arts/user/logout", RequestOptions{Auth: AuthRequired})
}

func (s *UserService) Info(ctx context.Context) (*arts.Response[arts.UserInfo], error) {
	return RequestJSON[arts.UserInfo](ctx, s.c, http.MethodGet, "/arts/user/info", RequestOptions{Auth: AuthRequired})
}

func (s *UserService) UpdateProfile(ctx context.Context, params arts.UpdateProfileParams) (*arts.Response[arts.UserInfo], error) {
	return RequestJSON[arts.UserInfo](ctx, s.c, http.MethodPut, "/arts/user/profile", RequestOptions{Auth: AuthRequired, Body: params})
}

// Asset returns points, token balances and holdings counts.
func (s *UserService) Asset(ctx context.Context) (*arts.Response[arts.UserAsset], error) {
	return RequestJSON[arts.UserAsset](ctx, s.c, http.MethodGet, "/arts/user/asset", RequestOptions{Auth: AuthRequired})
}

func (s *UserService) InviteInfo(ctx context.Context) (*arts.Response[arts.InviteInfo], error) {
	return RequestJSON[arts.InviteInfo](ctx, s.c, http.MethodGet, "/arts/user/invite", RequestOptions{Auth: AuthRequired})
}

func (s *UserService) Invitees(ctx context.Context, params arts.PageParams) (*arts.Response[arts.Page[arts.Invitee]], error) {
	return RequestJSON[arts.Page[arts.Invitee]](ctx, s.c, http.MethodGet, "/arts/user/invite/list", RequestOptions{Auth: AuthRequired, Query: params})
}

// BindInviter links the user to an inviter. The backend accepts it once.
func (s *UserService) BindInviter(ctx context.Context, params arts.BindInviterParams) (*arts.Response[any], error) {
	return RequestJSON[any](ctx, s.c, http.MethodPost, "/arts/user/invite/bind", RequestOptions{Auth: AuthRequired, Body: params})
}
