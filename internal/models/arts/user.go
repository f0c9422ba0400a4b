// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// NonceParams requests a one-time signing nonce for a wallet address.
type NonceParams struct {
	Address string `json:"address"`
}

// Nonce is the message a wallet must sign to log in.
type Nonce struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expiresAt"`
}

// LoginParams is a signed wallet login.
type LoginParams struct {
	Address    string `json:"address"`
	Signature  string `json:"signature"`
	Nonce      string `json:"nonce"`
	ChainID    int64  `json:"chainId,omitempty"`
	InviteCode string `json:"inviteCode,omitempty"`
}

// LoginResult carries the session token to install with SetToken.
type LoginResult struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
	User      UserInfo `json:"user"`
}

// UserInfo is the authenticated user's profile.
type UserInfo struct {
	ID         int64  `json:"id"`
	Address    string `json:"address"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Bio        string `json:"bio,omitempty"`
	VIPLevel   int    `json:"vipLevel"`
	InviteCode string `json:"inviteCode"`
	InviterID  int64  `json:"inviterId,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}

// UpdateProfileParams updates the mutable profile fields.
type UpdateProfileParams struct {
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// TokenBalance is one token held by the user. Amounts are decimal strings.
type TokenBalance struct {
	Symbol    string `json:"symbol"`
	Contract  string `json:"contract,omitempty"`
	Decimals  int    `json:"decimals"`
	Available string `json:"available"`
	Frozen    string `json:"frozen"`
}

// UserAsset summarises the user's holdings.
type UserAsset struct {
	Points       int64          `json:"points"`
	Tokens       []TokenBalance `json:"tokens"`
	NodeCount    int            `json:"nodeCount"`
	TicketCount  int            `json:"ticketCount"`
	MiningReward string         `json:"miningReward"`
}

// InviteInfo describes the user's referral state.
type InviteInfo struct {
	InviteCode    string `json:"inviteCode"`
	InviteLink    string `json:"inviteLink"`
	InviteeCount  int    `json:"inviteeCount"`
	RewardPoints  int64  `json:"rewardPoints"`
	InviterAddr   string `json:"inviterAddress,omitempty"`
	CanBindInvite bool   `json:"canBindInviter"`
}

// Invitee is a user who registered with the caller's invite code.
type Invitee struct {
	ID        int64  `json:"id"`
	Address   string `json:"address"`
	Nickname  string `json:"nickname"`
	CreatedAt int64  `json:"createdAt"`
}

// BindInviterParams binds an inviter after registration.
type BindInviterParams struct {
	InviteCode string `json:"inviteCode"`
}
