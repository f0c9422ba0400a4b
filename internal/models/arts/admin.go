// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// AdminLoginParams authenticates a console operator.
type AdminLoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResult carries the operator session token.
type AdminLoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	Profile   AdminProfile `json:"profile"`
}

// AdminProfile is the logged-in operator.
type AdminProfile struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Nickname    string   `json:"nickname"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	LastLoginAt int64    `json:"lastLoginAt,omitempty"`
}

// AdminUserListParams filters platform users.
type AdminUserListParams struct {
	PageParams
	Keyword string `json:"keyword,omitempty"`
	Status  string `json:"status,omitempty"`
}

// AdminUser is a platform user as seen by operators.
type AdminUser struct {
	UserInfo
	Status      string `json:"status"`
	Points      int64  `json:"points"`
	LastLoginAt int64  `json:"lastLoginAt,omitempty"`
}

// AdminUserStatusParams enables or disables a user.
type AdminUserStatusParams struct {
	Status string `json:"status"`
}

// AdminTokenListParams filters managed tokens.
type AdminTokenListParams struct {
	PageParams
	Keyword string `json:"keyword,omitempty"`
}

// ManagedToken is a token administered by the console.
type ManagedToken struct {
	ID          int64  `json:"id"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Decimals    int    `json:"decimals"`
	ChainID     int64  `json:"chainId"`
	Contract    string `json:"contract"`
	TotalSupply string `json:"totalSupply"`
	Minted      string `json:"minted"`
	Enabled     bool   `json:"enabled"`
	CreatedAt   int64  `json:"createdAt"`
}

// TokenCreateParams registers a new token.
type TokenCreateParams struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Decimals    int    `json:"decimals"`
	ChainID     int64  `json:"chainId"`
	Contract    string `json:"contract,omitempty"`
	TotalSupply string `json:"totalSupply"`
}

// TokenUpdateParams patches a token; nil fields are left unchanged.
type TokenUpdateParams struct {
	Name        *string `json:"name,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	TotalSupply *string `json:"totalSupply,omitempty"`
}

// TokenMintParams mints supply to an address.
type TokenMintParams struct {
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
}

// MintResult is the on-chain result of a mint.
type MintResult struct {
	TxHash string `json:"txHash"`
	Minted string `json:"minted"`
}

// AdminWorkListParams filters works including unpublished drafts.
type AdminWorkListParams struct {
	PageParams
	Keyword   string `json:"keyword,omitempty"`
	Published *bool  `json:"published,omitempty"`
}

// WorkInput is the editable body of a work.
type WorkInput struct {
	Title      string   `json:"title"`
	Cover      string   `json:"cover"`
	Author     string   `json:"author"`
	CategoryID int64    `json:"categoryId"`
	Summary    string   `json:"summary,omitempty"`
	Content    string   `json:"content"`
	Images     []string `json:"images,omitempty"`
	Video      string   `json:"video,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// WorkPublishParams publishes or withdraws a work.
type WorkPublishParams struct {
	Published bool `json:"published"`
}

// TicketStatsParams bounds the ticket statistics window.
// Dates are YYYY-MM-DD.
type TicketStatsParams struct {
	TicketID  int64  `json:"ticketId,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// TicketStatsSummary aggregates sales and circulation.
type TicketStatsSummary struct {
	TicketID     int64  `json:"ticketId,omitempty"`
	TotalIssued  int    `json:"totalIssued"`
	TotalSold    int    `json:"totalSold"`
	TotalUsed    int    `json:"totalUsed"`
	HolderCount  int    `json:"holderCount"`
	Consigned    int    `json:"consigned"`
	SalesAmount  string `json:"salesAmount"`
	ResaleAmount string `json:"resaleAmount"`
}

// HoldingStatsParams pages the holder list.
type HoldingStatsParams struct {
	PageParams
	TicketID int64 `json:"ticketId,omitempty"`
}

// HoldingStat is one holder's position in a ticket.
type HoldingStat struct {
	Address  string `json:"address"`
	UserID   int64  `json:"userId"`
	TicketID int64  `json:"ticketId"`
	Count    int    `json:"count"`
	Used     int    `json:"used"`
}

// HoldingSnapshotParams selects the snapshot to export.
// SnapshotAt is a unix timestamp in seconds; zero means now.
type HoldingSnapshotParams struct {
	TicketID   int64 `json:"ticketId,omitempty"`
	SnapshotAt int64 `json:"snapshotAt,omitempty"`
}
