// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// TicketListParams filters the ticket catalogue.
type TicketListParams struct {
	PageParams
	Status  string `json:"status,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

// Ticket is an event or access ticket on sale.
type Ticket struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Cover       string `json:"cover"`
	Price       string `json:"price"`
	PayToken    string `json:"payToken"`
	Total       int    `json:"total"`
	Sold        int    `json:"sold"`
	Status      string `json:"status"`
	Venue       string `json:"venue,omitempty"`
	StartAt     int64  `json:"startAt,omitempty"`
	EndAt       int64  `json:"endAt,omitempty"`
	Description string `json:"description,omitempty"`
}

// TicketMineParams filters the caller's holdings.
type TicketMineParams struct {
	PageParams
	Status string `json:"status,omitempty"`
}

// TicketHolding is a ticket owned by the caller.
type TicketHolding struct {
	ID         int64  `json:"id"`
	TicketID   int64  `json:"ticketId"`
	TicketName string `json:"ticketName"`
	Cover      string `json:"cover"`
	Code       string `json:"code"`
	Status     string `json:"status"`
	AcquiredAt int64  `json:"acquiredAt"`
}

// TicketPurchaseParams buys tickets.
type TicketPurchaseParams struct {
	TicketID int64  `json:"ticketId"`
	Quantity int    `json:"quantity"`
	PayToken string `json:"payToken,omitempty"`
}

// TicketOrder is the result of a ticket purchase.
type TicketOrder struct {
	OrderNo    string  `json:"orderNo"`
	TicketID   int64   `json:"ticketId"`
	Quantity   int     `json:"quantity"`
	Amount     string  `json:"amount"`
	HoldingIDs []int64 `json:"holdingIds"`
}

// TicketTransferParams transfers a holding to another wallet.
type TicketTransferParams struct {
	HoldingID int64  `json:"holdingId"`
	ToAddress string `json:"toAddress"`
}

// TicketVerifyParams redeems a ticket code at the venue.
type TicketVerifyParams struct {
	Code string `json:"code"`
}

// TicketVerifyResult reports the outcome of a code check.
type TicketVerifyResult struct {
	Valid      bool   `json:"valid"`
	HoldingID  int64  `json:"holdingId"`
	TicketName string `json:"ticketName"`
	Owner      string `json:"owner"`
	UsedAt     int64  `json:"usedAt,omitempty"`
}
