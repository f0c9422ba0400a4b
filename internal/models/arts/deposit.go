// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package arts

// DepositConfig lists the chains and tokens accepted for deposits.
type DepositConfig struct {
	Address   string         `json:"address"`
	Chains    []DepositChain `json:"chains"`
	MinAmount string         `json:"minAmount"`
	Notice    string         `json:"notice,omitempty"`
}

// DepositChain is one supported network.
type DepositChain struct {
	ChainID       int64          `json:"chainId"`
	Name          string         `json:"name"`
	Confirmations int            `json:"confirmations"`
	Tokens        []DepositToken `json:"tokens"`
}

// DepositToken is a token accepted on a chain.
type DepositToken struct {
	Symbol   string `json:"symbol"`
	Contract string `json:"contract"`
	Decimals int    `json:"decimals"`
}

// DepositSubmitParams reports an on-chain transfer for crediting.
type DepositSubmitParams struct {
	ChainID     int64  `json:"chainId"`
	Token       string `json:"token"`
	Amount      string `json:"amount"`
	TxHash      string `json:"txHash"`
	FromAddress string `json:"fromAddress,omitempty"`
}

// DepositRecordParams filters deposit history.
type DepositRecordParams struct {
	PageParams
	Status string `json:"status,omitempty"`
}

// DepositOrder is one deposit and its confirmation state.
type DepositOrder struct {
	OrderNo       string `json:"orderNo"`
	ChainID       int64  `json:"chainId"`
	Token         string `json:"token"`
	Amount        string `json:"amount"`
	TxHash        string `json:"txHash"`
	FromAddress   string `json:"fromAddress,omitempty"`
	Status        string `json:"status"`
	Confirmations int    `json:"confirmations"`
	CreatedAt     int64  `json:"createdAt"`
	CreditedAt    int64  `json:"creditedAt,omitempty"`
}
