// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

// Package arts holds the wire types of the Arts backend: the {code,msg,data}
// response envelope and the request and response payload of every endpoint
// group. Types carry no behaviour beyond small accessors.
//
// JSON field names follow the backend's camelCase convention. Parameter
// structs used as query strings tag optional fields with omitempty so that
// unset values never reach the URL.
package arts

// CodeOK is the envelope code of a successful call.
const CodeOK = 0

// Response is the envelope every JSON endpoint returns.
// Code 0 means success; any other code is a business failure carried in the
// same envelope, regardless of HTTP status.
type Response[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// OK reports whether the envelope carries a success code.
func (r *Response[T]) OK() bool {
	return r != nil && r.Code == CodeOK
}

// PageParams are the pagination parameters shared by list endpoints.
type PageParams struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}

// Page is a single page of a paginated list.
type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// HasMore reports whether further pages exist after this one.
func (p *Page[T]) HasMore() bool {
	if p == nil || p.PageSize <= 0 {
		return false
	}
	return int64(p.Page)*int64(p.PageSize) < p.Total
}
