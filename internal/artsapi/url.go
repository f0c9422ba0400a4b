// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"strconv"
	"strings"
)

// artsPrefix is the path root of every backend route.
const artsPrefix = "/arts"

// NormalizeBaseURL strips trailing slashes. An empty base stays empty.
func NormalizeBaseURL(base string) string {
	return strings.TrimRight(base, "/")
}

// BuildURL joins baseURL and path and appends the encoded query.
//
// path gains a leading slash when missing. When baseURL already ends in /arts
// and path starts with /arts, the duplicate segment is dropped:
//
//	BuildURL("https://api.example.com/arts", "/arts/user/asset", nil)
//	// https://api.example.com/arts/user/asset
//
// query may be nil, a Query, a map[string]any or a parameter struct; see
// QueryFrom. Values that cannot be converted are dropped; use QueryFrom
// directly to observe the error.
func BuildURL(baseURL, path string, query any) string {
	base := NormalizeBaseURL(baseURL)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if strings.HasSuffix(base, artsPrefix) {
		switch {
		case path == artsPrefix:
			path = ""
		case strings.HasPrefix(path, artsPrefix+"/"):
			path = path[len(artsPrefix):]
		}
	}

	u := base + path

	q, err := QueryFrom(query)
	if err != nil {
		return u
	}
	if qs := q.Encode(); qs != "" {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + qs
	}

	return u
}

// EncodePathSegment percent-encodes s for use as one path segment.
// Only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as is.
func EncodePathSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// EncodePath encodes every "/"-delimited segment of p, keeping the slashes.
func EncodePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = EncodePathSegment(seg)
	}
	return strings.Join(segments, "/")
}

const upperhex = "0123456789ABCDEF"

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// IDSegment encodes a numeric resource ID as a path segment.
func IDSegment(id int64) string {
	return EncodePathSegment(strconv.FormatInt(id, 10))
}
