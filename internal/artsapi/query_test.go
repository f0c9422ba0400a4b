// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tomtom215/artsapi/internal/models/arts"
)

type stringerID int

func (s stringerID) String() string { return "id-" + string(rune('0'+int(s))) }

func TestQuery_Encode(t *testing.T) {
	var nilPtr *int
	seven := 7

	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"nil and slices", Query{"a": 1, "b": nil, "c": []int{1, 2}}, "a=1&c=1&c=2"},
		{"empty", Query{}, ""},
		{"sorted keys", Query{"z": "1", "a": "2", "m": "3"}, "a=2&m=3&z=1"},
		{"bool and float", Query{"on": true, "ratio": 0.25}, "on=true&ratio=0.25"},
		{"large float keeps digits", Query{"n": 1e21}, "n=1000000000000000000000"},
		{"pointers", Query{"p": &seven, "q": nilPtr}, "p=7"},
		{"nil items in slice", Query{"s": []any{"x", nil, 3}}, "s=x&s=3"},
		{"array", Query{"a": [2]string{"x", "y"}}, "a=x&a=y"},
		{"escaping", Query{"k w": "a&b=c"}, "k+w=a%26b%3Dc"},
		{"stringer", Query{"s": stringerID(3)}, "s=id-3"},
		{"unsigned", Query{"u": uint8(9)}, "u=9"},
		{"empty string kept", Query{"e": ""}, "e="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Encode())
		})
	}
}

func TestQueryFrom(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		q, err := QueryFrom(nil)
		require.NoError(t, err)
		assert.Empty(t, q.Encode())
	})

	t.Run("struct with embedded page", func(t *testing.T) {
		q, err := QueryFrom(arts.WorkListParams{
			PageParams: arts.PageParams{Page: 2, PageSize: 20},
			Keyword:    "ink",
			Tags:       []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, "keyword=ink&page=2&pageSize=20&tags=a&tags=b", q.Encode())
	})

	t.Run("omitempty drops zero fields", func(t *testing.T) {
		q, err := QueryFrom(&arts.PageParams{})
		require.NoError(t, err)
		assert.Equal(t, "", q.Encode())
	})

	t.Run("large integers survive", func(t *testing.T) {
		q, err := QueryFrom(arts.HoldingSnapshotParams{TicketID: 9007199254740993})
		require.NoError(t, err)
		assert.Equal(t, "ticketId=9007199254740993", q.Encode())
	})

	t.Run("pointer bool", func(t *testing.T) {
		published := false
		q, err := QueryFrom(arts.AdminWorkListParams{Published: &published})
		require.NoError(t, err)
		assert.Equal(t, "published=false", q.Encode())
	})

	t.Run("string map", func(t *testing.T) {
		q, err := QueryFrom(map[string]string{"b": "2", "a": "1"})
		require.NoError(t, err)
		assert.Equal(t, "a=1&b=2", q.Encode())
	})

	t.Run("url values", func(t *testing.T) {
		q, err := QueryFrom(url.Values{"x": {"1", "2"}})
		require.NoError(t, err)
		assert.Equal(t, "x=1&x=2", q.Encode())
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *arts.PageParams
		q, err := QueryFrom(p)
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := QueryFrom(42)
		assert.Error(t, err)
	})
}

func TestQuery_EncodeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfDistinct(rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_]{0,6}`), rapid.ID[string]).Draw(t, "keys")
		q := Query{}
		want := url.Values{}
		for _, k := range keys {
			vals := rapid.SliceOfN(rapid.String(), 0, 3).Draw(t, k)
			q[k] = vals
			for _, v := range vals {
				want.Add(k, v)
			}
		}

		enc := q.Encode()

		got, err := url.ParseQuery(enc)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", enc, err)
		}
		if len(want) == 0 {
			if enc != "" {
				t.Fatalf("expected empty encoding, got %q", enc)
			}
			return
		}
		if want.Encode() != got.Encode() {
			t.Fatalf("decoded %v, want %v", got, want)
		}

		var order []string
		for _, pair := range strings.Split(enc, "&") {
			order = append(order, strings.SplitN(pair, "=", 2)[0])
		}
		if !sort.StringsAreSorted(order) {
			t.Fatalf("keys not sorted in %q", enc)
		}
	})
}
