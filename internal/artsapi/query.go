// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"bytes"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Query holds query string parameters.
//
// Nil values and nil pointers are skipped. Slices and arrays become repeated
// keys. Every other value is written in its natural string form. Keys are
// encoded in sorted order so URLs are deterministic.
type Query map[string]any

// Encode serializes q as application/x-www-form-urlencoded.
//
//	Query{"a": 1, "b": nil, "c": []int{1, 2}}.Encode() // a=1&c=1&c=2
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range queryValues(q[k]) {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// QueryFrom converts v into a Query.
//
// v may be nil, a Query, a map with string keys, url.Values, or a struct
// (or pointer to one). Structs are converted through their JSON form, so json
// tags name the keys and omitempty drops unset fields.
func QueryFrom(v any) (Query, error) {
	switch q := v.(type) {
	case nil:
		return nil, nil
	case Query:
		return q, nil
	case map[string]any:
		return Query(q), nil
	case map[string]string:
		out := make(Query, len(q))
		for k, s := range q {
			out[k] = s
		}
		return out, nil
	case url.Values:
		out := make(Query, len(q))
		for k, s := range q {
			out[k] = s
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("query: unsupported type %T", v)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("query: failed to encode %T: %w", v, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("query: failed to decode %T: %w", v, err)
	}
	return Query(out), nil
}

// queryValues flattens one query value into its string forms.
func queryValues(v any) []string {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return []string{string(rv.Bytes())}
		}
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i)
			if (item.Kind() == reflect.Pointer || item.Kind() == reflect.Interface) && item.IsNil() {
				continue
			}
			out = append(out, scalarString(item.Interface()))
		}
		return out
	default:
		return []string{scalarString(rv.Interface())}
	}
}

// scalarString renders a single value the way it should appear in a URL.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case fmt.Stringer:
		return s.String()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(rv.Interface())
	}
}
