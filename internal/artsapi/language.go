// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import "strings"

// Canonical language tags understood by the backend.
const (
	LanguageEnglish            = "en"
	LanguageChineseSimplified  = "zh-CN"
	LanguageChineseTraditional = "zh-TW"
	LanguageChineseHant        = "zh-Hant"
)

// LanguageProvider supplies the current UI language at call time.
// An empty result means "no preference".
type LanguageProvider interface {
	ResolveLanguage() string
}

// LanguageProviderFunc adapts a function to LanguageProvider.
type LanguageProviderFunc func() string

// ResolveLanguage calls f.
func (f LanguageProviderFunc) ResolveLanguage() string {
	return f()
}

// NormalizeLanguage maps loose language tags onto the backend's canonical set.
//
//	en, en-US, en-GB      -> en
//	zh, zh-cn, zh-hans    -> zh-CN
//	zh-hk, zh-tw          -> zh-TW
//	zh-hant               -> zh-Hant
//
// Matching is case-insensitive. Other tags pass through trimmed but otherwise
// unchanged. Blank input yields "", which omits the Accept-Language header.
func NormalizeLanguage(lang string) string {
	trimmed := strings.TrimSpace(lang)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "en"):
		return LanguageEnglish
	case lower == "zh", lower == "zh-cn", lower == "zh-hans":
		return LanguageChineseSimplified
	case lower == "zh-hk", lower == "zh-tw":
		return LanguageChineseTraditional
	case lower == "zh-hant":
		return LanguageChineseHant
	default:
		return trimmed
	}
}

// resolveLanguage applies the precedence per-call > provider > static and
// normalizes the winner.
func resolveLanguage(perCall string, provider LanguageProvider, static string) string {
	if lang := NormalizeLanguage(perCall); lang != "" {
		return lang
	}
	if provider != nil {
		if lang := NormalizeLanguage(provider.ResolveLanguage()); lang != "" {
			return lang
		}
	}
	return NormalizeLanguage(static)
}
