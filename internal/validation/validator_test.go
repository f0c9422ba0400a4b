// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package validation

import (
	"slices"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type endpointConfig struct {
	BaseURL  string  `validate:"required,httpurl"`
	Language string  `validate:"langtag"`
	Ratio    float64 `validate:"gt=0,lte=1"`
	Burst    int     `validate:"min=1"`
	Format   string  `validate:"oneof=json console"`
}

func validEndpointConfig() endpointConfig {
	return endpointConfig{
		BaseURL:  "https://api.example.com/arts",
		Language: "zh-CN",
		Ratio:    0.5,
		Burst:    1,
		Format:   "json",
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	cfg := validEndpointConfig()
	if err := ValidateStruct(&cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *endpointConfig)
		tag     string
		message string
	}{
		{
			name:    "missing base url",
			mutate:  func(c *endpointConfig) { c.BaseURL = "" },
			tag:     "required",
			message: "BaseURL is required",
		},
		{
			name:    "ftp base url",
			mutate:  func(c *endpointConfig) { c.BaseURL = "ftp://example.com" },
			tag:     "httpurl",
			message: "BaseURL must be an absolute http or https URL",
		},
		{
			name:    "relative base url",
			mutate:  func(c *endpointConfig) { c.BaseURL = "/arts" },
			tag:     "httpurl",
			message: "BaseURL must be an absolute http or https URL",
		},
		{
			name:    "bad language",
			mutate:  func(c *endpointConfig) { c.Language = "not a tag" },
			tag:     "langtag",
			message: "Language must be a language tag such as en or zh-CN",
		},
		{
			name:    "zero ratio",
			mutate:  func(c *endpointConfig) { c.Ratio = 0 },
			tag:     "gt",
			message: "Ratio must be greater than 0",
		},
		{
			name:    "burst below min",
			mutate:  func(c *endpointConfig) { c.Burst = 0 },
			tag:     "min",
			message: "Burst must be at least 1",
		},
		{
			name:    "unknown format",
			mutate:  func(c *endpointConfig) { c.Format = "xml" },
			tag:     "oneof",
			message: "Format must be one of: json console",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validEndpointConfig()
			tt.mutate(&cfg)

			err := ValidateStruct(&cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(err.Errors()), err)
			}
			fe := err.Errors()[0]
			if fe.Tag() != tt.tag {
				t.Errorf("tag = %q, want %q", fe.Tag(), tt.tag)
			}
			if fe.Error() != tt.message {
				t.Errorf("message = %q, want %q", fe.Error(), tt.message)
			}
		})
	}
}

func TestStructValidationError_Multiple(t *testing.T) {
	t.Parallel()

	cfg := validEndpointConfig()
	cfg.BaseURL = ""
	cfg.Burst = 0

	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "BaseURL is required") || !strings.Contains(msg, "Burst must be at least 1") {
		t.Errorf("combined message missing parts: %s", msg)
	}

	var fields []string
	for _, fe := range err.Errors() {
		fields = append(fields, fe.Field())
	}
	if !slices.Contains(fields, "endpointConfig.BaseURL") {
		t.Errorf("expected namespaced BaseURL field, got %v", fields)
	}
}

func TestStructValidationError_Empty(t *testing.T) {
	t.Parallel()

	err := &StructValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
