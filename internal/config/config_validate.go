// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package config

import (
	"fmt"

	"github.com/tomtom215/artsapi/internal/validation"
)

// Validate checks struct tags first, then the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := validateHTTPURL(c.API.BaseURL, "ARTS_BASE_URL"); err != nil {
		return err
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}

	return c.validateRateLimit()
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 {
		return fmt.Errorf("ARTS_BREAKER_FAILURE_RATIO must be in (0,1] when the breaker is enabled, got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.MaxRequests == 0 {
		return fmt.Errorf("ARTS_BREAKER_MAX_REQUESTS must be at least 1 when the breaker is enabled")
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	if !c.RateLimit.Enabled {
		return nil
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("ARTS_RATE_LIMIT_RPS must be positive when rate limiting is enabled, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("ARTS_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled, got %d", c.RateLimit.Burst)
	}
	return nil
}
