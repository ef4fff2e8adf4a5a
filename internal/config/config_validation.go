// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultHTTPAddress is used when neither an HTTP nor a gRPC address is
	// configured.
	DefaultHTTPAddress = "0.0.0.0:5001"

	// DefaultVersion is reported when APP_VERSION is not set.
	DefaultVersion = "dev"

	// DefaultAdapterAddress is the service address the client assumes.
	DefaultAdapterAddress = "http://localhost:5001"

	// DefaultAdapterTimeout bounds client calls when no timeout is set.
	DefaultAdapterTimeout = 30 * time.Second
)

// applyDefaults fills the settings a bare environment leaves empty.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = int(math.Max(1, math.Ceil(cfg.Server.RateLimit)))
	}

	if cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidServerConfigs, cfg.Server.RequestTimeout)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit or burst", ErrInvalidServerConfigs)
	}

	if cfg.Workers.DerivationPoolSize < 0 {
		return fmt.Errorf("%w: negative derivation pool size %d", ErrInvalidWorkerConfigs, cfg.Workers.DerivationPoolSize)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
