package config

import "errors"

// Validation errors returned when a configuration group is unusable.
var (
	// ErrInvalidServerConfigs indicates invalid server settings (for example,
	// a negative rate limit or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid derivation pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
