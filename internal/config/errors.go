package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates an empty listen address or a negative
	// timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates a negative rate or burst.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidStorageConfigs indicates a non-positive shard count.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
