package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrUserNotFound is returned when an operation targets an id that holds
	// no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidShardCount is returned by NewStorages when the configured
	// number of shards is not positive.
	ErrInvalidShardCount = errors.New("shard count must be positive")
)
