package port

import (
	"context"
	"time"
)

// Cache is the read-through cache contract the catalog surface depends on.
// Values are serialized strings; callers own the encoding. Implementations
// must be safe for concurrent use and honor context cancellation.
type Cache interface {
	// Get fetches the value for key. A miss is ("", ErrMiss); any other
	// non-nil error is a transport or server fault.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key for ttl. Zero or negative ttl stores without
	// expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Close releases the underlying client.
	Close() error
}

// ErrMiss distinguishes an absent key from a failing backend, so callers fall
// through to the store instead of surfacing an error.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }
