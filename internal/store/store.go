package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Get for keys that were never set or
	// whose TTL has elapsed.
	ErrNotFound = errors.New("store: key not found")

	// ErrContention is returned by Update when the optimistic write
	// keeps losing against concurrent writers.
	ErrContention = errors.New("store: too much contention")

	// ErrNoChange can be returned from an UpdateFunc to abort the
	// update without writing and without failing it.
	ErrNoChange = errors.New("store: no change")
)

// UpdateFunc receives the current value of a key (nil when the key is
// missing) and returns the value to write back.
type UpdateFunc func(old []byte) ([]byte, error)

// Store is the key-value backend every tenant-scoped record lives in.
// Values are whole JSON blobs; Update is the only primitive that reads
// and writes atomically.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Update applies fn to the current value and writes the result back
	// only if the key was not modified in between. It retries a bounded
	// number of times on contention, re-reading the key each attempt.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
