// Package kv is the host key/value storage the blog persists into: string
// keys, opaque byte values. Backends: in-memory, SQLite (default), bbolt and
// Redis. Several processes sharing one Redis behave like several browser tabs
// sharing one localStorage.
package kv

import (
	"context"
	"errors"
)

// ErrNotInteger is returned by Incr when the stored value is not a decimal
// integer. The value is left untouched.
var ErrNotInteger = errors.New("value is not an integer")

// ErrIncrContended is returned when an optimistic Incr kept losing to
// concurrent writers.
var ErrIncrContended = errors.New("counter update contended")

// Store is the storage primitive. Get and Take return (nil, nil) for an
// absent key; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Take reads and deletes key in one step, so a value is delivered at
	// most once.
	Take(ctx context.Context, key string) ([]byte, error)

	// Incr treats the value as a decimal integer (absent is 0), stores the
	// value plus one and returns it, atomically.
	Incr(ctx context.Context, key string) (int64, error)

	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}
