// Package jsonstore is the typed face of the key/value store: JSON values for
// collections and tokens, raw strings for the scalar keys the browser build
// stored unquoted (session user, logout message, theme).
//
// Decoding is permissive. A value that does not parse is logged and reported
// as absent, so a corrupted key degrades to an empty collection instead of
// making every view fail.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
)

type Adapter struct {
	store kv.Store
	log   logging.Logger
}

func New(store kv.Store, log logging.Logger) *Adapter {
	if log == nil {
		log = logging.Discard()
	}
	return &Adapter{store: store, log: log}
}

func (a *Adapter) decode(ctx context.Context, key string, raw []byte, dst any) bool {
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		a.log.Warn(ctx, "ignoring malformed stored value", "key", key, "error", err)
		return false
	}
	return true
}

// Load decodes key into dst. found is false when the key is absent or its
// value is malformed; dst may then hold a partial decode and should be
// discarded by the caller.
func (a *Adapter) Load(ctx context.Context, key string, dst any) (found bool, err error) {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return a.decode(ctx, key, raw, dst), nil
}

// Save overwrites key with the JSON encoding of v.
func (a *Adapter) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return a.store.Set(ctx, key, raw)
}

// Take is the one-shot form of Load: the key is removed whatever its content.
func (a *Adapter) Take(ctx context.Context, key string, dst any) (found bool, err error) {
	raw, err := a.store.Take(ctx, key)
	if err != nil {
		return false, err
	}
	return a.decode(ctx, key, raw, dst), nil
}

func (a *Adapter) Remove(ctx context.Context, key string) error {
	return a.store.Delete(ctx, key)
}

// String returns a raw string value; ok is false when absent or empty.
func (a *Adapter) String(ctx context.Context, key string) (value string, ok bool, err error) {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	return string(raw), len(raw) > 0, nil
}

func (a *Adapter) SetString(ctx context.Context, key, value string) error {
	return a.store.Set(ctx, key, []byte(value))
}

// TakeString reads and removes a raw string value.
func (a *Adapter) TakeString(ctx context.Context, key string) (value string, ok bool, err error) {
	raw, err := a.store.Take(ctx, key)
	if err != nil {
		return "", false, err
	}
	return string(raw), len(raw) > 0, nil
}

// Next increments the integer counter at key and returns the new value.
func (a *Adapter) Next(ctx context.Context, key string) (int64, error) {
	return a.store.Incr(ctx, key)
}
