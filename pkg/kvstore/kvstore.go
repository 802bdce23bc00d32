// Package kvstore is the key-value capability behind the visitor history
// stores. A Store holds opaque byte slices; every write replaces the whole
// value, so readers never observe a partial update.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	// Get returns ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove is a no-op for missing keys.
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Scoped prefixes every key with prefix before handing it to the underlying
// store. The storefront uses it to give each visitor session its own slots.
func Scoped(s Store, prefix string) Store {
	return &scoped{inner: s, prefix: prefix}
}

type scoped struct {
	inner  Store
	prefix string
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

func (s *scoped) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close does not close the shared store.
func (s *scoped) Close(context.Context) error {
	return nil
}

// SessionPrefix is the key prefix for one visitor session.
func SessionPrefix(sessionID string) string {
	return "session:" + sessionID + ":"
}
