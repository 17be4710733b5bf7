package storage

import (
	"context"
	"errors"
)

var (
	ErrClosed         = errors.New("storage: store closed")
	ErrEmptyKey       = errors.New("storage: empty key")
	ErrEmptyNamespace = errors.New("storage: empty namespace")
)

// Store is a durable key-value space holding JSON text. A missing key is
// reported through ok=false and is never an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// SetMany writes every entry or none of them.
	SetMany(ctx context.Context, entries []Entry) error
	Keys(ctx context.Context) ([]string, error)
}

// Backend hands out one Store per namespace.
type Backend interface {
	Namespace(name string) Store
	Close() error
}

func validateEntries(entries []Entry) error {
	for _, e := range entries {
		if e.Key == "" {
			return ErrEmptyKey
		}
	}
	return nil
}
