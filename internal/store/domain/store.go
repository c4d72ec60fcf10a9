package domain

import (
	"context"
	"errors"
)

// Snapshot keys.
const (
	KeyFormData = "app-data"
	KeyLang     = "app-lang"
)

var ErrNotFound = errors.New("not_found")

// Store is an opaque key-value store for form snapshots.
type Store interface {
	// Get returns ErrNotFound when key has never been set.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
