// Package storage defines the key/value contract the repositories persist
// whole records through.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type Store interface {
	// Get returns ErrNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
}
