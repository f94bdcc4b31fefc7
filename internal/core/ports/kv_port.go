package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when nothing was ever stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the string-keyed, string-valued persistent store backing every
// catalog collection and the session mirror. Values are JSON documents.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
