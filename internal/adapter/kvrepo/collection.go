package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

// collection mirrors one catalog collection to a single kv key as a JSON
// array. Every mutation rewrites the full persisted value; the mutex keeps
// the read-modify-write cycle of concurrent requests from interleaving.
type collection[T any] struct {
	store ports.KVStore
	key   string
	mu    sync.Mutex
}

func newCollection[T any](store ports.KVStore, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

// load returns the persisted records and whether the key has ever been
// written. An absent key is not an error: it means first run.
func (c *collection[T]) load(ctx context.Context) ([]T, bool, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", c.key, err)
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, true, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// loadOrSeed populates the collection with the seed dataset on first run
// only. A persisted empty collection stays empty.
func (c *collection[T]) loadOrSeed(ctx context.Context, seed []T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, persisted, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if persisted {
		return items, nil
	}
	if err := c.save(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
