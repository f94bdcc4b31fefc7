package services

import (
	"errors"
	"sync"
	"time"
)

// Shared test doubles for the service suite.

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

var errCacheMiss = errors.New("cache miss")

// stubCache records cache traffic so tests can assert on hit, fill and
// invalidation behavior.
type stubCache struct {
	mu     sync.Mutex
	values map[string][]byte

	sets    int
	deletes int
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string][]byte)}
}

func (c *stubCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[key]
	if !ok {
		return nil, errCacheMiss
	}
	return value, nil
}

func (c *stubCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	c.sets++
	return nil
}

func (c *stubCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	c.deletes++
	return nil
}
