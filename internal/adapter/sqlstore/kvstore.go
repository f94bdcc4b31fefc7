package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

// KVStore persists string keys and JSON string values in a single kv table.
// It works against postgres (lib/pq) and sqlite (modernc.org/sqlite); the
// two drivers disagree on placeholder syntax, so queries are chosen at
// construction time.
type KVStore struct {
	db      *sql.DB
	qGet    string
	qSet    string
	qRemove string
}

func NewKVStore(db *sql.DB, driver string) *KVStore {
	s := &KVStore{db: db}
	if driver == "postgres" {
		s.qGet = `SELECT value FROM kv WHERE key = $1`
		s.qSet = `INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
		s.qRemove = `DELETE FROM kv WHERE key = $1`
	} else {
		s.qGet = `SELECT value FROM kv WHERE key = ?`
		s.qSet = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`
		s.qRemove = `DELETE FROM kv WHERE key = ?`
	}
	return s
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.qGet, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.qSet, key, value); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.qRemove, key); err != nil {
		return fmt.Errorf("kv remove %q: %w", key, err)
	}
	return nil
}
