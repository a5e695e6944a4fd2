package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Client is the subset of the go-redis client the store needs.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Close() error
}

// Store keeps the orders blob under a single Redis key with no expiration.
type Store struct {
	client Client
	key    string
}

// New constructs a Redis-backed blob store.
func New(addr, key string) *Store {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	return &Store{client: client, key: key}
}

// NewWithClient wires an existing client; used by tests.
func NewWithClient(client Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the stored blob for the configured key.
func (s *Store) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return data, true, nil
}

// Put overwrites the stored blob.
func (s *Store) Put(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
