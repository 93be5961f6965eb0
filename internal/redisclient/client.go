package redisclient

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/store"

	"github.com/go-redis/redis/v8"
)

// Client is the redis-backed snapshot storage. Each entity collection lives as
// one JSON string value under its catalog:* key, so a save replaces the whole
// collection in a single SET.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to redis and verifies the connection.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Get returns the snapshot payload stored under key, or store.ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return payload, nil
}

// Set replaces the snapshot payload under key. Snapshots never expire.
func (c *Client) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}
