// Package redis holds the process-wide redis client. The backend uses
// redis for exactly one thing: the idempotency cache guarding the
// settlement endpoints, so the surface here is the handful of commands
// that cache needs.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// Init connects using a redis:// URL and verifies the server answers
// before the client is published. The password, when set, overrides
// whatever the URL carries.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	client = c
	return nil
}

// SetClient swaps in a prebuilt client. Tests use this to point the
// package at miniredis.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient exposes the underlying client
func GetClient() *redis.Client {
	return client
}

// Set writes a value under key with the given TTL
func Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return client.Set(ctx, key, value, ttl).Err()
}

// Get reads the value stored under key; redis.Nil means absent
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del drops a key
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX claims key atomically; false means another writer holds it
func SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, ttl).Result()
}
