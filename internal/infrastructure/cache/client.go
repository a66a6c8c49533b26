package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is the contract the application layer uses for caching (DIP); the
// concrete backend is Redis, with a no-op fallback when caching is disabled.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss is returned when the key is not present.
var ErrCacheMiss = errors.New("cache miss")

// RedisClient implements Client over Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisClient{rdb: rdb}, nil
}

// Get retrieves the value for key, or ErrCacheMiss.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a value with an expiration.
func (c *RedisClient) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Delete removes a key; deleting a missing key is not an error.
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Noop satisfies Client when no Redis address is configured: every Get misses
// and writes are discarded.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) (string, error) { return "", ErrCacheMiss }

func (Noop) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (Noop) Delete(ctx context.Context, key string) error { return nil }
