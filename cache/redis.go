package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the Redis key holding the cache blob when none is
// configured.
const DefaultRedisKey = "lingocache:translations"

// RedisMedium holds the cache blob under a single Redis key. Redis serializes
// commands, so individual reads and writes are ordered server-side.
type RedisMedium struct {
	client *redis.Client
	key    string
}

// RedisConfig holds configuration for the Redis medium.
type RedisConfig struct {
	URL string // Redis connection URL (e.g., "redis://localhost:6379")
	Key string // Key holding the blob (default: DefaultRedisKey)
}

// NewRedisMedium creates a Redis medium with the given configuration.
func NewRedisMedium(cfg RedisConfig) (*RedisMedium, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisMediumFromClient(client, cfg.Key), nil
}

// NewRedisMediumFromClient creates a RedisMedium from an existing client.
func NewRedisMediumFromClient(client *redis.Client, key string) *RedisMedium {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisMedium{
		client: client,
		key:    key,
	}
}

// Read returns the blob stored under the configured key.
func (m *RedisMedium) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := m.client.Get(ctx, m.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Message: "reading blob from redis", Cause: err}
	}
	return data, true, nil
}

// Write replaces the blob under the configured key. No TTL: entries are only
// ever superseded, never expired.
func (m *RedisMedium) Write(ctx context.Context, data []byte) error {
	if err := m.client.Set(ctx, m.key, data, 0).Err(); err != nil {
		return &Error{Message: "writing blob to redis", Cause: err}
	}
	return nil
}

// Close closes the Redis connection.
func (m *RedisMedium) Close() error {
	return m.client.Close()
}

// Ping tests the Redis connection.
func (m *RedisMedium) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

// Verify RedisMedium implements Medium
var _ Medium = (*RedisMedium)(nil)
