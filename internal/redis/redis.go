package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisClient "github.com/go-redis/redis/v8"
)

// Cache stores search responses in redis. It satisfies genius.CacheStore.
type Cache struct {
	client *redisClient.Client
}

// NewCache connects with the same rediss://default:<password>@<host> form
// used for hosted redis instances.
func NewCache(address, password string) (*Cache, error) {
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", password, address))
	if err != nil {
		return nil, fmt.Errorf("invalid redis address %q: %w", address, err)
	}

	return &Cache{client: redisClient.NewClient(opt)}, nil
}

// NewCacheFromClient wraps an existing client
func NewCacheFromClient(client *redisClient.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the stored bytes for key. ok is false when the key is missing.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores data under key for ttl. A zero ttl keeps the key forever.
func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
