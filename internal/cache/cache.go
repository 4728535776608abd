// Package cache memoizes finished valuations by vehicle fingerprint so a
// repeated request for the same vehicle skips the pipeline and the LLM call.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValuationTTL is how long a cached valuation stays fresh. Ledger history
// moves slowly; a day-old valuation is still representative.
const ValuationTTL = 24 * time.Hour

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "autovaluate:valuation:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
