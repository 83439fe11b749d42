package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stockassistant:cache"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func redisKey(ns Namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, ns, key)
}

func (r *RedisCache) Get(ctx context.Context, ns Namespace, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, redisKey(ns, key)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *RedisCache) Put(ctx context.Context, ns Namespace, key string, val []byte) error {
	return r.client.Set(ctx, redisKey(ns, key), val, r.ttl).Err()
}
