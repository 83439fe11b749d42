package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "stockassistant:cache:market:TSLA_30d", redisKey(NamespaceMarket, "TSLA_30d"))
}

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, 0)
	assert.Equal(t, DefaultTTL, c.ttl)

	err := c.Put(context.Background(), NamespaceNews, "TSLA", []byte(`{}`))
	assert.NotEqual(t, nil, err)

	_, ok := c.Get(context.Background(), NamespaceNews, "TSLA")
	assert.Equal(t, false, ok)
}
