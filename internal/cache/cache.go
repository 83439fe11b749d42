package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const DefaultTTL = time.Hour

type Namespace string

const (
	NamespaceEntities Namespace = "entities"
	NamespaceMarket   Namespace = "market"
	NamespaceNews     Namespace = "news"
)

// Cache is a namespaced store whose entries expire lazily after a fixed TTL.
// Writers racing on one key are tolerated; the last Put wins.
type Cache interface {
	Get(ctx context.Context, ns Namespace, key string) ([]byte, bool)
	Put(ctx context.Context, ns Namespace, key string, val []byte) error
}

// Load decodes a cached JSON value. Undecodable entries are treated as absent.
func Load[T any](ctx context.Context, c Cache, ns Namespace, key string) (T, bool) {
	var v T
	if c == nil {
		return v, false
	}
	b, ok := c.Get(ctx, ns, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(b, &v); err != nil {
		slog.Warn("discarding undecodable cache entry", "namespace", ns, "key", key, "error", err)
		return v, false
	}
	return v, true
}

// Store encodes v as JSON. Failures are logged and otherwise ignored.
func Store(ctx context.Context, c Cache, ns Namespace, key string, v any) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("error encoding cache entry", "namespace", ns, "key", key, "error", err)
		return
	}
	if err := c.Put(ctx, ns, key, b); err != nil {
		slog.Warn("error writing cache entry", "namespace", ns, "key", key, "error", err)
	}
}
