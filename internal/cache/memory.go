package cache

import (
	"context"
	"sync"
	"time"
)

type MemoryCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[Namespace]map[string]entry
}

type entry struct {
	val       []byte
	fetchedAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[Namespace]map[string]entry),
	}
}

// Get treats an entry as absent once now - fetchedAt >= ttl. Stale entries
// stay in the map until overwritten.
func (m *MemoryCache) Get(_ context.Context, ns Namespace, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[ns][key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(it.fetchedAt) >= m.ttl {
		return nil, false
	}
	return it.val, true
}

func (m *MemoryCache) Put(_ context.Context, ns Namespace, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.items[ns]
	if !ok {
		bucket = make(map[string]entry)
		m.items[ns] = bucket
	}
	bucket[key] = entry{val: val, fetchedAt: m.now()}
	return nil
}
