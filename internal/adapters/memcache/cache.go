// Package memcache is the in-process fallback for the shared cache port,
// used when no redis address is configured (single-instance deployments,
// tests, the CLI). Same semantics as the redis adapter: JSON values,
// TTL-only expiry.
package memcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"takeitiz/internal/adapters/observability"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

type Cache struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func New() *Cache {
	return &Cache{data: make(map[string]entry), now: time.Now}
}

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.payload, dst)
}

func (c *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	// Expired entries are overwritten lazily; the map stays small because
	// the key space is bounded by the set of currency pairs seen.
	c.data[key] = entry{payload: b, expiresAt: c.now().Add(time.Duration(ttlSec) * time.Second)}
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
