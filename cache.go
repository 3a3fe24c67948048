package spesengine

import (
	"sync"
	"time"

	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// indexEntry stores one cached hierarchy index.
type indexEntry struct {
	index     *catalog.Index
	expiresAt time.Time // zero means no expiry
}

// IndexCache memoizes built hierarchy indexes across resolutions.
//
// The engine itself never caches: every NewEngine builds (or receives) its
// indexes and performs no implicit invalidation. IndexCache is the
// caller-owned memoization hook - the caller picks the key (typically a
// catalog revision or etag) and is solely responsible for keying differently
// whenever the underlying node collection changes. A stale key returns a
// stale index; the cache cannot detect that.
//
// Safe for concurrent use from multiple goroutines.
type IndexCache struct {
	mu      sync.RWMutex
	entries map[string]indexEntry
	ttl     time.Duration // 0 means no expiry
}

// IndexCacheOption configures an IndexCache.
type IndexCacheOption func(*IndexCache)

// WithTTL sets the time-to-live for cached indexes.
// Entries older than TTL are dropped on access. A TTL of 0 (default) means
// entries never expire within the cache's lifetime. Choose TTL based on how
// often the catalog forests change relative to how costly a rebuild is.
func WithTTL(ttl time.Duration) IndexCacheOption {
	return func(c *IndexCache) {
		c.ttl = ttl
	}
}

// NewIndexCache creates an empty index cache.
func NewIndexCache(opts ...IndexCacheOption) *IndexCache {
	c := &IndexCache{
		entries: make(map[string]indexEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a cached index. Returns (nil, false) if the key is absent or
// the entry expired.
func (c *IndexCache) Get(key string) (*catalog.Index, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.index, true
}

// Set stores an index under the given key, replacing any previous entry.
func (c *IndexCache) Set(key string, index *catalog.Index) {
	entry := indexEntry{index: index}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// GetOrBuild returns the cached index for key, building and storing it via
// build on a miss. Concurrent misses may build more than once; the last
// write wins, which is harmless for immutable indexes.
func (c *IndexCache) GetOrBuild(key string, build func() *catalog.Index) *catalog.Index {
	if idx, ok := c.Get(key); ok {
		return idx
	}
	idx := build()
	c.Set(key, idx)
	return idx
}

// Size returns the number of cached indexes, counting expired entries not
// yet evicted.
func (c *IndexCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries. Call after any bulk catalog change when keys
// are not revision-derived.
func (c *IndexCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]indexEntry)
	c.mu.Unlock()
}
