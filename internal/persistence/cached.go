package persistence

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion invalidates cached bytes written by an older layout
const CacheSchemaVersion = "1.0"

type cachedRecord struct {
	Version  string
	Data     []byte
	CachedAt time.Time
}

// CachedStorage is a read-through, write-through LRU in front of another
// Storage. Entries expire after the configured TTL.
type CachedStorage struct {
	inner Storage
	lru   *expirable.LRU[string, *cachedRecord]
}

// NewCachedStorage wraps inner with an expirable LRU of size entries.
// Non-positive values use DefaultCacheSize and DefaultCacheTTL.
func NewCachedStorage(inner Storage, size int, ttl time.Duration) *CachedStorage {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStorage{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedRecord](size, nil, ttl),
	}
}

// Write writes through to the inner storage and caches data on success
func (c *CachedStorage) Write(ctx context.Context, path string, data []byte) error {
	if err := c.inner.Write(ctx, path, data); err != nil {
		c.lru.Remove(path)
		return err
	}
	c.set(path, data)
	return nil
}

// Read serves from the cache, falling back to the inner storage
func (c *CachedStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if entry, ok := c.lru.Get(path); ok {
		if entry.Version == CacheSchemaVersion {
			return append([]byte(nil), entry.Data...), nil
		}
		c.lru.Remove(path)
	}

	data, err := c.inner.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	c.set(path, data)
	return data, nil
}

// Delete evicts path and deletes it from the inner storage
func (c *CachedStorage) Delete(ctx context.Context, path string) error {
	c.lru.Remove(path)
	return c.inner.Delete(ctx, path)
}

// Len returns the number of cached entries
func (c *CachedStorage) Len() int {
	return c.lru.Len()
}

// Purge empties the cache
func (c *CachedStorage) Purge() {
	c.lru.Purge()
}

func (c *CachedStorage) set(path string, data []byte) {
	c.lru.Add(path, &cachedRecord{
		Version:  CacheSchemaVersion,
		Data:     append([]byte(nil), data...),
		CachedAt: time.Now(),
	})
}
