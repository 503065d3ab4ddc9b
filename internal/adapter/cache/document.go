// Package cache holds the in-process caches of the discussion service:
// a bounded read-through cache of serialized discussions and a TTL cache of
// search result pages. Both are safe for concurrent use and may lose entries
// at any time.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const documentCacheName = "document"

// DocumentCache is a bounded LRU of serialized discussions keyed by
// "discussion_<id>". Entries never expire; they are replaced on every write.
type DocumentCache struct {
	lru *lru.Cache[string, []byte]
}

// NewDocumentCache creates a DocumentCache holding at most capacity entries.
func NewDocumentCache(capacity int) (*DocumentCache, error) {
	c, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, fmt.Errorf("create document cache: %w", err)
	}
	return &DocumentCache{lru: c}, nil
}

// Get returns the cached bytes for key. The returned slice must not be modified.
func (c *DocumentCache) Get(key string) ([]byte, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		cacheMissesTotal.WithLabelValues(documentCacheName).Inc()
		return nil, false
	}
	cacheHitsTotal.WithLabelValues(documentCacheName).Inc()
	return v, true
}

// Put stores value under key, replacing any previous entry.
func (c *DocumentCache) Put(key string, value []byte) {
	if evicted := c.lru.Add(key, value); evicted {
		cacheEvictionsTotal.WithLabelValues(documentCacheName).Inc()
	}
}

// PutIfAbsent stores value under key only when key is not cached and
// reports whether it did. Lookup and insert are atomic.
func (c *DocumentCache) PutIfAbsent(key string, value []byte) bool {
	ok, evicted := c.lru.ContainsOrAdd(key, value)
	if evicted {
		cacheEvictionsTotal.WithLabelValues(documentCacheName).Inc()
	}
	return !ok
}

// Remove drops key from the cache. It is not counted as an eviction.
func (c *DocumentCache) Remove(key string) {
	c.lru.Remove(key)
}

// Len returns the number of cached entries.
func (c *DocumentCache) Len() int {
	return c.lru.Len()
}
