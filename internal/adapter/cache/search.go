package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

const searchCacheName = "search"

// SearchCache is an LRU of search result pages with a fixed time-to-live.
// Cached results are shared between callers and must be treated as read-only.
type SearchCache struct {
	lru *expirable.LRU[string, *domain.SearchResult]
}

// NewSearchCache creates a SearchCache holding at most capacity entries, each
// living for ttl after it was set.
func NewSearchCache(capacity int, ttl time.Duration) *SearchCache {
	c := expirable.NewLRU(capacity, func(string, *domain.SearchResult) {
		cacheEvictionsTotal.WithLabelValues(searchCacheName).Inc()
	}, ttl)
	return &SearchCache{lru: c}
}

// Get returns the cached result for key if present and not expired.
func (c *SearchCache) Get(key string) (*domain.SearchResult, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		cacheMissesTotal.WithLabelValues(searchCacheName).Inc()
		return nil, false
	}
	cacheHitsTotal.WithLabelValues(searchCacheName).Inc()
	return v, true
}

// Set stores result under key.
func (c *SearchCache) Set(key string, result *domain.SearchResult) {
	c.lru.Add(key, result)
}

// Purge drops all cached results. Purged entries count as evictions.
func (c *SearchCache) Purge() {
	c.lru.Purge()
}
