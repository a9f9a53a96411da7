package shop

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig configures the search result cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache defaults.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// searchKey identifies a search. Results are pure functions of these inputs.
type searchKey struct {
	budget     int
	multiplier int
	price      int
	gain       int
	ceiling    int
}

// searchCache is an in-memory LRU for max-affordable results with time-based expiration.
type searchCache struct {
	lru    *expirable.LRU[searchKey, SearchResult]
	hits   atomic.Int64
	misses atomic.Int64
}

func newSearchCache(config CacheConfig) *searchCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &searchCache{
		lru: expirable.NewLRU[searchKey, SearchResult](config.Size, nil, config.TTL),
	}
}

func (c *searchCache) Get(key searchKey) (SearchResult, bool) {
	result, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return SearchResult{}, false
	}
	c.hits.Add(1)
	return result, true
}

func (c *searchCache) Set(key searchKey, result SearchResult) {
	c.lru.Add(key, result)
}

func (c *searchCache) Clear() {
	c.lru.Purge()
}

func (c *searchCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
