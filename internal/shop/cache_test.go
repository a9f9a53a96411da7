package shop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MultiplierShop/internal/pricing"
)

func TestSearchCache(t *testing.T) {
	cache := newSearchCache(CacheConfig{Size: 2, TTL: time.Minute})
	key := searchKey{budget: 100, price: 10, gain: 1}

	_, found := cache.Get(key)
	assert.False(t, found)

	want := SearchResult{Purchase: pricing.Purchase{Amount: 4, Cost: 76, Gain: 4}}
	cache.Set(key, want)

	got, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, want, got)

	other := key
	other.ceiling = 10
	_, found = cache.Get(other)
	assert.False(t, found, "ceiling is part of the key")

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	cache.Clear()
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestSearchCache_Eviction(t *testing.T) {
	cache := newSearchCache(CacheConfig{Size: 1, TTL: time.Minute})

	cache.Set(searchKey{budget: 1}, SearchResult{Purchase: pricing.Purchase{Amount: 1}})
	cache.Set(searchKey{budget: 2}, SearchResult{Purchase: pricing.Purchase{Amount: 2}, Limited: true})

	_, found := cache.Get(searchKey{budget: 1})
	assert.False(t, found)
	got, found := cache.Get(searchKey{budget: 2})
	assert.True(t, found)
	assert.True(t, got.Limited)
}

func TestCacheConfigDefaults(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1024, cfg.Size)
	assert.Equal(t, 10*time.Minute, cfg.TTL)

	cache := newSearchCache(CacheConfig{})
	assert.NotNil(t, cache.lru)
}
