package catalog

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// CacheConfig sizes the catalog cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// cachedEntry wraps a catalog entry with version metadata for cache invalidation.
// Only entries that exist are cached; catalog rows are never deleted.
type cachedEntry struct {
	Version    string
	Tag        *domain.Tag
	Ingredient *domain.Ingredient
}

// catalogCache provides an in-memory LRU cache for tag and ingredient lookups
// with time-based expiration and version-based invalidation.
type catalogCache struct {
	lru    *expirable.LRU[string, *cachedEntry]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newCatalogCache(config CacheConfig) *catalogCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedEntry](config.Size, nil, config.TTL),
	}
}

func tagKey(id int64) string        { return cacheKeyTag + strconv.FormatInt(id, 10) }
func ingredientKey(id int64) string { return cacheKeyIngredient + strconv.FormatInt(id, 10) }

func (c *catalogCache) get(key string) (*cachedEntry, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry, true
}

// GetTag retrieves a tag from the cache
func (c *catalogCache) GetTag(id int64) (*domain.Tag, bool) {
	entry, ok := c.get(tagKey(id))
	if !ok || entry.Tag == nil {
		return nil, false
	}
	return entry.Tag, true
}

// SetTag stores a tag in the cache
func (c *catalogCache) SetTag(tag domain.Tag) {
	c.lru.Add(tagKey(tag.ID), &cachedEntry{Version: CacheSchemaVersion, Tag: &tag})
}

// GetIngredient retrieves an ingredient from the cache
func (c *catalogCache) GetIngredient(id int64) (*domain.Ingredient, bool) {
	entry, ok := c.get(ingredientKey(id))
	if !ok || entry.Ingredient == nil {
		return nil, false
	}
	return entry.Ingredient, true
}

// SetIngredient stores an ingredient in the cache
func (c *catalogCache) SetIngredient(in domain.Ingredient) {
	c.lru.Add(ingredientKey(in.ID), &cachedEntry{Version: CacheSchemaVersion, Ingredient: &in})
}

// Clear removes all entries from the cache.
func (c *catalogCache) Clear() {
	c.lru.Purge()
}

// Stats returns the hit/miss counters and current size
func (c *catalogCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
