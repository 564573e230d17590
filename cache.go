package tabbar

import (
	"fmt"
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of processed templates kept in memory.
const DefaultCacheSize = 512

type cacheKey struct {
	template string
	params   string
}

// Cache memoizes the data URLs produced from a template and a parameter set.
// It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, string]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache returns a cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("could not create the template cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Process returns the data URL of template rendered with p. Identical
// requests are served from the cache.
func (c *Cache) Process(template string, p Params) string {
	key := cacheKey{template: template, params: p.key()}
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	v := EncodeDataURL(p.apply(template))
	c.entries.Add(key, v)
	return v
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return c.entries.Len() }

// Stats returns the number of cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

var defaultCache atomic.Pointer[Cache]

func init() {
	c, err := NewCache(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	defaultCache.Store(c)
}

// SetCacheSize replaces the package level cache with an empty one of the given size.
func SetCacheSize(size int) error {
	c, err := NewCache(size)
	if err != nil {
		return err
	}
	defaultCache.Store(c)
	return nil
}

// DefaultCache returns the cache used by Process and by icons created with NewIcon.
func DefaultCache() *Cache { return defaultCache.Load() }

// Process renders template with p through the package level cache.
func Process(template string, p Params) string {
	return DefaultCache().Process(template, p)
}

// key serializes the parameters in a stable form.
func (p Params) key() string {
	return strconv.Quote(p.Color) + "|" +
		formatNumber(p.StrokeWidth) + "|" +
		strconv.FormatBool(p.AbsoluteStrokeWidth) + "|" +
		strconv.Quote(string(p.Size))
}
