package query

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/nlstn/go-roaquery/internal/filter"
	"github.com/nlstn/go-roaquery/internal/schema"
)

// DefaultCacheSize bounds the parse cache when no explicit size is given.
const DefaultCacheSize = 256

// Cache is a bounded cache mapping (model, expression) pairs to parsed
// filter trees. Trees are immutable once built, so a cached tree can be
// handed to any number of concurrent callers.
//
// Eviction strategy: when the cache reaches its capacity the entire map is
// replaced. This is simpler than true LRU bookkeeping and sufficient for the
// target workload of a small set of query templates repeated many times.
//
// Thread safety: all methods are safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[uint64]filter.Node
	max   int
}

// NewCache creates a cache holding at most max parsed trees. A non-positive
// max falls back to DefaultCacheSize.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		items: make(map[uint64]filter.Node, max),
		max:   max,
	}
}

// CacheKey hashes a model and expression into a cache key. The model name is
// part of the key because the same expression resolves differently against
// different models.
func CacheKey(model *schema.Model, expr string) uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(model.Name)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(expr)
	return digest.Sum64()
}

// Get returns the cached tree for key, if any.
func (c *Cache) Get(key uint64) (filter.Node, bool) {
	c.mu.RLock()
	node, ok := c.items[key]
	c.mu.RUnlock()
	return node, ok
}

// Put stores a parsed tree under key, evicting everything when full.
func (c *Cache) Put(key uint64, node filter.Node) {
	if node == nil {
		return
	}
	c.mu.Lock()
	if len(c.items) >= c.max {
		c.items = make(map[uint64]filter.Node, c.max)
	}
	c.items[key] = node
	c.mu.Unlock()
}

// Len reports the number of cached trees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
