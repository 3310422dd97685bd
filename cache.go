package zzre

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoises Parse. Expression trees are never modified after
// construction, so a cached tree can be handed to any number of
// callers, including concurrent matches. Cache is safe for concurrent
// use.
type Cache struct {
	cache *lru.Cache[string, Expr]
}

// NewCache returns a Cache holding up to size parsed patterns, evicting
// the least recently used. size must be positive.
func NewCache(size int) *Cache {
	c, err := lru.New[string, Expr](size)
	// New only errors if given an invalid size.
	if err != nil {
		panic(err)
	}
	return &Cache{cache: c}
}

// Parse is like Parse, but returns the cached tree for a pattern seen
// before. Failed parses are not cached.
func (c *Cache) Parse(pattern string) (Expr, error) {
	if e, ok := c.cache.Get(pattern); ok {
		return e, nil
	}
	e, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	c.cache.Add(pattern, e)
	return e, nil
}

// Len reports the number of cached patterns.
func (c *Cache) Len() int { return c.cache.Len() }
