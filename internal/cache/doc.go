// Package cache provides a small generic LRU cache used by the effect
// engines to memoize derived data (lookup tables, compiled shader code).
//
//	c := cache.New[key, *table](128)
//	t := c.GetOrCreate(k, func() *table { return buildTable(k) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
