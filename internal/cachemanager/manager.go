// Package cachemanager provides a small typed cache abstraction over
// patrickmn/go-cache plus a read-through helper that only caches successes.
package cachemanager

import "time"

// CacheManager is a typed key/value cache with per-entry TTLs.
// Address book operations never block, so the interface carries no context.
type CacheManager[K comparable, V any] interface {
	Get(key K) (V, bool)
	GetWithRefresh(key K, ttl time.Duration) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(keys ...K)
	Flush()
	Len() int
}
