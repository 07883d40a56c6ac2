package cachemanager

import "time"

// ReadThroughCache loads missing values through fn and caches them.
// Errors from fn are returned as-is and never cached.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache || cache == nil,
	}
}

func (r *ReadThroughCache[K, V, I]) Get(key K, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(input)
	}

	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	return r.load(key, input, ttl)
}

// GetWithRefresh behaves like Get but extends the TTL of a hit.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(key K, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(input)
	}

	if value, ok := r.cache.GetWithRefresh(key, ttl); ok {
		return value, nil
	}

	return r.load(key, input, ttl)
}

func (r *ReadThroughCache[K, V, I]) load(key K, input I, ttl time.Duration) (V, error) {
	value, err := r.fn(input)
	if err != nil {
		return value, err
	}
	r.cache.Set(key, value, ttl)
	return value, nil
}
