/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package typecache

import "github.com/erni27/imcache"

// Gets value by key. Returns true and value if key is loaded, false and zero
// value otherwise. Lock-free.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

// Returns the value for key, loading it with load on first use.
//
// Concurrent first uses of a key are serialized, so load runs at most once
// per key. If load fails, no entry is made and the error is returned; the
// next Ensure for the same key calls load again.
func (c *Cache[K, V]) Ensure(key K, load func() (V, error)) (value V, err error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if value, ok := c.cache.Get(key); ok {
		return value, nil
	}

	value, err = load()
	if err == nil {
		c.cache.Set(key, value, imcache.WithNoExpiration())
	}
	return value, err
}
