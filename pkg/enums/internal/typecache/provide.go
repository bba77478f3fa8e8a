/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package typecache

import (
	"sync"

	"github.com/erni27/imcache"
)

// Init-once cache with K key type and V value type: each key is loaded at
// most once and never evicted, refreshed or replaced afterwards.
type Cache[K comparable, V any] struct {
	cache imcache.Cache[K, V]
	mx    sync.Mutex
}

// Creates and returns new init-once cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{}
}
