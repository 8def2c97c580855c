// ABOUTME: Expiring in-memory cache built on the patrickmn/go-cache library
// ABOUTME: Offloads TTL bookkeeping and periodic purging to the library

package gocache

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// GoCache implements the Cache interface using the go-cache library.
// Unlike the sync.Map-based memory cache it purges expired entries on a
// background interval instead of lazily on access.
type GoCache struct {
	cache *gocache.Cache
}

// NewGoCache creates a new go-cache backed cache. defaultExpiration applies
// when Set is called with a zero TTL once translated through go-cache's
// NoExpiration sentinel; cleanupInterval is how often expired entries are
// purged.
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a value from the cache
func (c *GoCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	return data, nil
}

// Set stores a value in the cache with the given TTL.
// A TTL of 0 stores the value without expiration.
func (c *GoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *GoCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// Count returns the number of items in the cache, expired items included
func (c *GoCache) Count() int {
	return c.cache.ItemCount()
}
