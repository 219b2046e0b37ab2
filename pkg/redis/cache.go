package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// RefreshTTL indicates whether to refresh the TTL on access
	RefreshTTL bool
	// CacheName is the name of the cache for TTL lookup and key prefixing
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL: 1 * time.Hour,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// WithRefreshTTL enables TTL refresh on access
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the cache name for TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache stores JSON values under CacheName::key.
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// TTL returns the TTL for the cache, checking client configuration first
func (c *Cache) TTL() time.Duration {
	if c.opts.CacheName != "" {
		if clientTTL, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return clientTTL
		}
	}
	if c.opts.TTL > 0 {
		return c.opts.TTL
	}
	return c.client.config.DefaultCacheTTL
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get retrieves a value from cache and deserializes it. Missing keys return ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	fullKey := c.buildCacheKey(key)
	data, err := c.client.GetBytes(ctx, fullKey)
	if err != nil {
		return err
	}

	if c.opts.RefreshTTL {
		_ = c.client.Expire(ctx, fullKey, c.TTL())
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	return c.client.Set(ctx, c.buildCacheKey(key), data, c.TTL())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Exists checks if a key exists in cache
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, c.buildCacheKey(key))
	return count > 0, err
}
