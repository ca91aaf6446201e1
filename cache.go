package sniffkit

import (
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/gobeaver/sniffkit/sniff"
)

// ============================================================================
// Cache Interface
// ============================================================================

// Cache defines the interface for detection result caches.
// This interface is designed to be simple and backend-agnostic,
// allowing implementations for in-memory, Redis, Memcached, etc.
//
// Implementations should be thread-safe.
type Cache interface {
	// Get retrieves a cached MIME type.
	// Returns the value and true if found, "" and false otherwise.
	Get(key string) (string, bool)

	// Set stores a MIME type in the cache with the given TTL.
	// A TTL of 0 means no expiration.
	Set(key string, mimeType string, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all values from the cache.
	Clear()
}

// CacheStats provides statistics about cache usage.
// Implementations may optionally support this interface.
type CacheStats interface {
	// Stats returns cache statistics.
	Stats() CacheStatistics
}

// CacheStatistics contains cache performance metrics.
type CacheStatistics struct {
	Hits    int64
	Misses  int64
	Size    int64
	HitRate float64
}

// ============================================================================
// In-Memory Cache Implementation
// ============================================================================

// cacheEntry represents a single cache entry with expiration.
type cacheEntry struct {
	mimeType   string
	expiration time.Time
	hasExpiry  bool
}

// MemoryCache is a simple in-memory cache implementation.
// It is thread-safe and supports TTL-based expiration.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	hits    int64
	misses  int64
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Get retrieves a cached MIME type.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return "", false
	}

	// Check expiration
	if entry.hasExpiry && time.Now().After(entry.expiration) {
		c.mu.Lock()
		delete(c.entries, key)
		c.misses++
		c.mu.Unlock()
		return "", false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return entry.mimeType, true
}

// Set stores a MIME type in the cache.
func (c *MemoryCache) Set(key string, mimeType string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{mimeType: mimeType}
	if ttl > 0 {
		entry.expiration = time.Now().Add(ttl)
		entry.hasExpiry = true
	}
	c.entries[key] = entry
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all values from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Stats returns cache statistics.
func (c *MemoryCache) Stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return CacheStatistics{
		Hits:    c.hits,
		Misses:  c.misses,
		Size:    int64(len(c.entries)),
		HitRate: hitRate,
	}
}

// Cleanup removes expired entries from the cache.
// Call this periodically to prevent memory growth from expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if entry.hasExpiry && now.After(entry.expiration) {
			delete(c.entries, key)
		}
	}
}

// Ensure MemoryCache implements Cache and CacheStats
var (
	_ Cache      = (*MemoryCache)(nil)
	_ CacheStats = (*MemoryCache)(nil)
)

// ============================================================================
// Caching Detector
// ============================================================================

// CachingDetector memoizes sniff results keyed by a 64-bit hash of the
// inspected header. Detection is deterministic, so cached entries never go
// stale; the TTL only bounds memory held by the cache backend.
//
// This is useful for:
// - Upload endpoints that see the same assets repeatedly
// - Archive walkers meeting duplicate members
// - Reducing per-request work on hot static paths
//
// Note: only the first 512 bytes feed the key, which is exactly the window
// detection looks at, so two inputs with equal headers share a result by
// construction.
//
// Example:
//
//	detector := sniffkit.NewCachingDetector(sniffkit.NewMemoryCache(),
//	    sniffkit.WithCacheTTL(10 * time.Minute),
//	)
//
//	// First call sniffs the bytes
//	mimeType := detector.Detect(data)
//
//	// Second call returns the cached result
//	mimeType = detector.Detect(data)
type CachingDetector struct {
	cache Cache
	opts  DetectorCacheOptions
}

// DetectorCacheOptions configures the CachingDetector behavior.
type DetectorCacheOptions struct {
	// TTL is the time-to-live for cache entries. 0 means no expiration.
	// Default: 0
	TTL time.Duration

	// KeyPrefix is prepended to all cache keys.
	// Useful when sharing a cache between multiple consumers.
	// Default: "sniffkit:"
	KeyPrefix string

	// OnCacheHit is called when a cache hit occurs.
	// Useful for metrics and debugging.
	OnCacheHit func(key string)

	// OnCacheMiss is called when a cache miss occurs.
	// Useful for metrics and debugging.
	OnCacheMiss func(key string)
}

// DetectorCacheOption is a functional option for configuring CachingDetector.
type DetectorCacheOption func(*DetectorCacheOptions)

// WithCacheTTL sets the TTL for cache entries.
func WithCacheTTL(ttl time.Duration) DetectorCacheOption {
	return func(o *DetectorCacheOptions) {
		o.TTL = ttl
	}
}

// WithCacheKeyPrefix sets the prefix prepended to cache keys.
func WithCacheKeyPrefix(prefix string) DetectorCacheOption {
	return func(o *DetectorCacheOptions) {
		o.KeyPrefix = prefix
	}
}

// WithCacheHitCallback sets a callback invoked on cache hits.
func WithCacheHitCallback(fn func(key string)) DetectorCacheOption {
	return func(o *DetectorCacheOptions) {
		o.OnCacheHit = fn
	}
}

// WithCacheMissCallback sets a callback invoked on cache misses.
func WithCacheMissCallback(fn func(key string)) DetectorCacheOption {
	return func(o *DetectorCacheOptions) {
		o.OnCacheMiss = fn
	}
}

// NewCachingDetector creates a detector backed by the given cache.
func NewCachingDetector(cache Cache, opts ...DetectorCacheOption) *CachingDetector {
	options := DetectorCacheOptions{
		KeyPrefix: "sniffkit:",
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &CachingDetector{
		cache: cache,
		opts:  options,
	}
}

// Detect returns the MIME type of data, consulting the cache first.
// Semantics are identical to sniff.Detect.
func (d *CachingDetector) Detect(data []byte) string {
	key := d.cacheKey(data)

	if mimeType, ok := d.cache.Get(key); ok {
		if d.opts.OnCacheHit != nil {
			d.opts.OnCacheHit(key)
		}
		return mimeType
	}
	if d.opts.OnCacheMiss != nil {
		d.opts.OnCacheMiss(key)
	}

	mimeType := sniff.Detect(data)
	d.cache.Set(key, mimeType, d.opts.TTL)
	return mimeType
}

// Stats returns statistics from the underlying cache, or false when the
// backend does not expose them.
func (d *CachingDetector) Stats() (CacheStatistics, bool) {
	stats, ok := d.cache.(CacheStats)
	if !ok {
		return CacheStatistics{}, false
	}
	return stats.Stats(), true
}

// cacheKey hashes the detection window of data. Bytes past the window are
// irrelevant to the result, so they must not influence the key either.
func (d *CachingDetector) cacheKey(data []byte) string {
	header := data
	if len(header) > 512 {
		header = header[:512]
	}
	sum := xxhash.Sum64(header)

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sum)
	return d.opts.KeyPrefix + hex.EncodeToString(buf[:])
}
