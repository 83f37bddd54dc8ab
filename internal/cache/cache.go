// Package cache provides a generic in-memory key/value store with
// per-entry time-to-live and lazy eviction.
package cache

import (
	"sync"
	"time"
)

// entry pairs a stored value with its expiry deadline.
type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is an expiring string-keyed store. Keys are opaque caller-defined
// strings; the cache imposes no structure on them. Expired entries are
// evicted lazily on access rather than by a background sweep, so Size may
// temporarily over-count until a read or CleanExpired touches the stale
// entries.
type Cache[T any] struct {
	mu         sync.Mutex
	entries    map[string]entry[T]
	defaultTTL time.Duration

	// now is the clock used for expiry checks; overridable in tests.
	now func() time.Time
}

// New creates a cache whose entries default to the given TTL unless
// SetTTL overrides it per entry.
func New[T any](defaultTTL time.Duration) *Cache[T] {
	return &Cache[T]{
		entries:    make(map[string]entry[T]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Set stores value under key with the default TTL, replacing any existing
// entry unconditionally.
func (c *Cache[T]) Set(key string, value T) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL. A zero or negative
// TTL produces an entry that is already expired: it occupies a slot until
// evicted but is a miss on every read.
func (c *Cache[T]) SetTTL(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Get returns the live value for key. Expired or missing entries report
// ok=false; an expired entry is evicted as a side effect.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Has reports whether key holds a live entry, applying the same expiry
// check and eviction as Get. Has and Get never disagree at the same
// instant.
func (c *Cache[T]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return false
	}
	return true
}

// Delete removes key regardless of expiry state. Missing keys are a no-op.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

// Keys returns a fresh snapshot of the live keys, evicting any expired
// entries it encounters. It is the authoritative live count; Size is not.
func (c *Cache[T]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	keys := make([]string, 0, len(c.entries))
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Size returns the raw entry count, including expired entries that no read
// has evicted yet. This over-count is intentional: Size is O(1) while Keys
// pays for an accurate sweep.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CleanExpired sweeps the whole cache, removing every expired entry, and
// returns how many it removed. Meant for scheduled maintenance on top of
// the lazy per-read eviction.
func (c *Cache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}
