// Package cache implements the bounded, time-expiring store for
// low-temperature Gemini responses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"codegem/internal/logging"
)

// LowTemperatureMax is the highest temperature whose responses are still
// deterministic enough to cache. Higher-temperature output is never stored.
const LowTemperatureMax = 0.3

// Fingerprint derives the cache key for a generation request. Any change to
// the prompt, temperature, or model selection yields a different key.
func Fingerprint(prompt string, temperature float64, fast bool) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%v_%t", prompt, temperature, fast)))
	return hex.EncodeToString(sum[:])
}

type entry struct {
	response  string
	createdAt time.Time
}

// ResponseCache is a TTL plus capacity bounded response store. Mutation is
// already serialized by the one-request-at-a-time dispatch loop, but the
// mutex keeps the type safe for reuse.
type ResponseCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]entry

	now func() time.Time // replaced in tests
}

// New creates a cache with the given TTL and maximum entry count.
func New(ttl time.Duration, maxEntries int) *ResponseCache {
	return &ResponseCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
		now:        time.Now,
	}
}

// Get returns the cached response for key. An entry older than the TTL is
// removed and reported as a miss.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.createdAt) >= c.ttl {
		delete(c.entries, key)
		logging.CacheDebug("expired entry removed key=%s", key)
		return "", false
	}
	return e.response, true
}

// Put stores a response. When the insertion pushes the cache past its
// capacity, the entry with the oldest creation time is evicted. Callers
// gate Put on the low-temperature threshold; the cache itself only
// enforces size and age.
func (c *ResponseCache) Put(key, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{response: response, createdAt: c.now()}

	if len(c.entries) <= c.maxEntries {
		return
	}

	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.createdAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.createdAt
		}
	}
	delete(c.entries, oldestKey)
	logging.CacheDebug("capacity eviction key=%s created_at=%s", oldestKey, oldestAt.Format(time.RFC3339))
}

// Len reports the current entry count.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
