// Package cache provides result caching for product mapping. Values are
// opaque byte slices (serialized envelopes) keyed by content fingerprint;
// eviction and expiry are internal to each implementation.
package cache

import (
	"sync"
	"time"
)

const keyPrefix = "mixpeek_iab_ap_"

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Size    int     `json:"size"`
	MaxSize int     `json:"maxsize"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	HitRate float64 `json:"hit_rate"`
	Enabled bool    `json:"enabled"`
}

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a thread-safe in-memory cache with TTL expiry and a size cap.
type Memory struct {
	mu      sync.RWMutex
	data    map[string]entry
	ttl     time.Duration
	maxSize int
	enabled bool

	hits   int64
	misses int64
	sets   int64
}

// NewMemory creates an in-memory cache. A maxSize of 0 means 10000 entries.
func NewMemory(ttl time.Duration, maxSize int) *Memory {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &Memory{
		data:    make(map[string]entry),
		ttl:     ttl,
		maxSize: maxSize,
		enabled: true,
	}
}

// Get returns the cached value for a key if present and not expired.
func (c *Memory) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		c.misses++
		return nil, false
	}

	e, ok := c.data[keyPrefix+key]
	if !ok || time.Now().After(e.expires) {
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value under a key with the configured TTL.
func (c *Memory) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	if len(c.data) >= c.maxSize {
		c.evictLocked()
	}
	c.data[keyPrefix+key] = entry{value: value, expires: time.Now().Add(c.ttl)}
	c.sets++
}

// evictLocked drops expired entries, or failing that the entry closest to
// expiry. Caller must hold the write lock.
func (c *Memory) evictLocked() {
	now := time.Now()
	for k, e := range c.data {
		if now.After(e.expires) {
			delete(c.data, k)
		}
	}
	if len(c.data) < c.maxSize {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.data {
		if oldestKey == "" || e.expires.Before(oldest) {
			oldestKey = k
			oldest = e.expires
		}
	}
	delete(c.data, oldestKey)
}

// Clear removes all entries.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]entry)
}

// SetEnabled toggles the cache. A disabled cache misses on every get and
// drops every set.
func (c *Memory) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Stats returns cache statistics. HitRate is a percentage.
func (c *Memory) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{
		Size:    len(c.data),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
		Sets:    c.sets,
		Enabled: c.enabled,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// ResetStats zeroes the hit/miss/set counters.
func (c *Memory) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits, c.misses, c.sets = 0, 0, 0
}
