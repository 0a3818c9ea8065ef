package handlers

import (
	"strings"
	"sync"
	"time"
)

// Report computations are referentially transparent, so results can be
// memoized per (range, filters, limit). Entries also carry a coarse time
// bucket in their key, so a cache outliving its TTL can never serve a
// different period's data.
const reportCacheMaxEntries = 500

type reportCacheEntry struct {
	value     any
	expiresAt time.Time
}

type reportCache struct {
	mu      sync.Mutex
	entries map[string]reportCacheEntry
}

func newReportCache() *reportCache {
	return &reportCache{entries: map[string]reportCacheEntry{}}
}

func reportCacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func (c *reportCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *reportCache) set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = reportCacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	if len(c.entries) > reportCacheMaxEntries {
		c.entries = map[string]reportCacheEntry{}
	}
}
