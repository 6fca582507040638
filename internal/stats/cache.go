package stats

import (
	"sync"
	"time"
)

// DefaultTTL is how long fetched statistics are served without refetching.
const DefaultTTL = 5 * time.Minute

// Cache is a single slot holding the last successful fetch.
// The slot is either empty or a complete normalized sequence.
type Cache struct {
	mu        sync.RWMutex
	entries   []Statistic // nil when empty
	fetchedAt time.Time
	ttl       time.Duration
}

// NewCache creates an empty cache. A non-positive ttl selects DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl}
}

// TTL returns the freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Fresh returns the cached entries if they were stored less than TTL before now.
func (c *Cache) Fresh(now time.Time) ([]Statistic, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entries == nil || now.Sub(c.fetchedAt) >= c.ttl {
		return nil, time.Time{}, false
	}
	return cloneStatistics(c.entries), c.fetchedAt, true
}

// Latest returns the cached entries regardless of age.
func (c *Cache) Latest() ([]Statistic, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entries == nil {
		return nil, time.Time{}, false
	}
	return cloneStatistics(c.entries), c.fetchedAt, true
}

// Store replaces the slot.
func (c *Cache) Store(entries []Statistic, fetchedAt time.Time) {
	stored := cloneStatistics(entries)
	if stored == nil {
		stored = []Statistic{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = stored
	c.fetchedAt = fetchedAt
}

// Clear empties the slot so the next read refetches.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.fetchedAt = time.Time{}
}
