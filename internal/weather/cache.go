// Package weather holds the process-wide weather summary: a guarded cache
// refreshed on an interval, and the HTTP client that feeds it.
//
// The cache is deliberately decoupled from the render loop. The loop asks
// whether a refresh is due and, if it wins the right to fetch, runs the
// network call off the tick path; reads never block and never observe a
// partially written value.
package weather

import (
	"sync"
	"time"
)

// Placeholder strings shown while no summary has ever been fetched.
const (
	// PlaceholderLoading is shown before the first fetch attempt completes.
	PlaceholderLoading = "Loading weather..."

	// PlaceholderUnavailable is shown once at least one fetch has completed
	// but none has ever succeeded.
	PlaceholderUnavailable = "Weather: unavailable"
)

// Cache holds the last fetched one-line weather summary.
//
// State machine: Idle <-> Fetching. BeginRefresh moves Idle to Fetching when
// the cooldown has elapsed; CompleteRefresh moves back to Idle. A failed
// fetch keeps the previous text but still resets the cooldown so a broken
// endpoint is not hammered every tick.
type Cache struct {
	mu        sync.Mutex
	text      string
	fetchedAt time.Time
	fetching  bool
	attempted bool
	interval  time.Duration
}

// NewCache returns an empty cache with the given refresh interval. The zero
// fetchedAt makes the first BeginRefresh fire immediately.
func NewCache(interval time.Duration) *Cache {
	return &Cache{interval: interval}
}

// CurrentText returns the cached summary without blocking, regardless of
// fetch state. Before anything has been fetched it returns a placeholder.
func (c *Cache) CurrentText() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.text != "" {
		return c.text
	}
	if !c.attempted {
		return PlaceholderLoading
	}
	return PlaceholderUnavailable
}

// FetchedAt returns when the last fetch attempt completed.
func (c *Cache) FetchedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

// BeginRefresh reports whether the caller should start a fetch now, and if
// so marks one in flight. At most one fetch is in flight at a time: a second
// trigger while fetching (including one arriving after the interval elapses
// mid-fetch) returns false rather than starting an overlapping call.
func (c *Cache) BeginRefresh(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetching {
		return false
	}
	if now.Sub(c.fetchedAt) < c.interval {
		return false
	}
	c.fetching = true
	return true
}

// CompleteRefresh records the outcome of a fetch started via BeginRefresh.
// On success the text is replaced wholly; on failure it is left untouched.
// The cooldown resets either way.
func (c *Cache) CompleteRefresh(text string, err error, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.text = text
	}
	c.fetchedAt = now
	c.fetching = false
	c.attempted = true
}
