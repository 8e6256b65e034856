// Package cache decouples the rotation's polling cadence from the remote
// feed's latency and availability. Each sport owns one entry holding the last
// successful event list and its fetch timestamp; a failed fetch never
// overwrites a prior success, so staleness accumulates until a retry lands.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"scoreboardd/internal/events"
	"scoreboardd/internal/logging"
	"scoreboardd/internal/metrics"
)

// FetchFunc retrieves the current event list for a sport. Implementations
// must be idempotent; the cache owns all failure handling.
type FetchFunc func(ctx context.Context, sport string) ([]events.Event, error)

type entry struct {
	events    []events.Event
	fetchedAt time.Time
}

type Cache struct {
	fetch FetchFunc
	ttl   time.Duration
	log   *logging.Logger
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
}

// New builds a cache over fetch with the given freshness window.
func New(fetch FetchFunc, ttl time.Duration, log *logging.Logger) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{
		fetch:   fetch,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Get returns the current event list for sport. A fresh entry is served with
// zero I/O unless force is set. A stale or missing entry triggers at most one
// outbound fetch; on failure the prior list is returned unchanged, or an
// empty list when no success has ever landed. Get never returns an error.
// Callers must not mutate the returned slice.
func (c *Cache) Get(ctx context.Context, sport string, force bool) []events.Event {
	c.mu.RLock()
	e := c.entries[sport]
	if e != nil && !force && c.now().Sub(e.fetchedAt) <= c.ttl {
		evts := e.events
		c.mu.RUnlock()
		metrics.CacheHits.WithLabelValues(sport).Inc()
		return evts
	}
	c.mu.RUnlock()

	// Concurrent misses for the same sport collapse into one fetch; entries
	// for different sports never contend past the brief map access above.
	v, err, _ := c.group.Do(sport, func() (any, error) {
		issuedAt := c.now()
		evts, err := c.fetch(ctx, sport)
		if err != nil {
			metrics.FetchTotal.WithLabelValues(sport, "error").Inc()
			return nil, err
		}
		metrics.FetchTotal.WithLabelValues(sport, "success").Inc()
		c.store(sport, evts, issuedAt)
		return evts, nil
	})
	if err != nil {
		c.mu.RLock()
		e := c.entries[sport]
		c.mu.RUnlock()
		if e != nil {
			metrics.CacheStaleServes.WithLabelValues(sport).Inc()
			c.log.Warn("feed fetch failed, serving stale events",
				"sport", sport, "age", c.now().Sub(e.fetchedAt).String(), "err", err)
			return e.events
		}
		c.log.Warn("feed fetch failed with no cached events", "sport", sport, "err", err)
		return []events.Event{}
	}
	return v.([]events.Event)
}

// store applies a successful fetch. The compare against the write's own issue
// time keeps a slow stale success from clobbering a newer one that was issued
// later but completed earlier.
func (c *Cache) store(sport string, evts []events.Event, issuedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.entries[sport]; ok && prev.fetchedAt.After(issuedAt) {
		return
	}
	c.entries[sport] = &entry{events: evts, fetchedAt: issuedAt}
	metrics.LastSuccess.WithLabelValues(sport).Set(float64(issuedAt.Unix()))
}

// Age reports how old sport's cached entry is, and whether one exists.
func (c *Cache) Age(sport string) (time.Duration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[sport]
	if !ok {
		return 0, false
	}
	return c.now().Sub(e.fetchedAt), true
}
