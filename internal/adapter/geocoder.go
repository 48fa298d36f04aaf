// Package adapter provides the collaborators the core talks to: geocoding, weather,
// preference storage and terminal detection.
package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

// Geocoder resolves free text to place candidates.
type Geocoder interface {
	// Search returns at most limit candidates for text, in provider order.
	Search(ctx context.Context, text string, limit int) ([]m.Candidate, error)
}

// WeatherProvider returns current conditions, always in metric units.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (m.Conditions, error)
}

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache. Identical searches
// that are in flight at the same time share one upstream call.
type CachedGeocoder struct {
	inner   Geocoder
	cache   *lruCache
	group   singleflight.Group
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Search serves repeated queries from the cache.
func (c *CachedGeocoder) Search(ctx context.Context, text string, limit int) ([]m.Candidate, error) {
	key := fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(text)), limit)
	if result, ok := c.cache.get(key); ok {
		c.observe("hit")
		return cloneCandidates(result), nil
	}

	c.observe("miss")

	// The shared call outlives any single caller; each caller stops waiting
	// when its own context is done.
	ch := c.group.DoChan(key, func() (any, error) {
		return c.inner.Search(context.WithoutCancel(ctx), text, limit)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		return nil, res.Err
	}

	result, _ := res.Val.([]m.Candidate)
	// Only cache non-empty results so "not found" can be retried.
	if len(result) > 0 {
		c.cache.put(key, result)
	}

	return cloneCandidates(result), nil
}

func (c *CachedGeocoder) observe(result string) {
	if c.metrics != nil {
		c.metrics.GeocodeCache.WithLabelValues(result).Inc()
	}
}

func cloneCandidates(in []m.Candidate) []m.Candidate {
	if in == nil {
		return nil
	}

	out := make([]m.Candidate, len(in))
	copy(out, in)

	return out
}

// lruCache is a small thread-safe LRU cache of search results.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []m.Candidate
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}

	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]m.Candidate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	c.moveToFront(e)

	return e.value, true
}

func (c *lruCache) put(key string, value []m.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)

		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}

	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil

	if c.head != nil {
		c.head.prev = e
	}

	c.head = e

	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}

	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
