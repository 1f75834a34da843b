package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Defaults match the HTTP host's out-of-the-box settings.
const (
	DefaultTTL      = 5 * time.Minute
	DefaultCapacity = 200
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// ResultCache is a TTL cache with a fixed capacity that evicts the oldest inserted entry
// when full. Values are stored encoded so every read hands back an independent copy.
// A non-positive TTL or capacity turns the cache into a no-op.
type ResultCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]entry
	order    []string
	now      func() time.Time
}

// New creates a cache.
func New(ttl time.Duration, capacity int) *ResultCache {
	return &ResultCache{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]entry),
		now:      time.Now,
	}
}

// SetClock replaces the time source; nil restores time.Now.
func (c *ResultCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	c.now = now
}

// Enabled reports whether the cache stores anything at all.
func (c *ResultCache) Enabled() bool {
	return c.ttl > 0 && c.capacity > 0
}

// Key derives a stable key from the JSON encoding of v.
func Key(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding cache key: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Get decodes the cached value for key into dst. Expired entries are dropped and reported
// as misses.
func (c *ResultCache) Get(key string, dst any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !c.now().Before(e.expiresAt) {
		c.removeLocked(key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.payload, dst); err != nil {
		return false, fmt.Errorf("decoding cached value: %w", err)
	}
	return true, nil
}

// Set stores v under key, evicting the oldest entries while the cache is full. An
// overwritten key keeps its original insertion slot.
func (c *ResultCache) Set(key string, v any) error {
	if !c.Enabled() {
		return nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cached value: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry{payload: payload, expiresAt: c.now().Add(c.ttl)}
		return nil
	}
	for len(c.order) >= c.capacity {
		c.removeLocked(c.order[0])
	}
	c.entries[key] = entry{payload: payload, expiresAt: c.now().Add(c.ttl)}
	c.order = append(c.order, key)
	return nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, key := range append([]string(nil), c.order...) {
		if !now.Before(c.entries[key].expiresAt) {
			c.removeLocked(key)
			removed++
		}
	}
	return removed
}

// Len is the number of stored entries, expired ones included until swept.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops everything.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.order = nil
}

func (c *ResultCache) removeLocked(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
