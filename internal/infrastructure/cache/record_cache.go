package cache

import (
	"sync"
	"time"

	"github.com/alt-project/phonectl/internal/domain"
)

// cacheEntry represents a cached user record with its expiry.
type cacheEntry struct {
	record    domain.UserRecord
	expiresAt time.Time
}

// RecordCache provides thread-safe in-memory caching of shaped user
// records keyed by normalized phone number, with TTL.
// Implements domain.RecordCache.
type RecordCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewRecordCache creates a new record cache with the specified TTL.
func NewRecordCache(ttl time.Duration) *RecordCache {
	c := &RecordCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a cached record by phone number.
func (c *RecordCache) Get(phone string) (*domain.UserRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[phone]
	if !found || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return &entry.record, true
}

// Set stores a shaped record in the cache.
func (c *RecordCache) Set(phone string, record domain.UserRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[phone] = &cacheEntry{
		record:    record,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// cleanup removes expired entries.
func (c *RecordCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for phone, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, phone)
		}
	}
}

// cleanupLoop runs periodic cleanup of expired entries.
func (c *RecordCache) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}
