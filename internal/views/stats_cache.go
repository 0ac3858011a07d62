package views

import (
	"sync"
	"time"
)

type cachedStats struct {
	stats     ChannelStats
	expiresAt time.Time
}

// statsCache keeps recent ChannelStats results so dashboard polling does not
// re-run the aggregate on every request. Entries expire after ttl; a zero ttl
// disables the cache entirely.
type statsCache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]cachedStats
	now     func() time.Time
}

func newStatsCache(ttl time.Duration) *statsCache {
	return &statsCache{
		ttl:     ttl,
		entries: make(map[string]cachedStats),
		now:     time.Now,
	}
}

func (c *statsCache) get(channelID string) (ChannelStats, bool) {
	if c.ttl <= 0 {
		return ChannelStats{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[channelID]
	if !ok {
		return ChannelStats{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, channelID)
		return ChannelStats{}, false
	}
	return entry.stats, true
}

func (c *statsCache) put(channelID string, stats ChannelStats) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	now := c.now()
	// Sweep on write so entries for channels that are never read again do
	// not accumulate.
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.entries[channelID] = cachedStats{stats: stats, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
}
