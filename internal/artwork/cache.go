package artwork

import (
	"strings"
	"sync"
	"time"
)

// Cache stores provider answers with a TTL. A stored zero Ref is a
// legitimate "provider has no artwork for this track" and is just as valid
// as a hit; transport errors are never stored. Expiry is lazy: entries are
// checked and evicted on read, there is no background sweep.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	ref       Ref
	expiresAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey qualifies the case-folded track identity with the provider name,
// so two providers' answers for the same track never collide.
func cacheKey(provider string, artist string, subject string) string {
	return provider + ":" + strings.ToLower(artist) + "|" + strings.ToLower(subject)
}

func (c *Cache) Get(key string) (Ref, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Ref{}, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return Ref{}, false
	}
	return entry.ref, true
}

func (c *Cache) Set(key string, ref Ref) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{ref: ref, expiresAt: c.now().Add(c.ttl)}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
