package search

import (
	"container/list"
	"sync"
	"time"
)

type cacheEntry struct {
	fingerprint string
	response    SearchResponse
	createdAt   time.Time
	expiresAt   time.Time
}

// Cache maps request fingerprints to prior aggregated responses. Entries
// expire after their TTL and the least-recently-used entry is evicted when
// the capacity bound would be exceeded. One mutex guards both the map and
// the recency list.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	recency  *list.List // front = most recently used
	now      func() time.Time
}

func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		recency:  list.New(),
		now:      time.Now,
	}
}

// Get returns the cached response for a fingerprint. Expired entries are
// treated as absent and removed.
func (c *Cache) Get(fingerprint string) (SearchResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[fingerprint]
	if !ok {
		return SearchResponse{}, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.recency.Remove(elem)
		delete(c.entries, fingerprint)
		return SearchResponse{}, false
	}
	c.recency.MoveToFront(elem)
	return copyResponse(entry.response), true
}

// Put stores a response under a fingerprint. An existing entry for the same
// fingerprint is replaced; last write wins.
func (c *Cache) Put(fingerprint string, response SearchResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[fingerprint]; ok {
		c.recency.Remove(elem)
		delete(c.entries, fingerprint)
	}
	for len(c.entries) >= c.capacity {
		oldest := c.recency.Back()
		if oldest == nil {
			break
		}
		c.recency.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).fingerprint)
	}

	now := c.now()
	entry := &cacheEntry{
		fingerprint: fingerprint,
		response:    copyResponse(response),
		createdAt:   now,
		expiresAt:   now.Add(ttl),
	}
	c.entries[fingerprint] = c.recency.PushFront(entry)
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// copyResponse clones a response so callers never share the cached slice.
func copyResponse(r SearchResponse) SearchResponse {
	out := r
	out.Results = append([]SearchResult(nil), r.Results...)
	return out
}
