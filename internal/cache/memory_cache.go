package cache

import (
	"aimaturity/internal/model"
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	key     string
	result  model.AssessmentResult
	expires time.Time
}

// memoryResultCache is a bounded in-process ResultCache with LRU eviction.
// It backs the CLI and tests where no Redis is available.
type memoryResultCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

// NewMemoryResultCache creates an in-memory result cache holding at most
// maxSize entries. A ttl of zero means entries never expire.
func NewMemoryResultCache(maxSize int, ttl time.Duration) ResultCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &memoryResultCache{
		maxSize: maxSize,
		ttl:     ttl,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

func (c *memoryResultCache) Get(ctx context.Context, key string) (*model.AssessmentResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	entry := el.Value.(*memoryEntry)
	if c.ttl > 0 && time.Now().After(entry.expires) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, nil
	}
	c.order.MoveToFront(el)
	result := entry.result
	return &result, nil
}

func (c *memoryResultCache) Set(ctx context.Context, key string, result *model.AssessmentResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.result = *result
		entry.expires = time.Now().Add(c.ttl)
		c.order.MoveToFront(el)
		return nil
	}

	el := c.order.PushFront(&memoryEntry{
		key:     key,
		result:  *result,
		expires: time.Now().Add(c.ttl),
	})
	c.entries[key] = el

	for c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*memoryEntry).key)
	}
	return nil
}
