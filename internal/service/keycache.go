// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"container/list"
	"sync"
)

// defaultKeyCacheSize bounds the in-memory conversation-key cache. Evicted
// keys are recoverable from the wrapped records in the stores, so eviction
// only costs one extra unwrap.
const defaultKeyCacheSize = 256

type cacheEntry struct {
	conversationID string
	key            []byte
}

// keyCache is an LRU map of raw conversation keys. Key bytes are zeroed on
// eviction and on Purge.
type keyCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

func newKeyCache(capacity int) *keyCache {
	if capacity <= 0 {
		capacity = defaultKeyCacheSize
	}
	return &keyCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns a copy of the cached key and marks the entry recently used.
func (c *keyCache) Get(conversationID string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[conversationID]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(element)

	cached := element.Value.(*cacheEntry).key
	key := make([]byte, len(cached))
	copy(key, cached)
	return key, true
}

// Add stores key under conversationID, evicting the least recently used
// entry once the cache is full. The cache keeps its own copy of key.
func (c *keyCache) Add(conversationID string, key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	owned := make([]byte, len(key))
	copy(owned, key)

	if element, ok := c.items[conversationID]; ok {
		entry := element.Value.(*cacheEntry)
		zero(entry.key)
		entry.key = owned
		c.order.MoveToFront(element)
		return
	}

	c.items[conversationID] = c.order.PushFront(&cacheEntry{conversationID: conversationID, key: owned})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			entry := oldest.Value.(*cacheEntry)
			zero(entry.key)
			delete(c.items, entry.conversationID)
			c.order.Remove(oldest)
		}
	}
}

// Purge zeroes and drops every cached key.
func (c *keyCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for element := c.order.Front(); element != nil; element = element.Next() {
		zero(element.Value.(*cacheEntry).key)
	}
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// Len reports the number of cached keys.
func (c *keyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
