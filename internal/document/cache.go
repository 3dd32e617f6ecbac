package document

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/doctext/internal/eol"
	"github.com/dshills/doctext/internal/text"
)

// Derived holds the structures computed from one snapshot.
type Derived struct {
	Index *text.LineIndex
	Stats eol.Stats
	Kind  eol.Kind
	Marks eol.Marks
}

// Cache maps snapshot IDs to their derived structures. It is safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Derived
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uuid.UUID]*Derived)}
}

// Derived returns the structures for snap, computing them on first use.
func (c *Cache) Derived(snap *Snapshot) *Derived {
	c.mu.RLock()
	d, ok := c.entries[snap.ID()]
	c.mu.RUnlock()
	if ok {
		return d
	}

	content := snap.Text()
	stats := eol.Measure(content)
	computed := &Derived{
		Index: snap.View().Index(),
		Stats: stats,
		Kind:  stats.Dominant(),
		Marks: eol.BuildCRLFToLFMap(content),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.entries[snap.ID()]; ok {
		return d
	}
	c.entries[snap.ID()] = computed
	return computed
}

// Contains reports whether id has a cached entry.
func (c *Cache) Contains(id uuid.UUID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[id]
	return ok
}

// Invalidate drops the entry for id.
func (c *Cache) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
