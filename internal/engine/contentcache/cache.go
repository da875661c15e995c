// Package contentcache implements the in-memory instrumentation cache keyed by file
// and validated by content hash.
package contentcache

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
)

var _ ports.ContentCache = (*Cache)(nil)

// Cache holds the most recent instrumentation result per file.
//
// The cache never hashes files itself. Callers pass the current content hash to Get
// and an entry only counts as a hit when the hash it was stored under matches.
// Stale and missing entries are indistinguishable to the caller.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.FileID]*domain.InstrumentedFile
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[domain.FileID]*domain.InstrumentedFile),
	}
}

// Get returns the stored result for id if its OriginalHash equals currentHash.
func (c *Cache) Get(id domain.FileID, currentHash string) (*domain.InstrumentedFile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file, ok := c.entries[id]
	if !ok || file == nil || file.OriginalHash != currentHash {
		return nil, false
	}
	return file, true
}

// Set stores file for id, overwriting any previous entry.
func (c *Cache) Set(id domain.FileID, file *domain.InstrumentedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = file
}

// Remove deletes the entry for id. Unknown ids are ignored.
func (c *Cache) Remove(id domain.FileID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
}

// Prune deletes every entry whose id is not in valid.
// It returns the removed ids in path order.
func (c *Cache) Prune(valid map[domain.FileID]struct{}) []domain.FileID {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Snapshot keys first so deletion never interferes with the walk.
	keys := make([]domain.FileID, 0, len(c.entries))
	for id := range c.entries {
		keys = append(keys, id)
	}

	var removed []domain.FileID
	for _, id := range keys {
		if _, keep := valid[id]; keep {
			continue
		}
		delete(c.entries, id)
		removed = append(removed, id)
	}

	sortIDs(removed)
	return removed
}

// Clear deletes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// All iterates over a snapshot of the entries in path order.
// Mutating the cache while iterating does not affect the yielded entries.
func (c *Cache) All() iter.Seq2[domain.FileID, *domain.InstrumentedFile] {
	c.mu.RLock()
	ids := make([]domain.FileID, 0, len(c.entries))
	files := make(map[domain.FileID]*domain.InstrumentedFile, len(c.entries))
	for id, f := range c.entries {
		ids = append(ids, id)
		files[id] = f
	}
	c.mu.RUnlock()

	sortIDs(ids)

	return func(yield func(domain.FileID, *domain.InstrumentedFile) bool) {
		for _, id := range ids {
			if !yield(id, files[id]) {
				return
			}
		}
	}
}

func sortIDs(ids []domain.FileID) {
	slices.SortFunc(ids, func(a, b domain.FileID) int {
		return strings.Compare(a.String(), b.String())
	})
}
