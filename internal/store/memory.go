package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryTable is an ordered in-memory Table. It backs tests and DSN-less
// runs. A mutex guards it because the HTTP server is concurrent even though
// the integrity design assumes serialized operations.
type MemoryTable[V any] struct {
	mu   sync.RWMutex
	recs map[uint64]V
	keys []uint64 // ascending
}

func NewMemoryTable[V any]() *MemoryTable[V] {
	return &MemoryTable[V]{recs: make(map[uint64]V)}
}

func (t *MemoryTable[V]) Get(ctx context.Context, id uint64) (V, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.recs[id]
	return v, ok, nil
}

func (t *MemoryTable[V]) Put(ctx context.Context, id uint64, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.recs[id]; !exists {
		i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= id })
		t.keys = append(t.keys, 0)
		copy(t.keys[i+1:], t.keys[i:])
		t.keys[i] = id
	}
	t.recs[id] = v
	return nil
}

func (t *MemoryTable[V]) Delete(ctx context.Context, id uint64) (V, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.recs[id]
	if !ok {
		var zero V
		return zero, false, nil
	}
	delete(t.recs, id)
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= id })
	t.keys = append(t.keys[:i], t.keys[i+1:]...)
	return v, true, nil
}

func (t *MemoryTable[V]) Iterate(ctx context.Context, fn func(id uint64, v V) bool) error {
	t.mu.RLock()
	keys := make([]uint64, len(t.keys))
	copy(keys, t.keys)
	t.mu.RUnlock()

	for _, id := range keys {
		t.mu.RLock()
		v, ok := t.recs[id]
		t.mu.RUnlock()
		if !ok {
			continue
		}
		if !fn(id, v) {
			return nil
		}
	}
	return nil
}

// MemoryCell is an in-memory Cell starting at zero.
type MemoryCell struct {
	mu sync.Mutex
	v  uint64
}

func NewMemoryCell() *MemoryCell { return &MemoryCell{} }

func (c *MemoryCell) Get(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v, nil
}

func (c *MemoryCell) Set(ctx context.Context, v uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
	return nil
}
