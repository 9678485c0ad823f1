package persist

import (
	"context"
	"sync"
)

// MemoryBackend is an in-memory Backend, primarily for tests and for
// collections that only ever need to round-trip within one process. It
// mirrors the shape of a ChunkStore test double: a mutex-guarded map keyed
// by content Identifier. It also implements BatchBackend, mirroring a
// batch-capable ChunkStore closely enough to let Prefetch exercise its
// single-round-trip path instead of always falling back to concurrent
// single Gets.
type MemoryBackend struct {
	mu         sync.Mutex
	chunk      map[Identifier][]byte
	batchCalls int
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{chunk: make(map[Identifier][]byte)}
}

func (m *MemoryBackend) Get(id Identifier) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.chunk[id]
	if !ok {
		return nil, wrapErr("get", id, ErrNotFound)
	}
	// return a copy so callers can't mutate our stored bytes in place.
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *MemoryBackend) Put(raw []byte) (Identifier, error) {
	id := IdentifierOf(raw)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.chunk[id]; !exists {
		stored := make([]byte, len(raw))
		copy(stored, raw)
		m.chunk[id] = stored
	}
	return id, nil
}

// Len reports how many distinct chunks are stored, mainly useful in tests
// that assert deduplication happened.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chunk)
}

// GetMany fetches every requested id in a single lock acquisition, giving
// Prefetch a real batch path to prefer over its concurrent-Get fallback.
func (m *MemoryBackend) GetMany(_ context.Context, ids []Identifier) (map[Identifier][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchCalls++
	out := make(map[Identifier][]byte, len(ids))
	for _, id := range ids {
		raw, ok := m.chunk[id]
		if !ok {
			return nil, wrapErr("getMany", id, ErrNotFound)
		}
		dup := make([]byte, len(raw))
		copy(dup, raw)
		out[id] = dup
	}
	return out, nil
}

// BatchCalls reports how many times GetMany has been invoked, used by tests
// to confirm Prefetch actually took the batch path rather than falling back
// to per-id Gets.
func (m *MemoryBackend) BatchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batchCalls
}
