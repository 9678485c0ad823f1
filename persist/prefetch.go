package persist

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Prefetch fetches the bytes of a batch of identifiers ahead of a walk that
// is expected to touch all of them and returns them keyed by Identifier
// (NewPrefetchedBackend serves Gets from the result), fanning out
// concurrently when the Backend doesn't offer its own batch path. It is purely an
// optimization: callers that skip it still get correct results from plain
// Get calls, just without the overlap in I/O latency.
func Prefetch(ctx context.Context, backend Backend, ids []Identifier) (map[Identifier][]byte, error) {
	if batch, ok := backend.(BatchBackend); ok {
		return batch.GetMany(ctx, ids)
	}

	out := make(map[Identifier][]byte, len(ids))
	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			raw, err := backend.Get(id)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = raw
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PrefetchedBackend wraps a Backend with a warm cache of raw bytes already
// pulled by Prefetch, serving Get from the cache when present and falling
// through to the wrapped Backend on a miss. Put always goes straight to the
// wrapped Backend, since prefetching only ever warms reads ahead of a walk.
type PrefetchedBackend struct {
	cache   map[Identifier][]byte
	backend Backend
}

// NewPrefetchedBackend wraps backend with cache, the result of a prior
// Prefetch call against the same backend.
func NewPrefetchedBackend(cache map[Identifier][]byte, backend Backend) *PrefetchedBackend {
	return &PrefetchedBackend{cache: cache, backend: backend}
}

func (p *PrefetchedBackend) Get(id Identifier) ([]byte, error) {
	if raw, ok := p.cache[id]; ok {
		return raw, nil
	}
	return p.backend.Get(id)
}

func (p *PrefetchedBackend) Put(raw []byte) (Identifier, error) {
	return p.backend.Put(raw)
}
