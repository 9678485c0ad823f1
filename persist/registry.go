package persist

import (
	"sync"

	"github.com/pkg/errors"
)

// Registry holds the process's named backends, built lazily from Config on
// first use and shared thereafter. It generalizes the "one shared store per
// process" pattern to multiple independently named stores, guarded by a
// single RWMutex since registration is rare and lookup is frequent.
type Registry struct {
	mu       sync.RWMutex
	configs  map[string]Config
	backends map[string]Backend
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		configs:  make(map[string]Config),
		backends: make(map[string]Backend),
	}
}

// Register associates name with cfg. The backend itself is not opened until
// first Lookup.
func (r *Registry) Register(name string, cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[name] = cfg
}

// Lookup returns the named Backend, opening it from its registered Config
// on first call.
func (r *Registry) Lookup(name string) (Backend, error) {
	r.mu.RLock()
	backend, ok := r.backends[name]
	r.mu.RUnlock()
	if ok {
		return backend, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if backend, ok := r.backends[name]; ok {
		return backend, nil
	}
	cfg, ok := r.configs[name]
	if !ok {
		return nil, errors.Errorf("persist: no backend registered under %q", name)
	}
	backend, err := cfg.Open()
	if err != nil {
		return nil, err
	}
	r.backends[name] = backend
	return backend, nil
}
