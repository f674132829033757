package pastebins

import (
	"iter"
	"sync"
)

// Registry maps service IDs to the backends available in this run.
//
// It is populated once at startup, but the map is guarded so later
// registrations or removals stay safe alongside concurrent lookups.
type Registry struct {
	mu       sync.RWMutex
	services map[string]PasteBin // ID -> backend
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]PasteBin),
	}
}

// Register stores p under p.Meta().ID, replacing any previous entry.
// The instance is not validated.
func (r *Registry) Register(p PasteBin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services[p.Meta().ID] = p
}

// Deregister removes the backend registered under id, if any
func (r *Registry) Deregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.services, id)
}

// Get retrieves a backend by exact ID
func (r *Registry) Get(id string) (PasteBin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.services[id]
	return p, ok
}

// All returns the registered backends in unspecified order.
// Each iteration takes a fresh snapshot, so ranging twice is fine and
// yield may call back into the registry.
func (r *Registry) All() iter.Seq[PasteBin] {
	return func(yield func(PasteBin) bool) {
		r.mu.RLock()
		snapshot := make([]PasteBin, 0, len(r.services))
		for _, p := range r.services {
			snapshot = append(snapshot, p)
		}
		r.mu.RUnlock()

		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of registered backends
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.services)
}
