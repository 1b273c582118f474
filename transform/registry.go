package transform

import "sync"

// Registry manages the available transform core factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register registers a core factory under the given name
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}

// Get retrieves a core factory by name
func Get(name string) (Factory, error) {
	return defaultRegistry.Get(name)
}

// List returns the names of all registered cores
func List() []string {
	return defaultRegistry.List()
}

// Register registers a core factory under the given name
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
}

// Get retrieves a core factory by name
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, ErrCoreNotFound
	}
	return factory, nil
}

// List returns the names of all registered cores
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
