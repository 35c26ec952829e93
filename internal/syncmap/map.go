package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates a new instance of Map
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Lookup retrieves an item by key and reports whether it was present
func (r *Map[T]) Lookup(key string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[T]) Set(key string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Delete removes an item by key
func (r *Map[T]) Delete(key string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}
