package viewer

import (
	"context"
	"sync"
)

// Deferred resolves a named unit on first demand and caches the outcome.
// Until resolution completes, Value returns the placeholder.
type Deferred[T any] struct {
	name        string
	placeholder T
	load        func(ctx context.Context) (T, error)

	mu       sync.Mutex
	resolved bool
	value    T
	err      error
}

// NewDeferred wraps a load function. The function runs at most once.
func NewDeferred[T any](name string, placeholder T, load func(ctx context.Context) (T, error)) *Deferred[T] {
	return &Deferred[T]{name: name, placeholder: placeholder, load: load}
}

// Name returns the unit's name.
func (d *Deferred[T]) Name() string { return d.name }

// Get resolves the unit, running the load function on the first call. The
// outcome, success or failure, is cached for subsequent calls.
func (d *Deferred[T]) Get(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved {
		return d.value, d.err
	}
	d.value, d.err = d.load(ctx)
	d.resolved = true
	return d.value, d.err
}

// Value returns the resolved value, or the placeholder while pending or after
// a failed load.
func (d *Deferred[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved && d.err == nil {
		return d.value
	}
	return d.placeholder
}

// Resolved reports whether the load function has run.
func (d *Deferred[T]) Resolved() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resolved
}
