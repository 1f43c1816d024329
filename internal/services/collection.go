package services

import (
	"context"
	"slices"
	"sync"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

// collection keeps one persisted list in memory and writes it back whole on
// every change. The in-memory list only moves forward once the write succeeds.
type collection[T domain.Identifiable] struct {
	mu    sync.Mutex
	items []T
	key   string
	store ports.CollectionStore
}

func newCollection[T domain.Identifiable](store ports.CollectionStore, key string) *collection[T] {
	return &collection[T]{items: []T{}, key: key, store: store}
}

func (c *collection[T]) load(ctx context.Context, fallback func() []T, validate func(T) error) []T {
	items := LoadCollection(ctx, c.store, c.key, fallback, validate)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	return slices.Clone(items)
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *collection[T]) find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Find(c.items, id)
}

// update computes the next list from the current one and persists it
func (c *collection[T]) update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.items)
	if err != nil {
		return err
	}
	if err := SaveCollection(ctx, c.store, c.key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}
