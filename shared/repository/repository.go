package repository

import (
	"context"
	"errors"
	"sync"

	"adbook/internal/record"

	"github.com/rs/zerolog/log"
)

// ErrNotFound reports that a collection holds no entity with the requested id.
var ErrNotFound = errors.New("entity not found")

// Entity is anything a Collection can hold. Ids are unique within one
// collection.
type Entity interface {
	GetID() string
}

// Collection is an in-memory slice of entities mirrored to a record.Store.
// Reads are served from memory; every mutation re-serializes the whole
// collection to the store and is rolled back when the store write fails, so
// a successful mutation is immediately visible to subsequent reads.
type Collection[T Entity] struct {
	key   string
	store record.Store

	mu     sync.RWMutex
	loaded bool
	items  []T
	index  map[string]int
}

func NewCollection[T Entity](key string, store record.Store) *Collection[T] {
	return &Collection[T]{
		key:   key,
		store: store,
		index: map[string]int{},
	}
}

// load pulls the serialized collection from the store on first access.
// A missing key is an empty collection. Callers must hold the write lock.
func (c *Collection[T]) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	var items []T
	err := c.store.Get(ctx, c.key, &items)
	if err != nil && !errors.Is(err, record.ErrNotFound) {
		log.Error().Err(err).Str("key", c.key).Msg("[Collection] Failed loading record set")

		return err
	}

	c.items = items
	c.index = make(map[string]int, len(items))
	for i, item := range items {
		c.index[item.GetID()] = i
	}
	c.loaded = true

	return nil
}

// All returns a copy of the collection in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return nil, err
	}

	items := make([]T, len(c.items))
	copy(items, c.items)

	return items, nil
}

// ResolveByID returns the entity with the given id, or ErrNotFound.
func (c *Collection[T]) ResolveByID(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	if err := c.load(ctx); err != nil {
		return zero, err
	}

	i, ok := c.index[id]
	if !ok {
		return zero, ErrNotFound
	}

	return c.items[i], nil
}

// ExistsByID reports whether the collection holds an entity with the id.
func (c *Collection[T]) ExistsByID(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return false, err
	}

	_, ok := c.index[id]

	return ok, nil
}

// Upsert inserts the entity or replaces the one sharing its id, then mirrors
// the full collection to the store. The in-memory change is rolled back when
// the store write fails.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return err
	}

	id := item.GetID()

	if i, ok := c.index[id]; ok {
		prev := c.items[i]
		c.items[i] = item

		if err := c.store.Set(ctx, c.key, c.items); err != nil {
			c.items[i] = prev
			log.Error().Err(err).Str("key", c.key).Str("id", id).Msg("[Collection] Store write failed, update rolled back")

			return err
		}

		return nil
	}

	c.items = append(c.items, item)

	if err := c.store.Set(ctx, c.key, c.items); err != nil {
		c.items = c.items[:len(c.items)-1]
		log.Error().Err(err).Str("key", c.key).Str("id", id).Msg("[Collection] Store write failed, insert rolled back")

		return err
	}

	c.index[id] = len(c.items) - 1

	return nil
}

// Delete removes the entity with the given id and mirrors the collection to
// the store. Returns ErrNotFound when the id is absent; the in-memory change
// is rolled back when the store write fails.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return err
	}

	i, ok := c.index[id]
	if !ok {
		return ErrNotFound
	}

	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)

	if err := c.store.Set(ctx, c.key, c.items); err != nil {
		c.items = append(c.items[:i], append([]T{removed}, c.items[i:]...)...)
		log.Error().Err(err).Str("key", c.key).Str("id", id).Msg("[Collection] Store write failed, delete rolled back")

		return err
	}

	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].GetID()] = j
	}

	return nil
}
