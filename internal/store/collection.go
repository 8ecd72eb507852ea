package store

import "github.com/google/uuid"

// collection is an id-keyed map that also remembers insertion order so listings
// and snapshot exports are deterministic.
type collection[T any] struct {
	order []uuid.UUID
	items map[uuid.UUID]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[uuid.UUID]T)}
}

func (c *collection[T]) add(id uuid.UUID, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) get(id uuid.UUID) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// set replaces an existing element in place; insertion order is unchanged.
func (c *collection[T]) set(id uuid.UUID, v T) {
	c.items[id] = v
}

func (c *collection[T]) remove(id uuid.UUID) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) removeAll(ids map[uuid.UUID]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := c.order[:0]
	for _, id := range c.order {
		if _, hit := ids[id]; hit {
			delete(c.items, id)
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) len() int { return len(c.items) }
