// Package state holds the building blocks of the async slice pattern: an
// ordered unique-by-id collection, a normalized failure value, and the
// loading/error status every slice carries.
package state

import "encoding/json"

// Entity is anything addressable by a stable id.
type Entity interface {
	EntityID() string
}

// Collection is an ordered set of entities, unique by id. An upsert removes
// any existing entry with the same id and appends the new one, so edited
// entities move to the end of the order. That matches how the collection is
// consumed: list operations replace it wholesale, mutations touch one entry.
type Collection[T Entity] struct {
	items []T
}

// NewCollection builds a collection from items, keeping the first entry for
// any duplicated id.
func NewCollection[T Entity](items []T) Collection[T] {
	var c Collection[T]
	c.ReplaceAll(items)
	return c
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns a copy of the entities in order.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ByID returns the entity with the given id.
func (c *Collection[T]) ByID(id string) (T, bool) {
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ReplaceAll swaps the whole collection for items, dropping any entry whose
// id was already seen earlier in the list.
func (c *Collection[T]) ReplaceAll(items []T) {
	seen := make(map[string]struct{}, len(items))
	next := make([]T, 0, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		next = append(next, it)
	}
	c.items = next
}

// Append adds item to the end. If the id already exists the call degrades to
// an upsert, preserving uniqueness.
func (c *Collection[T]) Append(item T) {
	c.Upsert(item)
}

// Upsert removes any entry sharing item's id and appends item.
func (c *Collection[T]) Upsert(item T) {
	c.Remove(item.EntityID())
	c.items = append(c.items, item)
}

// Remove deletes the entry with the given id, if present.
func (c *Collection[T]) Remove(id string) {
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Reset empties the collection.
func (c *Collection[T]) Reset() { c.items = nil }

// MarshalJSON encodes the collection as a plain JSON array.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON decodes a JSON array, deduplicating by id.
func (c *Collection[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	c.ReplaceAll(items)
	return nil
}
