// Package memory implements the repositories in process memory. It backs
// local development and tests; data does not survive a restart.
package memory

import (
	"sync"

	"github.com/google/uuid"
)

// collection keeps records in insertion order.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{rows: make(map[string]T)}
}

func newID() string { return uuid.NewString() }

// insert stores v under id unless conflict reports a clash with an existing row.
func (c *collection[T]) insert(id string, v T, conflict func(existing T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conflict != nil {
		for _, existing := range c.rows {
			if conflict(existing) {
				return false
			}
		}
	}
	c.rows[id] = v
	c.order = append(c.order, id)
	return true
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.rows[id])
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.rows[id]
	return v, ok
}

// first returns the first row in insertion order matching pred.
func (c *collection[T]) first(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if v := c.rows[id]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// replace overwrites the row at id. It reports found=false when id is absent
// and ok=false when conflict matches another row.
func (c *collection[T]) replace(id string, v T, conflict func(existing T) bool) (found, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rows[id]; !exists {
		return false, false
	}
	if conflict != nil {
		for otherID, existing := range c.rows {
			if otherID != id && conflict(existing) {
				return true, false
			}
		}
	}
	c.rows[id] = v
	return true, true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[id]; !ok {
		return false
	}
	delete(c.rows, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}
