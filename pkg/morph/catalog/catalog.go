package catalog

import (
	"fmt"
	"sync"
)

// Catalog holds parameter descriptors in declaration order.
type Catalog struct {
	byID  map[ID]Descriptor
	order []ID
	mu    sync.RWMutex
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID:  make(map[ID]Descriptor),
		order: make([]ID, 0, 32),
	}
}

// Add registers descriptors. Duplicate ids are rejected; the table is static
// so a duplicate is always a programming error in the device definition.
func (c *Catalog) Add(descs ...Descriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range descs {
		if _, exists := c.byID[d.ID]; exists {
			return fmt.Errorf("duplicate parameter id %d (%s)", d.ID, d.Name)
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return nil
}

// Get retrieves a descriptor by id.
func (c *Catalog) Get(id ID) (Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.byID[id]
	return d, ok
}

// Count returns the number of parameters.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// All returns all descriptors in declaration order.
func (c *Catalog) All() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Descriptor, len(c.order))
	for i, id := range c.order {
		result[i] = c.byID[id]
	}
	return result
}

// IDs returns all parameter ids in declaration order.
func (c *Catalog) IDs() []ID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]ID, len(c.order))
	copy(result, c.order)
	return result
}
