// Package snapshot provides immutable named parameter snapshots: the
// "source" and "destination" configurations a morph runs between.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/analogue/morph/pkg/morph/catalog"
)

// Snapshot is an immutable mapping from parameter id to a 7-bit value.
type Snapshot struct {
	name   string
	values map[catalog.ID]byte
}

// New creates a snapshot from a value map. The map is copied and values above
// 127 are clamped.
func New(name string, values map[catalog.ID]byte) *Snapshot {
	copied := make(map[catalog.ID]byte, len(values))
	for id, v := range values {
		if v > 127 {
			v = 127
		}
		copied[id] = v
	}
	return &Snapshot{name: name, values: copied}
}

// Name returns the snapshot's name.
func (s *Snapshot) Name() string {
	return s.name
}

// Value returns the value stored for id.
func (s *Snapshot) Value(id catalog.ID) (byte, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Len returns the number of parameters covered.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// IDs returns the covered parameter ids in ascending order.
func (s *Snapshot) IDs() []catalog.ID {
	ids := make([]catalog.ID, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Values returns a copy of the underlying value map.
func (s *Snapshot) Values() map[catalog.ID]byte {
	copied := make(map[catalog.ID]byte, len(s.values))
	for id, v := range s.values {
		copied[id] = v
	}
	return copied
}

// SameIDs reports whether two snapshots cover the identical parameter set.
func SameIDs(a, b *Snapshot) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for id := range a.values {
		if _, ok := b.values[id]; !ok {
			return false
		}
	}
	return true
}

// Validate checks that every parameter the snapshot covers exists in the
// catalog, so a stale preset is caught before a session is built.
func (s *Snapshot) Validate(c *catalog.Catalog) error {
	for _, id := range s.IDs() {
		if _, ok := c.Get(id); !ok {
			return fmt.Errorf("snapshot %q: unknown parameter id %d", s.name, id)
		}
	}
	return nil
}
