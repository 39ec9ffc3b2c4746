package engine

import (
	"fmt"

	"github.com/analogue/morph/pkg/morph/catalog"
	"github.com/analogue/morph/pkg/morph/snapshot"
)

// ConfigError is the one fatal error the engine raises: the source and
// destination snapshots do not cover the identical set of parameter ids, so
// no change set can be built. Everything else degrades gracefully.
type ConfigError struct {
	Source      string
	Destination string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snapshots %q and %q cover different parameter sets",
		e.Source, e.Destination)
}

// Record is one parameter's slice of a change set.
type Record struct {
	ID     catalog.ID
	Kind   catalog.Kind
	Source byte
	Dest   byte
}

// Changed reports whether the record has any work to do.
func (r Record) Changed() bool {
	return r.Source != r.Dest
}

// ChangeSet is the filtered, ordered list of parameters eligible for
// interpolation. Both slices follow catalog declaration order.
type ChangeSet struct {
	// Continuous holds the continuous records whose values actually differ;
	// equal records are dropped from the per-tick walk and counted in
	// Unchanged instead.
	Continuous []Record

	// Discrete holds the included discrete records, left unresolved: the
	// strategy is evaluated at read time because it can depend on position.
	Discrete []Record

	// Total counts every parameter both snapshots cover.
	Total int

	// Unchanged counts included records that were dropped because source and
	// destination agree.
	Unchanged int
}

// Build produces the change set for a snapshot pair under a configuration.
func Build(source, destination *snapshot.Snapshot, cfg Config, cat *catalog.Catalog) (*ChangeSet, error) {
	if !snapshot.SameIDs(source, destination) {
		return nil, &ConfigError{Source: source.Name(), Destination: destination.Name()}
	}

	set := &ChangeSet{}
	for _, d := range cat.All() {
		src, ok := source.Value(d.ID)
		if !ok {
			// Catalog entries absent from the patch format are skipped; the
			// id-set precondition only binds the two snapshots to each other.
			continue
		}
		dst, _ := destination.Value(d.ID)
		set.Total++

		if !cfg.includes(d) {
			continue
		}

		r := Record{ID: d.ID, Kind: d.Kind, Source: src, Dest: dst}
		if !r.Changed() {
			set.Unchanged++
			continue
		}

		switch d.Kind {
		case catalog.Continuous:
			set.Continuous = append(set.Continuous, r)
		case catalog.Discrete:
			if cfg.Strategy != Ignore {
				set.Discrete = append(set.Discrete, r)
			}
		}
	}
	return set, nil
}
