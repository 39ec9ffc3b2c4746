package engine

import (
	"errors"
	"testing"

	"github.com/analogue/morph/pkg/morph/catalog"
	"github.com/analogue/morph/pkg/morph/snapshot"
)

// deviceSnapshot builds a snapshot covering the full device catalog at a
// constant value, with per-parameter overrides.
func deviceSnapshot(name string, base byte, overrides map[catalog.ID]byte) *snapshot.Snapshot {
	values := make(map[catalog.ID]byte)
	for _, id := range catalog.Device().IDs() {
		values[id] = base
	}
	for id, v := range overrides {
		values[id] = v
	}
	return snapshot.New(name, values)
}

func TestBuildMismatchedSnapshots(t *testing.T) {
	cat := catalog.Device()
	src := deviceSnapshot("a", 64, nil)
	dst := snapshot.New("b", map[catalog.ID]byte{74: 10})

	_, err := Build(src, dst, DefaultConfig(), cat)
	if err == nil {
		t.Fatal("expected error for mismatched parameter sets")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestBuildAllUnchanged(t *testing.T) {
	cat := catalog.Device()
	src := deviceSnapshot("a", 64, nil)
	dst := deviceSnapshot("b", 64, nil)

	set, err := Build(src, dst, DefaultConfig(), cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Continuous) != 0 {
		t.Errorf("expected no continuous records, got %d", len(set.Continuous))
	}
	if set.Total != 29 {
		t.Errorf("expected 29 total parameters, got %d", set.Total)
	}
	// All 26 continuous parameters are included but unchanged; the discrete
	// ones are gated out by their include flags before they can count.
	if set.Unchanged != 26 {
		t.Errorf("expected 26 unchanged records, got %d", set.Unchanged)
	}
}

func TestBuildPartition(t *testing.T) {
	cat := catalog.Device()
	src := deviceSnapshot("a", 64, map[catalog.ID]byte{74: 40, 25: 1})
	dst := deviceSnapshot("b", 64, map[catalog.ID]byte{74: 120, 25: 3})

	cfg := DefaultConfig()
	cfg.IncludeTriggerMode = true

	set, err := Build(src, dst, cfg, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Continuous) != 1 || set.Continuous[0].ID != 74 {
		t.Errorf("expected continuous set [74], got %v", set.Continuous)
	}
	if len(set.Discrete) != 1 || set.Discrete[0].ID != 25 {
		t.Errorf("expected discrete set [25], got %v", set.Discrete)
	}
}

func TestBuildCatalogOrder(t *testing.T) {
	cat := catalog.Device()
	// 81 and 71 change; declaration order puts 71 (Resonance, second filter
	// knob) before 81 (first filter envelope knob).
	src := deviceSnapshot("a", 64, map[catalog.ID]byte{81: 0, 71: 0})
	dst := deviceSnapshot("b", 64, map[catalog.ID]byte{81: 10, 71: 10})

	set, err := Build(src, dst, DefaultConfig(), cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Continuous) != 2 {
		t.Fatalf("expected 2 continuous records, got %d", len(set.Continuous))
	}
	if set.Continuous[0].ID != 71 || set.Continuous[1].ID != 81 {
		t.Errorf("expected catalog order [71 81], got [%d %d]",
			set.Continuous[0].ID, set.Continuous[1].ID)
	}
}

func TestDiscreteGatedByFlags(t *testing.T) {
	cat := catalog.Device()
	src := deviceSnapshot("a", 64, map[catalog.ID]byte{21: 0, 24: 0, 25: 0})
	dst := deviceSnapshot("b", 64, map[catalog.ID]byte{21: 1, 24: 1, 25: 1})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantIDs []catalog.ID
	}{
		{"default excludes all", func(c *Config) {}, nil},
		{"mod shape", func(c *Config) { c.IncludeModShape = true }, []catalog.ID{21}},
		{"trigger source", func(c *Config) { c.IncludeTriggerSource = true }, []catalog.ID{24}},
		{"trigger mode", func(c *Config) { c.IncludeTriggerMode = true }, []catalog.ID{25}},
		{"ignore strategy drops discrete", func(c *Config) {
			c.IncludeModShape = true
			c.Strategy = Ignore
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			set, err := Build(src, dst, cfg, cat)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(set.Discrete) != len(tt.wantIDs) {
				t.Fatalf("expected %d discrete records, got %d", len(tt.wantIDs), len(set.Discrete))
			}
			for i, id := range tt.wantIDs {
				if set.Discrete[i].ID != id {
					t.Errorf("discrete[%d]: expected id %d, got %d", i, id, set.Discrete[i].ID)
				}
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	cat := catalog.Device()
	src := deviceSnapshot("a", 64, map[catalog.ID]byte{74: 0})
	dst := deviceSnapshot("b", 64, map[catalog.ID]byte{74: 127})

	contains := func(set *ChangeSet, id catalog.ID) bool {
		for _, r := range set.Continuous {
			if r.ID == id {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   bool
	}{
		{"group enabled", func(c *Config) {}, true},
		{"group disabled", func(c *Config) {
			c.EnabledGroups[catalog.GroupFilter] = false
		}, false},
		{"disable beats group enable", func(c *Config) {
			c.Disabled[74] = true
		}, false},
		{"force-enable beats group disable", func(c *Config) {
			c.EnabledGroups[catalog.GroupFilter] = false
			c.ForceEnabled[74] = true
		}, true},
		{"force-enable beats disable list", func(c *Config) {
			c.Disabled[74] = true
			c.ForceEnabled[74] = true
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			set, err := Build(src, dst, cfg, cat)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := contains(set, 74); got != tt.want {
				t.Errorf("cutoff included = %v, want %v", got, tt.want)
			}
		})
	}
}
