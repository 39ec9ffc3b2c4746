package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/analogue/morph/pkg/morph/catalog"
)

// File is the JSON schema for snapshot presets.
type File struct {
	Name   string         `json:"name"`
	Values map[string]int `json:"values"`
}

// LoadJSON loads a snapshot preset from a JSON file.
func LoadJSON(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return FromFile(&f)
}

// FromFile converts a parsed preset file into a snapshot.
func FromFile(f *File) (*Snapshot, error) {
	if f == nil {
		return nil, fmt.Errorf("nil preset file")
	}

	values := make(map[catalog.ID]byte, len(f.Values))

	keys := make([]string, 0, len(f.Values))
	for k := range f.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id > 127 {
			return nil, fmt.Errorf("invalid values key %q (expected 0..127)", k)
		}
		v := f.Values[k]
		if v < 0 || v > 127 {
			return nil, fmt.Errorf("values[%q] = %d out of range 0..127", k, v)
		}
		values[catalog.ID(id)] = byte(v)
	}

	return New(f.Name, values), nil
}

// SaveJSON writes a snapshot preset to a JSON file.
func SaveJSON(path string, s *Snapshot) error {
	f := File{
		Name:   s.Name(),
		Values: make(map[string]int, s.Len()),
	}
	for id, v := range s.Values() {
		f.Values[strconv.Itoa(int(id))] = int(v)
	}

	b, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
