package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/analogue/morph/pkg/morph/catalog"
)

// Binary persistence for a source/destination snapshot pair, so a host can
// stash the two programs a morph control was set up with.

var stateMagic = []byte("MORPH")

const stateVersion uint32 = 1

// SavePair writes a source/destination pair to a writer.
func SavePair(w io.Writer, source, destination *Snapshot) error {
	if _, err := w.Write(stateMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, stateVersion); err != nil {
		return err
	}
	if err := writeSnapshot(w, source); err != nil {
		return err
	}
	return writeSnapshot(w, destination)
}

// LoadPair reads a source/destination pair written by SavePair.
func LoadPair(r io.Reader) (source, destination *Snapshot, err error) {
	magic := make([]byte, len(stateMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, nil, err
	}
	if string(magic) != string(stateMagic) {
		return nil, nil, fmt.Errorf("invalid state magic %q", magic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, nil, err
	}
	if version != stateVersion {
		return nil, nil, fmt.Errorf("unsupported state version %d", version)
	}

	if source, err = readSnapshot(r); err != nil {
		return nil, nil, err
	}
	if destination, err = readSnapshot(r); err != nil {
		return nil, nil, err
	}
	return source, destination, nil
}

func writeSnapshot(w io.Writer, s *Snapshot) error {
	name := []byte(s.Name())
	if err := binary.Write(w, binary.LittleEndian, uint32(len(name))); err != nil {
		return err
	}
	if _, err := w.Write(name); err != nil {
		return err
	}

	ids := s.IDs()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(ids))); err != nil {
		return err
	}
	for _, id := range ids {
		v, _ := s.Value(id)
		if _, err := w.Write([]byte{byte(id), v}); err != nil {
			return err
		}
	}
	return nil
}

func readSnapshot(r io.Reader) (*Snapshot, error) {
	var nameLen uint32
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, err
	}
	if nameLen > 1<<16 {
		return nil, fmt.Errorf("implausible snapshot name length %d", nameLen)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, err
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	if count > 128 {
		return nil, fmt.Errorf("implausible parameter count %d", count)
	}

	values := make(map[catalog.ID]byte, count)
	entry := make([]byte, 2)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, entry); err != nil {
			return nil, err
		}
		values[catalog.ID(entry[0])] = entry[1]
	}
	return New(string(name), values), nil
}
