package midi

import (
	"sync/atomic"

	"github.com/analogue/morph/pkg/morph/catalog"
)

// Writer sends one short MIDI message. *portmidi.Stream satisfies it
// directly.
type Writer interface {
	WriteShort(status, data1, data2 int64) error
}

// Sink translates morph change events into control changes on a channel and
// writes them out. Write errors are counted and dropped: transport health is
// the host's concern and must never stall the morph tick.
type Sink struct {
	w       Writer
	channel uint8
	errs    atomic.Uint64
}

// NewSink creates a sink writing on the given channel (0-15).
func NewSink(w Writer, channel uint8) *Sink {
	return &Sink{w: w, channel: channel & 0x0F}
}

// Emit implements the engine's sink contract. The parameter id is the
// device's control-change number.
func (s *Sink) Emit(id catalog.ID, value byte) {
	b := CC(s.channel, uint8(id), value).Bytes()
	if err := s.w.WriteShort(int64(b[0]), int64(b[1]), int64(b[2])); err != nil {
		s.errs.Add(1)
	}
}

// Errors returns the number of dropped writes.
func (s *Sink) Errors() uint64 {
	return s.errs.Load()
}
