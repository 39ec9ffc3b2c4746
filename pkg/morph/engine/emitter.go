package engine

import "github.com/analogue/morph/pkg/morph/catalog"

// Sink receives the engine's change events. Calls are synchronous and
// fire-and-forget: the engine never retries and keeps advancing position
// regardless of what the host does with an event.
type Sink interface {
	Emit(id catalog.ID, value byte)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(id catalog.ID, value byte)

// Emit calls f.
func (f SinkFunc) Emit(id catalog.ID, value byte) {
	f(id, value)
}

// Emitter deduplicates change events: it caches the last value emitted per
// parameter and forwards an event only when the newly computed value differs.
type Emitter struct {
	sink Sink
	last map[catalog.ID]byte

	sent  uint64
	saved uint64
}

// NewEmitter creates an emitter over a sink. A nil sink still tracks the
// cache and counters, which keeps tests and dry runs cheap.
func NewEmitter(sink Sink) *Emitter {
	return &Emitter{
		sink: sink,
		last: make(map[catalog.ID]byte),
	}
}

// Send emits value for id unless the cache already holds it.
func (e *Emitter) Send(id catalog.ID, value byte) {
	if prev, ok := e.last[id]; ok && prev == value {
		e.saved++
		return
	}
	e.last[id] = value
	e.sent++
	if e.sink != nil {
		e.sink.Emit(id, value)
	}
}

// Reset clears the last-sent cache so the next pass emits a fresh baseline.
// Counters are unaffected; they accumulate for the emitter's lifetime.
func (e *Emitter) Reset() {
	clear(e.last)
}

// Counters returns the messages sent and saved so far.
func (e *Emitter) Counters() (sent, saved uint64) {
	return e.sent, e.saved
}

// ResetCounters zeroes the sent/saved counters.
func (e *Emitter) ResetCounters() {
	e.sent, e.saved = 0, 0
}
