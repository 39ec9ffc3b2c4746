package engine

import (
	"testing"

	"github.com/analogue/morph/pkg/morph/catalog"
)

type captured struct {
	id    catalog.ID
	value byte
}

func TestEmitterDeduplicates(t *testing.T) {
	var events []captured
	e := NewEmitter(SinkFunc(func(id catalog.ID, value byte) {
		events = append(events, captured{id, value})
	}))

	e.Send(74, 10)
	e.Send(74, 10)
	e.Send(74, 11)
	e.Send(71, 10)

	want := []captured{{74, 10}, {74, 11}, {71, 10}}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, ev := range events {
		if ev != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], ev)
		}
	}

	sent, saved := e.Counters()
	if sent != 3 {
		t.Errorf("expected 3 sent, got %d", sent)
	}
	if saved != 1 {
		t.Errorf("expected 1 saved, got %d", saved)
	}
}

func TestEmitterResetClearsCacheNotCounters(t *testing.T) {
	var events int
	e := NewEmitter(SinkFunc(func(catalog.ID, byte) { events++ }))

	e.Send(74, 10)
	e.Reset()
	e.Send(74, 10)

	if events != 2 {
		t.Errorf("expected re-emission after reset, got %d events", events)
	}
	sent, saved := e.Counters()
	if sent != 2 || saved != 0 {
		t.Errorf("expected counters (2, 0), got (%d, %d)", sent, saved)
	}

	e.ResetCounters()
	sent, saved = e.Counters()
	if sent != 0 || saved != 0 {
		t.Errorf("expected zeroed counters, got (%d, %d)", sent, saved)
	}
}

func TestEmitterNilSink(t *testing.T) {
	e := NewEmitter(nil)
	e.Send(74, 10)
	e.Send(74, 10)

	sent, saved := e.Counters()
	if sent != 1 || saved != 1 {
		t.Errorf("expected counters (1, 1), got (%d, %d)", sent, saved)
	}
}
