package midi

import "sync"

// Queue coalesces outbound control changes for a transport slower than the
// morph tick rate: between flushes only the most recent value per controller
// is kept. Flush order is first-push order, so the stream toward the device
// stays stable.
type Queue struct {
	mu     sync.Mutex
	order  []uint16
	latest map[uint16]Event
}

// NewQueue creates an empty coalescing queue.
func NewQueue() *Queue {
	return &Queue{
		latest: make(map[uint16]Event),
	}
}

func key(e Event) uint16 {
	return uint16(e.Channel)<<8 | uint16(e.Controller)
}

// Push enqueues an event, replacing any pending value for the same channel
// and controller.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	k := key(e)
	if _, pending := q.latest[k]; !pending {
		q.order = append(q.order, k)
	}
	q.latest[k] = e
}

// Flush drains the queue, returning the pending events in first-push order.
func (q *Queue) Flush() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.order) == 0 {
		return nil
	}
	events := make([]Event, len(q.order))
	for i, k := range q.order {
		events[i] = q.latest[k]
	}
	q.order = q.order[:0]
	clear(q.latest)
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Clear drops all pending events.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.order = q.order[:0]
	clear(q.latest)
}
