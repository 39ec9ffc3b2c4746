// Package midi turns morph change events into outbound control-change
// messages: a 3-byte message model, a coalescing queue for slow transports
// and a sink adapter the engine can emit into.
package midi

import "fmt"

// StatusControlChange is the status nibble for control-change messages.
const StatusControlChange uint8 = 0xB0

// Event is one control change on a channel.
type Event struct {
	Channel    uint8 // 0-15
	Controller uint8
	Value      uint8
}

// CC builds a control-change event. Controller and value are masked to
// 7 bits, the channel to 4.
func CC(channel, controller, value uint8) Event {
	return Event{
		Channel:    channel & 0x0F,
		Controller: controller & 0x7F,
		Value:      value & 0x7F,
	}
}

// Bytes returns the 3-byte wire form.
func (e Event) Bytes() [3]byte {
	return [3]byte{StatusControlChange | e.Channel, e.Controller, e.Value}
}

func (e Event) String() string {
	return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d}", e.Channel, e.Controller, e.Value)
}
