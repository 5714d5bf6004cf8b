package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher
var active bool

// SetPublisher sets the singleton bus publisher used by the library. This is
// optional; if no bus is provided, the library runs without events.
func SetPublisher(p partybus.Publisher) {
	publisher = p
	if p != nil {
		active = true
	}
}

// Publish an event onto the bus. If there is no bus, then this is a no-op.
func Publish(event partybus.Event) {
	if active {
		publisher.Publish(event)
	}
}
