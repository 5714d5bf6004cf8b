package cadence

import (
	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/internal/bus"
	"github.com/evolens/cadence/internal/log"
	"github.com/evolens/cadence/internal/logger"
)

// SetLogger sets the logger object used for all logging calls.
func SetLogger(l logger.Logger) {
	log.Log = l
}

// SetBus sets the event bus for all library bus publish events onto (in
// practice this is for the UI layer).
func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
