package events

import "time"

// Kind names an event, namespaced by what it reports on, e.g. "round.failed".
type Kind string

// Event is anything the engine publishes through its event callback.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind and emit time every game event embeds.
type Base struct {
	kind      Kind
	timestamp time.Time
}

// NewBase stamps kind with the current time.
func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}
