package simon

import "github.com/koscakluka/simon/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(callback func(events.Event)) eventEmitter {
	if callback == nil {
		return noopEventEmitter
	}
	return eventEmitter(callback)
}
