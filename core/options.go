package simon

import (
	"context"
	"time"

	"github.com/koscakluka/simon/core/events"
)

// DefaultPollInterval is the pause between two gesture polls that found
// nothing.
const DefaultPollInterval = 10 * time.Millisecond

type EngineOption func(*Engine)

func WithDisplay(client Display) EngineOption {
	return func(e *Engine) { e.display.Set(client) }
}

// WithAudio sets the audio client. If the client also implements Speaker it
// is used for speech unless WithSpeaker overrides it.
func WithAudio(client Audio) EngineOption {
	return func(e *Engine) { e.audio.Set(client) }
}

func WithSpeaker(speaker Speaker) EngineOption {
	return func(e *Engine) { e.audio.SetSpeaker(speaker) }
}

func WithGestureSensor(sensor GestureSensor) EngineOption {
	return func(e *Engine) {
		if isNilService(sensor) {
			e.gestures = nil
			return
		}
		e.gestures = sensor
	}
}

func WithButtons(buttons Buttons) EngineOption {
	return func(e *Engine) {
		if isNilService(buttons) {
			e.buttons = nil
			return
		}
		e.buttons = buttons
	}
}

// WithRandom replaces the default PCG source. A nil source keeps the
// default.
func WithRandom(random Random) EngineOption {
	return func(e *Engine) {
		if !isNilService(random) {
			e.random = random
		}
	}
}

// WithEventCallback registers a callback for every engine event.
//
// The callback runs inline on the game loop and should not block.
func WithEventCallback(callback func(events.Event)) EngineOption {
	return func(e *Engine) { e.emit = newCallbackEventEmitter(callback) }
}

// WithSleepFunc replaces the function used for every timed pause. It must
// return ctx.Err() once ctx is done.
func WithSleepFunc(sleep func(ctx context.Context, d time.Duration) error) EngineOption {
	return func(e *Engine) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// WithPollInterval sets the pause between gesture polls that found nothing.
// Zero polls without pausing.
func WithPollInterval(interval time.Duration) EngineOption {
	return func(e *Engine) {
		if interval >= 0 {
			e.pollInterval = interval
		}
	}
}

func WithSessionID(sessionID string) EngineOption {
	return func(e *Engine) {
		if sessionID != "" {
			e.sessionID = sessionID
		}
	}
}
