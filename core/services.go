package simon

import (
	"context"

	"github.com/koscakluka/simon/core/audio"
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/gesture"
)

// Display renders a frame on the LED matrix. A shown image stays until the
// next Show or Clear.
type Display interface {
	Show(img display.Image)
	Clear()
}

type Audio interface {
	// PlayTone starts a continuous tone that keeps sounding until StopTone.
	PlayTone(ctx context.Context, hz int) error
	StopTone() error
	// PlayEffect plays a predefined sound to completion.
	PlayEffect(ctx context.Context, effect audio.Effect) error
}

// Speaker is an optional capability of an audio client.
type Speaker interface {
	Say(ctx context.Context, text string) error
}

// GestureSensor reports tilt gestures. WasGesture is non-blocking and
// edge-triggered: a gesture is reported once per occurrence.
type GestureSensor interface {
	WasGesture(g gesture.Gesture) bool
}

type Button string

const (
	ButtonA Button = "a"
	ButtonB Button = "b"
)

// Buttons reports the instantaneous level of the board buttons.
type Buttons interface {
	IsPressed(button Button) bool
}

// Random draws integers uniformly from the inclusive range [min, max].
type Random interface {
	UniformInt(min, max int) int
}
