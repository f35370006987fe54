package simon

import (
	"context"
	"fmt"
	"reflect"

	"github.com/koscakluka/simon/core/audio"
)

// audioOutput wraps the configured audio client so the round loop can treat
// sound as a best-effort side effect.
//
// Client errors are recorded on the span carried by ctx and logged; they
// never stop the game. Without a client every call is a no-op.
type audioOutput struct {
	base Audio
	// speaker is set when the client can also speak, or when a speaker was
	// configured on its own.
	speaker Speaker
	// speakerFromClient marks a speaker taken from base; it is dropped when
	// the client is replaced.
	speakerFromClient bool
}

func newAudioOutput(client Audio) *audioOutput {
	audioOutput := audioOutput{}
	audioOutput.Set(client)
	return &audioOutput
}

// Set replaces the configured client. Nil and typed-nil clients are treated
// as unconfigured. A speaker set through SetSpeaker is kept; one taken from
// the previous client is not.
func (a *audioOutput) Set(client Audio) {
	if a == nil {
		return
	}

	a.base = nil
	if a.speakerFromClient {
		a.speaker = nil
		a.speakerFromClient = false
	}
	if isNilService(client) {
		return
	}
	a.base = client

	if a.speaker == nil {
		if speaker, ok := client.(Speaker); ok {
			a.speaker = speaker
			a.speakerFromClient = true
		}
	}
}

func (a *audioOutput) SetSpeaker(speaker Speaker) {
	if a == nil {
		return
	}

	a.speakerFromClient = false
	if isNilService(speaker) {
		a.speaker = nil
		return
	}
	a.speaker = speaker
}

func (a *audioOutput) isConfigured() bool {
	return a != nil && a.base != nil
}

func (a *audioOutput) PlayTone(ctx context.Context, hz int) {
	if !a.isConfigured() {
		return
	}

	if err := a.base.PlayTone(ctx, hz); err != nil {
		recordError(ctx, fmt.Errorf("failed to play tone %dHz: %w", hz, err))
	}
}

func (a *audioOutput) StopTone(ctx context.Context) {
	if !a.isConfigured() {
		return
	}

	if err := a.base.StopTone(); err != nil {
		recordError(ctx, fmt.Errorf("failed to stop tone: %w", err))
	}
}

// PlayEffect blocks until the effect finished playing.
func (a *audioOutput) PlayEffect(ctx context.Context, effect audio.Effect) {
	if !a.isConfigured() {
		return
	}

	if err := a.base.PlayEffect(ctx, effect); err != nil {
		recordError(ctx, fmt.Errorf("failed to play effect %q: %w", effect, err))
	}
}

func (a *audioOutput) Say(ctx context.Context, text string) {
	if a == nil || a.speaker == nil {
		return
	}

	if err := a.speaker.Say(ctx, text); err != nil {
		recordError(ctx, fmt.Errorf("failed to say %q: %w", text, err))
	}
}

// isNilService detects nil and typed-nil interface values.
func isNilService(service any) bool {
	if service == nil {
		return true
	}

	v := reflect.ValueOf(service)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
