package simon

import (
	"testing"

	"github.com/koscakluka/simon/core/events"
)

func TestWithEventCallbackNilIsNoop(t *testing.T) {
	engine := NewEngine(WithEventCallback(nil))

	engine.emit(events.NewPlaybackEnded())
}

func TestWithDisplayTypedNilIsNoop(t *testing.T) {
	var client *recordingDisplay
	engine := NewEngine(WithDisplay(client))

	if engine.display.base != nil {
		t.Fatalf("expected typed-nil display to be treated as unset")
	}
	engine.display.Show(SymbolUp.Image())
	engine.display.Clear()
}
