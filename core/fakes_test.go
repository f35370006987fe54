package simon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/koscakluka/simon/core/audio"
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/events"
	"github.com/koscakluka/simon/core/gesture"
)

const testPollInterval = time.Millisecond

type recordingDisplay struct {
	frames []display.Image
}

func (d *recordingDisplay) Show(img display.Image) { d.frames = append(d.frames, img) }
func (d *recordingDisplay) Clear()                 { d.frames = append(d.frames, display.Blank) }

func (d *recordingDisplay) last() display.Image {
	if len(d.frames) == 0 {
		return display.Blank
	}
	return d.frames[len(d.frames)-1]
}

type recordingAudio struct {
	calls []string
	err   error
}

func (a *recordingAudio) PlayTone(_ context.Context, hz int) error {
	a.calls = append(a.calls, fmt.Sprintf("tone:%d", hz))
	return a.err
}

func (a *recordingAudio) StopTone() error {
	a.calls = append(a.calls, "stop")
	return a.err
}

func (a *recordingAudio) PlayEffect(_ context.Context, effect audio.Effect) error {
	a.calls = append(a.calls, "effect:"+string(effect))
	return a.err
}

func (a *recordingAudio) effects() []string {
	var effects []string
	for _, call := range a.calls {
		if effect, ok := strings.CutPrefix(call, "effect:"); ok {
			effects = append(effects, effect)
		}
	}
	return effects
}

type speakingAudio struct {
	recordingAudio
	said []string
}

func (a *speakingAudio) Say(_ context.Context, text string) error {
	a.said = append(a.said, text)
	return nil
}

type recordingSpeaker struct {
	said []string
}

func (s *recordingSpeaker) Say(_ context.Context, text string) error {
	s.said = append(s.said, text)
	return nil
}

// fakeButtons reports both buttons pressed once ButtonA was checked more
// than pressAfter times.
type fakeButtons struct {
	checks     int
	pressAfter int
	onlyA      bool
}

func (b *fakeButtons) IsPressed(button Button) bool {
	if button == ButtonA {
		b.checks++
		return b.checks > b.pressAfter || b.onlyA
	}
	return b.checks > b.pressAfter
}

// fixedRandom cycles through values.
type fixedRandom struct {
	values []int
	next   int
}

func (r *fixedRandom) UniformInt(int, int) int {
	value := r.values[r.next%len(r.values)]
	r.next++
	return value
}

type fakeClock struct {
	slept   []time.Duration
	onSleep func(d time.Duration)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.slept = append(c.slept, d)
	if c.onSleep != nil {
		c.onSleep(d)
	}
	return ctx.Err()
}

// scriptedPlayer feeds one gesture into the latch every time the engine
// idles between polls, and cancels the session once the script runs out.
type scriptedPlayer struct {
	latch  *gesture.Latch
	script []gesture.Gesture
	cancel context.CancelFunc
}

func (p *scriptedPlayer) onSleep(d time.Duration) {
	if d != testPollInterval {
		return
	}
	if len(p.script) == 0 {
		if p.cancel != nil {
			p.cancel()
		}
		return
	}
	p.latch.Record(p.script[0])
	p.script = p.script[1:]
}

type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) record(event events.Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) kinds() []events.Kind {
	kinds := make([]events.Kind, len(r.events))
	for i, event := range r.events {
		kinds[i] = event.Kind()
	}
	return kinds
}

type testHarness struct {
	engine  *Engine
	display *recordingDisplay
	audio   *recordingAudio
	latch   *gesture.Latch
	buttons *fakeButtons
	clock   *fakeClock
	events  *eventRecorder
}

func newTestHarness(random Random, opts ...EngineOption) *testHarness {
	h := &testHarness{
		display: &recordingDisplay{},
		audio:   &recordingAudio{},
		latch:   gesture.NewLatch(),
		buttons: &fakeButtons{},
		clock:   &fakeClock{},
		events:  &eventRecorder{},
	}

	base := []EngineOption{
		WithDisplay(h.display),
		WithAudio(h.audio),
		WithGestureSensor(h.latch),
		WithButtons(h.buttons),
		WithRandom(random),
		WithSleepFunc(h.clock.Sleep),
		WithPollInterval(testPollInterval),
		WithEventCallback(h.events.record),
		WithSessionID("test-session"),
	}
	h.engine = NewEngine(append(base, opts...)...)
	return h
}

// playRoundCorrectly starts a round, plays it back and reproduces the whole
// sequence through PollGuess.
func (h *testHarness) playRoundCorrectly(ctx context.Context) (Outcome, error) {
	if err := h.engine.StartRound(); err != nil {
		return OutcomePending, err
	}
	if err := h.engine.Playback(ctx); err != nil {
		return OutcomePending, err
	}

	outcome := OutcomePending
	for _, symbol := range h.engine.Sequence() {
		h.latch.Record(symbol.Gesture())
		var err error
		if outcome, err = h.engine.PollGuess(ctx); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}
