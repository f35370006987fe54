// Package terminal runs the game board inside a terminal. Arrow keys stand
// in for tilting the board, a and b for its buttons, and the LED matrix is
// drawn with coloured dots.
package terminal

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	simon "github.com/koscakluka/simon/core"
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/events"
	"github.com/koscakluka/simon/core/gesture"
)

// DefaultHoldWindow is how long a single key press keeps a button down.
// Terminals report presses, not holds, so a press has to outlive at least
// one idle poll of the engine.
const DefaultHoldWindow = 300 * time.Millisecond

type BoardOption func(*Board)

func WithHoldWindow(window time.Duration) BoardOption {
	return func(b *Board) {
		if window > 0 {
			b.holdWindow = window
		}
	}
}

func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// Board is the terminal stand-in for the physical board. It satisfies the
// engine's Display, GestureSensor, Buttons and Speaker interfaces and feeds
// what the engine does into a bubbletea program.
type Board struct {
	gestures *gesture.Latch

	mu           sync.Mutex
	pressedUntil map[simon.Button]time.Time
	holdWindow   time.Duration
	now          func() time.Time

	program sender
}

type sender interface {
	Send(msg tea.Msg)
}

func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		gestures:     gesture.NewLatch(),
		pressedUntil: make(map[simon.Button]time.Time, 2),
		holdWindow:   DefaultHoldWindow,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach connects the board to the program that renders it. Until a program
// is attached frames and banners are dropped.
func (b *Board) Attach(program *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if program == nil {
		b.program = nil
		return
	}
	b.program = program
}

func (b *Board) send(msg tea.Msg) {
	b.mu.Lock()
	program := b.program
	b.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func (b *Board) Show(img display.Image) {
	b.send(frameMsg{image: img})
}

func (b *Board) Clear() {
	b.send(frameMsg{image: display.Blank})
}

func (b *Board) WasGesture(g gesture.Gesture) bool {
	return b.gestures.WasGesture(g)
}

func (b *Board) IsPressed(button simon.Button) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now().Before(b.pressedUntil[button])
}

// Say shows text in the banner above the matrix.
func (b *Board) Say(_ context.Context, text string) error {
	b.send(bannerMsg{text: text})
	return nil
}

// HandleEvent forwards engine events to the status line. It is meant to be
// passed to simon.WithEventCallback.
func (b *Board) HandleEvent(event events.Event) {
	b.send(eventMsg{event: event})
}

// Finish reports the end of a session to the program.
func (b *Board) Finish(result simon.Result, err error) {
	b.send(GameOverMsg{Result: result, Err: err})
}

// Tilt records a gesture as if the board had been tilted.
func (b *Board) Tilt(g gesture.Gesture) {
	b.gestures.Record(g)
}

// Press holds the given buttons down for the hold window.
func (b *Board) Press(buttons ...simon.Button) {
	b.mu.Lock()
	defer b.mu.Unlock()
	until := b.now().Add(b.holdWindow)
	for _, button := range buttons {
		b.pressedUntil[button] = until
	}
}

// Model returns the bubbletea model that draws this board.
func (b *Board) Model() tea.Model {
	return newModel(b)
}

var (
	_ simon.Display       = (*Board)(nil)
	_ simon.GestureSensor = (*Board)(nil)
	_ simon.Buttons       = (*Board)(nil)
	_ simon.Speaker       = (*Board)(nil)
)
