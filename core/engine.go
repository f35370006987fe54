// Package simon runs a Simon Says memory game on a small board with a 5x5
// LED matrix, four tilt gestures, two buttons and a speaker.
package simon

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/koscakluka/simon/core/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrInvalidSymbol        = errors.New("invalid symbol")
	ErrSessionOver          = errors.New("session is over")
	ErrMissingGestureSensor = errors.New("gesture sensor not configured")
	ErrMissingButtons       = errors.New("buttons not configured")
)

// Engine runs one game session. It owns the sequence and the current guess.
//
// An Engine is driven by a single goroutine; it is not safe for concurrent
// use.
type Engine struct {
	sessionID string
	state     State
	round     int
	completed int

	sequence []Symbol
	guess    []Symbol

	display  displayOutput
	audio    audioOutput
	gestures GestureSensor
	buttons  Buttons
	random   Random

	sleep        sleepFunc
	pollInterval time.Duration
	emit         eventEmitter
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		sessionID:    uuid.NewString(),
		state:        StateIdle,
		sleep:        sleepContext,
		pollInterval: DefaultPollInterval,
		emit:         noopEventEmitter,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.random == nil {
		seed, err := NewSeed()
		if err != nil {
			logger.Warn("falling back to time based seed", "error", err)
			seed = uint64(time.Now().UnixNano())
		}
		e.random = NewRandom(seed)
	}

	return e
}

// Result summarises a finished session.
type Result struct {
	SessionID string
	// Rounds is the number of rounds reproduced correctly.
	Rounds   int
	Sequence []Symbol
	Guess    []Symbol
}

// Snapshot is a point-in-time copy of the engine state.
type Snapshot struct {
	SessionID string
	State     State
	Round     int
	Rounds    int
	Sequence  []Symbol
	Guess     []Symbol
}

func (e *Engine) SessionID() string { return e.sessionID }
func (e *Engine) State() State      { return e.state }
func (e *Engine) Round() int        { return e.round }
func (e *Engine) Sequence() []Symbol {
	return slices.Clone(e.sequence)
}
func (e *Engine) Guess() []Symbol {
	return slices.Clone(e.guess)
}

func (e *Engine) Snapshot() Snapshot {
	live := Snapshot{
		SessionID: e.sessionID,
		State:     e.state,
		Round:     e.round,
		Rounds:    e.completed,
		Sequence:  e.sequence,
		Guess:     e.guess,
	}

	var snapshot Snapshot
	if err := copier.CopyWithOption(&snapshot, &live, copier.Option{DeepCopy: true}); err != nil {
		logger.Warn("failed to deep copy snapshot", "error", err)
		snapshot = live
		snapshot.Sequence = slices.Clone(e.sequence)
		snapshot.Guess = slices.Clone(e.guess)
	}
	return snapshot
}

func (e *Engine) result() Result {
	return Result{
		SessionID: e.sessionID,
		Rounds:    e.completed,
		Sequence:  e.Sequence(),
		Guess:     e.Guess(),
	}
}

// Run plays a whole session: the intro, the wait for both buttons and then
// rounds until one is failed. It returns early only when ctx is done.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.gestures == nil {
		return e.result(), ErrMissingGestureSensor
	}
	if e.buttons == nil {
		return e.result(), ErrMissingButtons
	}
	if e.state != StateIdle {
		return e.result(), fmt.Errorf("%w: engine is in state %s", ErrSessionOver, e.state)
	}

	ctx, span := tracer.Start(ctx, "run session", trace.WithAttributes(
		attribute.String("simon.session_id", e.sessionID),
	))
	defer span.End()

	if err := e.intro(ctx); err != nil {
		return e.result(), err
	}
	if err := e.awaitStart(ctx); err != nil {
		return e.result(), err
	}
	e.emit(events.NewGameStarted(e.sessionID))
	if err := e.startChime(ctx); err != nil {
		return e.result(), err
	}

	for {
		state, err := e.playRound(ctx)
		if err != nil {
			return e.result(), err
		}

		if state == StateRoundFailure {
			if err := e.presentFailure(ctx); err != nil {
				return e.result(), err
			}
			break
		}

		if err := e.presentSuccess(ctx); err != nil {
			return e.result(), err
		}
	}

	span.SetAttributes(
		attribute.Int("simon.rounds", e.completed),
		attribute.IntSlice("simon.sequence", symbolIndexes(e.sequence)),
	)
	logger.InfoContext(ctx, "game over", "session_id", e.sessionID, "rounds", e.completed)
	e.emit(events.NewGameOver(e.sessionID, e.completed))
	return e.result(), nil
}

func (e *Engine) playRound(ctx context.Context) (State, error) {
	if err := e.StartRound(); err != nil {
		return e.state, err
	}

	ctx, span := tracer.Start(ctx, "play round", trace.WithAttributes(
		attribute.Int("simon.round", e.round),
		attribute.Int("simon.sequence_length", len(e.sequence)),
	))
	defer span.End()

	if err := e.Playback(ctx); err != nil {
		return e.state, err
	}
	return e.CollectGuess(ctx)
}

func (e *Engine) transition(next State) error {
	if !e.state.canTransitionTo(next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, e.state, next)
	}

	previous := e.state
	e.state = next
	e.emit(events.NewStateChanged(previous.String(), next.String()))
	return nil
}

func (e *Engine) requireState(expected State, operation string) error {
	if e.state != expected {
		return fmt.Errorf("%w: %s requires state %s, engine is in %s", ErrInvalidTransition, operation, expected, e.state)
	}
	return nil
}
