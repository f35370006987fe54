package simon

import (
	"context"
	"fmt"
	"time"

	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/events"
	"github.com/koscakluka/simon/core/gesture"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StartRound grows the sequence by one random symbol and clears the guess.
// It is valid before the first round and after a successful one.
func (e *Engine) StartRound() error {
	if e.state.IsTerminal() {
		return fmt.Errorf("%w: cannot start a round", ErrSessionOver)
	}
	if !e.state.canTransitionTo(StateRoundPlayback) {
		return fmt.Errorf("%w: start round from %s", ErrInvalidTransition, e.state)
	}

	drawn := e.random.UniformInt(0, SymbolCount-1)
	symbol := Symbol(drawn)
	if !symbol.Valid() {
		return fmt.Errorf("%w: random source returned %d", ErrInvalidSymbol, drawn)
	}

	e.sequence = append(e.sequence, symbol)
	e.guess = e.guess[:0]
	e.round++

	if err := e.transition(StateRoundPlayback); err != nil {
		return err
	}
	e.emit(events.NewRoundStarted(e.round, int(symbol), len(e.sequence)))
	return nil
}

// Playback shows and sounds every symbol of the sequence in order, one at a
// time, then hands over to input collection.
func (e *Engine) Playback(ctx context.Context) error {
	if err := e.requireState(StateRoundPlayback, "playback"); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "playback", trace.WithAttributes(
		attribute.Int("simon.sequence_length", len(e.sequence)),
	))
	defer span.End()

	for i, symbol := range e.sequence {
		e.emit(events.NewSymbolPlayed(i, int(symbol)))
		if err := e.flash(ctx, symbol, playbackNoteDuration, playbackGap); err != nil {
			return err
		}
	}
	if err := e.sleep(ctx, playbackSettleDelay); err != nil {
		return err
	}

	e.emit(events.NewPlaybackEnded())
	return e.transition(StateRoundInput)
}

// PollGuess runs a single input poll. Gestures are checked in gesture.Order()
// and only the first one found is consumed; the rest stay pending in the
// sensor for the next poll.
//
// Without a gesture nothing changes and OutcomePending is returned.
func (e *Engine) PollGuess(ctx context.Context) (Outcome, error) {
	outcome, _, err := e.pollGuess(ctx)
	return outcome, err
}

func (e *Engine) pollGuess(ctx context.Context) (outcome Outcome, recorded bool, err error) {
	if err := e.requireState(StateRoundInput, "poll guess"); err != nil {
		return OutcomePending, false, err
	}
	if e.gestures == nil {
		return OutcomePending, false, ErrMissingGestureSensor
	}

	e.display.Show(display.Question)
	for _, g := range gesture.Order() {
		if !e.gestures.WasGesture(g) {
			continue
		}
		symbol, ok := SymbolForGesture(g)
		if !ok {
			continue
		}
		outcome, err := e.recordGuess(ctx, symbol)
		return outcome, true, err
	}
	return OutcomePending, false, nil
}

func (e *Engine) recordGuess(ctx context.Context, symbol Symbol) (Outcome, error) {
	position := len(e.guess)
	expected := e.sequence[position]
	e.guess = append(e.guess, symbol)
	gesturesRecorded.Add(ctx, 1)
	e.emit(events.NewGuessRecorded(position, int(symbol), int(expected)))

	// The outcome is settled even when the feedback is cut short, so the guess
	// is never left as a broken prefix of the sequence.
	flashErr := e.flash(ctx, symbol, feedbackNoteDuration, feedbackGap)

	outcome, err := e.settleGuess(ctx, position, expected, symbol)
	if err != nil {
		return outcome, err
	}
	return outcome, flashErr
}

// settleGuess applies the result of the gesture just appended at position.
// Every earlier gesture matched, so comparing the new one is enough.
func (e *Engine) settleGuess(ctx context.Context, position int, expected, symbol Symbol) (Outcome, error) {
	if symbol != expected {
		if err := e.transition(StateRoundFailure); err != nil {
			return OutcomePending, err
		}
		e.emit(events.NewRoundFailed(e.round, position, int(expected), int(symbol)))
		return OutcomeFailure, nil
	}

	if len(e.guess) == len(e.sequence) {
		if err := e.transition(StateRoundSuccess); err != nil {
			return OutcomePending, err
		}
		e.completed++
		roundsCompleted.Add(ctx, 1)
		e.emit(events.NewRoundSucceeded(e.round))
		return OutcomeSuccess, nil
	}

	return OutcomePending, nil
}

// CollectGuess polls for gestures until the guess either reproduces the
// whole sequence or breaks it. There is no timeout; it only returns early
// when ctx is done.
func (e *Engine) CollectGuess(ctx context.Context) (State, error) {
	if err := e.requireState(StateRoundInput, "collect guess"); err != nil {
		return e.state, err
	}

	ctx, span := tracer.Start(ctx, "collect guess", trace.WithAttributes(
		attribute.Int("simon.sequence_length", len(e.sequence)),
	))
	defer span.End()

	for {
		outcome, recorded, err := e.pollGuess(ctx)
		if err != nil {
			return e.state, err
		}
		if outcome != OutcomePending {
			span.SetAttributes(attribute.String("simon.outcome", outcome.String()))
			return e.state, nil
		}

		if !recorded {
			if err := e.sleep(ctx, e.pollInterval); err != nil {
				return e.state, err
			}
		}
	}
}

// flash shows and sounds symbol for onFor, then blanks both for gap.
func (e *Engine) flash(ctx context.Context, symbol Symbol, onFor, gap time.Duration) error {
	e.audio.PlayTone(ctx, symbol.Tone())
	e.display.Show(symbol.Image())
	err := e.sleep(ctx, onFor)
	e.audio.StopTone(ctx)
	e.display.Clear()
	if err != nil {
		return err
	}
	return e.sleep(ctx, gap)
}
