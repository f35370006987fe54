package simon

import (
	"context"

	"github.com/koscakluka/simon/core/audio"
	"github.com/koscakluka/simon/core/display"
)

const title = "Simon says"

func (e *Engine) intro(ctx context.Context) error {
	e.display.Clear()
	e.audio.PlayEffect(ctx, audio.EffectGiggle)
	if err := e.sleep(ctx, introGiggleDelay); err != nil {
		return err
	}

	e.display.Show(display.Fabulous)
	e.audio.Say(ctx, title)
	return e.sleep(ctx, introTitleDelay)
}

// awaitStart blinks the target until both buttons are held at the same time.
func (e *Engine) awaitStart(ctx context.Context) error {
	if e.buttons == nil {
		return ErrMissingButtons
	}

	lit := true
	for !(e.buttons.IsPressed(ButtonA) && e.buttons.IsPressed(ButtonB)) {
		if lit {
			e.display.Show(display.Target)
		} else {
			e.display.Clear()
		}
		if err := e.sleep(ctx, idleBlinkPeriod); err != nil {
			return err
		}
		lit = !lit
	}

	logger.InfoContext(ctx, "game started", "session_id", e.sessionID)
	return nil
}

// startChime runs up through all four symbols once.
func (e *Engine) startChime(ctx context.Context) error {
	for _, symbol := range Symbols() {
		e.audio.PlayTone(ctx, symbol.Tone())
		e.display.Show(symbol.Image())
		if err := e.sleep(ctx, chimeNoteDuration); err != nil {
			e.audio.StopTone(ctx)
			return err
		}
	}

	e.display.Clear()
	err := e.sleep(ctx, chimeClearDelay)
	e.audio.StopTone(ctx)
	if err != nil {
		return err
	}
	return e.sleep(ctx, chimeSettleDelay)
}

func (e *Engine) presentSuccess(ctx context.Context) error {
	e.display.Show(display.Yes)
	e.audio.PlayEffect(ctx, audio.EffectPowerUp)
	if err := e.sleep(ctx, successHold); err != nil {
		return err
	}
	e.display.Clear()
	return e.sleep(ctx, successGap)
}

// presentFailure leaves the No icon on the display.
func (e *Engine) presentFailure(ctx context.Context) error {
	if err := e.sleep(ctx, failureDelay); err != nil {
		return err
	}
	e.display.Show(display.No)
	e.audio.PlayEffect(ctx, audio.EffectWawawawaa)
	return nil
}
