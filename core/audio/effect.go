package audio

import (
	"fmt"
	"time"
)

// Effect identifies one of the fixed sounds the board can play to completion.
type Effect string

const (
	// EffectGiggle opens the game before the player is asked to start.
	EffectGiggle Effect = "giggle"
	// EffectPowerUp is played after a round is reproduced correctly.
	EffectPowerUp Effect = "power_up"
	// EffectWawawawaa is played when the game is lost.
	EffectWawawawaa Effect = "wawawawaa"
)

// Note is a single pitch held for a duration. A zero frequency is a rest.
type Note struct {
	Frequency int
	Duration  time.Duration
}

type Melody []Note

func (m Melody) Duration() time.Duration {
	var total time.Duration
	for _, note := range m {
		total += note.Duration
	}
	return total
}

// One beat at the default board tempo of 120 bpm with 4 ticks per beat.
const tick = 125 * time.Millisecond

var melodies = map[Effect]Melody{
	EffectGiggle: {
		{Frequency: 523, Duration: 80 * time.Millisecond},
		{Frequency: 659, Duration: 80 * time.Millisecond},
		{Duration: 40 * time.Millisecond},
		{Frequency: 587, Duration: 80 * time.Millisecond},
		{Frequency: 698, Duration: 80 * time.Millisecond},
		{Duration: 40 * time.Millisecond},
		{Frequency: 659, Duration: 80 * time.Millisecond},
		{Frequency: 784, Duration: 120 * time.Millisecond},
	},
	EffectPowerUp: {
		{Frequency: 392, Duration: tick},
		{Frequency: 523, Duration: tick},
		{Frequency: 659, Duration: tick},
		{Frequency: 784, Duration: 2 * tick},
		{Frequency: 659, Duration: tick},
		{Frequency: 784, Duration: 3 * tick},
	},
	EffectWawawawaa: {
		{Frequency: 165, Duration: 3 * tick},
		{Duration: tick},
		{Frequency: 156, Duration: 3 * tick},
		{Duration: tick},
		{Frequency: 147, Duration: 4 * tick},
		{Duration: tick},
		{Frequency: 139, Duration: 8 * tick},
	},
}

// MelodyFor returns the notes that make up effect.
func MelodyFor(effect Effect) (Melody, error) {
	melody, ok := melodies[effect]
	if !ok {
		return nil, fmt.Errorf("unknown effect %q", effect)
	}

	notes := make(Melody, len(melody))
	copy(notes, melody)
	return notes, nil
}
