package simon

import "time"

// Pauses used by the game presentation, matching the board firmware.
const (
	introGiggleDelay = 1000 * time.Millisecond
	introTitleDelay  = 500 * time.Millisecond
	idleBlinkPeriod  = 200 * time.Millisecond

	chimeNoteDuration = 100 * time.Millisecond
	chimeClearDelay   = 400 * time.Millisecond
	chimeSettleDelay  = 1000 * time.Millisecond

	playbackNoteDuration = 500 * time.Millisecond
	playbackGap          = 250 * time.Millisecond
	playbackSettleDelay  = 500 * time.Millisecond

	feedbackNoteDuration = 250 * time.Millisecond
	feedbackGap          = 100 * time.Millisecond

	successHold  = 500 * time.Millisecond
	successGap   = 500 * time.Millisecond
	failureDelay = 100 * time.Millisecond
)
