package simon

// State is the position of the engine in the round loop.
type State int

const (
	StateIdle State = iota
	StateRoundPlayback
	StateRoundInput
	StateRoundSuccess
	StateRoundFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRoundPlayback:
		return "round_playback"
	case StateRoundInput:
		return "round_input"
	case StateRoundSuccess:
		return "round_success"
	case StateRoundFailure:
		return "round_failure"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the session is over. A failed round ends the
// game, there is no way back to Idle.
func (s State) IsTerminal() bool {
	return s == StateRoundFailure
}

var transitions = map[State][]State{
	StateIdle:          {StateRoundPlayback},
	StateRoundPlayback: {StateRoundInput},
	StateRoundInput:    {StateRoundSuccess, StateRoundFailure},
	StateRoundSuccess:  {StateRoundPlayback},
}

func (s State) canTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Outcome is the result of a single input poll.
type Outcome int

const (
	// OutcomePending means the round is still waiting for gestures.
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}
