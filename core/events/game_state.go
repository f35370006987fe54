package events

const (
	KindStateChanged Kind = "game_state.changed"
	KindGameStarted  Kind = "game_state.started"
	KindGameOver     Kind = "game_state.over"
)

// StateChanged reports a transition between two engine states.
type StateChanged struct {
	Base
	From string
	To   string
}

func NewStateChanged(from, to string) StateChanged {
	return StateChanged{Base: NewBase(KindStateChanged), From: from, To: to}
}

// GameStarted marks the end of the idle wait.
type GameStarted struct {
	Base
	SessionID string
}

func NewGameStarted(sessionID string) GameStarted {
	return GameStarted{Base: NewBase(KindGameStarted), SessionID: sessionID}
}

// GameOver marks the end of the session.
type GameOver struct {
	Base
	SessionID string
	Rounds    int
}

func NewGameOver(sessionID string, rounds int) GameOver {
	return GameOver{Base: NewBase(KindGameOver), SessionID: sessionID, Rounds: rounds}
}
