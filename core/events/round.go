package events

const (
	KindRoundStarted   Kind = "round.started"
	KindRoundSucceeded Kind = "round.succeeded"
	KindRoundFailed    Kind = "round.failed"
)

// RoundStarted reports the symbol added to the sequence for a new round.
type RoundStarted struct {
	Base
	Round  int
	Added  int
	Length int
}

func NewRoundStarted(round, added, length int) RoundStarted {
	return RoundStarted{Base: NewBase(KindRoundStarted), Round: round, Added: added, Length: length}
}

type RoundSucceeded struct {
	Base
	Round int
}

func NewRoundSucceeded(round int) RoundSucceeded {
	return RoundSucceeded{Base: NewBase(KindRoundSucceeded), Round: round}
}

// RoundFailed reports the first gesture that did not match the sequence.
type RoundFailed struct {
	Base
	Round    int
	Position int
	Expected int
	Got      int
}

func NewRoundFailed(round, position, expected, got int) RoundFailed {
	return RoundFailed{
		Base:     NewBase(KindRoundFailed),
		Round:    round,
		Position: position,
		Expected: expected,
		Got:      got,
	}
}
