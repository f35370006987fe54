package events

// KindGuessRecorded identifies a gesture appended to the guess.
const KindGuessRecorded Kind = "round_input.guess_recorded"

// GuessRecorded carries the appended symbol together with the symbol the
// sequence expects at that position.
type GuessRecorded struct {
	Base
	Position int
	Symbol   int
	Expected int
}

func NewGuessRecorded(position, symbol, expected int) GuessRecorded {
	return GuessRecorded{Base: NewBase(KindGuessRecorded), Position: position, Symbol: symbol, Expected: expected}
}

// Matches reports whether the recorded symbol is the expected one.
func (e GuessRecorded) Matches() bool {
	return e.Symbol == e.Expected
}
