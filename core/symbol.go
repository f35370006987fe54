package simon

import (
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/gesture"
)

// Symbol is one of the four game tokens. Each is bound to one tilt gesture,
// one image and one tone.
type Symbol int

const (
	SymbolDown Symbol = iota
	SymbolLeft
	SymbolRight
	SymbolUp
)

const SymbolCount = 4

type symbolBinding struct {
	gesture gesture.Gesture
	image   display.Image
	tone    int
}

// symbolTable follows gesture.Order(), so symbol indexes match poll priority.
var symbolTable = [SymbolCount]symbolBinding{
	SymbolDown:  {gesture: gesture.Down, image: display.MustParseImage("69996:06960:00600:00000:00000"), tone: 262},
	SymbolLeft:  {gesture: gesture.Left, image: display.MustParseImage("60000:96000:99600:96000:60000"), tone: 330},
	SymbolRight: {gesture: gesture.Right, image: display.MustParseImage("00006:00069:00699:00069:00006"), tone: 392},
	SymbolUp:    {gesture: gesture.Up, image: display.MustParseImage("00000:00000:00600:06960:69996"), tone: 523},
}

// Symbols returns every symbol in poll priority order.
func Symbols() []Symbol {
	return []Symbol{SymbolDown, SymbolLeft, SymbolRight, SymbolUp}
}

func (s Symbol) Valid() bool {
	return s >= 0 && s < SymbolCount
}

func (s Symbol) Gesture() gesture.Gesture {
	if !s.Valid() {
		return ""
	}
	return symbolTable[s].gesture
}

func (s Symbol) Image() display.Image {
	if !s.Valid() {
		return display.Blank
	}
	return symbolTable[s].image
}

// Tone is the symbol's pitch in Hz.
func (s Symbol) Tone() int {
	if !s.Valid() {
		return 0
	}
	return symbolTable[s].tone
}

func (s Symbol) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return symbolTable[s].gesture.String()
}

// SymbolForGesture maps a gesture back to its symbol.
func SymbolForGesture(g gesture.Gesture) (Symbol, bool) {
	for i, binding := range symbolTable {
		if binding.gesture == g {
			return Symbol(i), true
		}
	}
	return 0, false
}
