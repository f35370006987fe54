package events

const (
	KindSymbolPlayed  Kind = "round_playback.symbol_played"
	KindPlaybackEnded Kind = "round_playback.ended"
)

type SymbolPlayed struct {
	Base
	Index  int
	Symbol int
}

func NewSymbolPlayed(index, symbol int) SymbolPlayed {
	return SymbolPlayed{Base: NewBase(KindSymbolPlayed), Index: index, Symbol: symbol}
}

type PlaybackEnded struct{ Base }

func NewPlaybackEnded() PlaybackEnded {
	return PlaybackEnded{Base: NewBase(KindPlaybackEnded)}
}
