package terminal

import (
	simon "github.com/koscakluka/simon/core"
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/events"
)

type frameMsg struct {
	image display.Image
}

type bannerMsg struct {
	text string
}

type eventMsg struct {
	event events.Event
}

// GameOverMsg tells the program the engine has returned.
type GameOverMsg struct {
	Result simon.Result
	Err    error
}
