package terminal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	simon "github.com/koscakluka/simon/core"
	"github.com/koscakluka/simon/core/display"
	"github.com/koscakluka/simon/core/events"
	"github.com/koscakluka/simon/core/gesture"
)

type model struct {
	board *Board
	keys  keyMap
	help  help.Model

	frame  display.Image
	banner string
	status string
	round  int
	width  int

	gameOver bool
}

func newModel(board *Board) model {
	return model{
		board:  board,
		keys:   defaultKeyMap(),
		help:   help.New(),
		status: "Press space (A+B) to start",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.frame = msg.image

	case bannerMsg:
		m.banner = msg.text

	case eventMsg:
		m.applyEvent(msg.event)

	case GameOverMsg:
		m.gameOver = true
		if msg.Err != nil {
			m.status = fmt.Sprintf("Stopped after %d rounds: %v", msg.Result.Rounds, msg.Err)
		} else {
			m.status = fmt.Sprintf("Game over, you completed %d rounds. Press q to quit", msg.Result.Rounds)
		}
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Down):
		m.board.Tilt(gesture.Down)
	case key.Matches(msg, m.keys.Left):
		m.board.Tilt(gesture.Left)
	case key.Matches(msg, m.keys.Right):
		m.board.Tilt(gesture.Right)
	case key.Matches(msg, m.keys.Up):
		m.board.Tilt(gesture.Up)
	case key.Matches(msg, m.keys.A):
		m.board.Press(simon.ButtonA)
	case key.Matches(msg, m.keys.B):
		m.board.Press(simon.ButtonB)
	case key.Matches(msg, m.keys.Both):
		m.board.Press(simon.ButtonA, simon.ButtonB)
	}
	return m, nil
}

func (m *model) applyEvent(event events.Event) {
	switch event := event.(type) {
	case events.GameStarted:
		m.status = "Get ready"
	case events.RoundStarted:
		m.round = event.Round
		m.status = fmt.Sprintf("Round %d: watch the sequence", event.Round)
	case events.PlaybackEnded:
		m.status = fmt.Sprintf("Round %d: your turn", m.round)
	case events.RoundSucceeded:
		m.status = fmt.Sprintf("Round %d complete", event.Round)
	case events.RoundFailed:
		m.status = fmt.Sprintf("Wrong at step %d: expected %s, got %s",
			event.Position+1, simon.Symbol(event.Expected), simon.Symbol(event.Got))
	case events.GameOver:
		m.gameOver = true
		m.status = fmt.Sprintf("Game over after %d rounds", event.Rounds)
	}
}

func (m model) View() string {
	return m.render()
}
