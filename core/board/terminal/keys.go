package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	A     key.Binding
	B     key.Binding
	Both  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "tilt down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "tilt left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "tilt right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "tilt up")),
		A:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "button A")),
		B:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "button B")),
		Both:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "A+B")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Both, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Left, k.Right, k.Up},
		{k.A, k.B, k.Both},
		{k.Help, k.Quit},
	}
}
