package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reset  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l", "tab"),
			key.WithHelp("n/→", "next zone"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left", "h", "shift+tab"),
			key.WithHelp("p/←", "previous zone"),
		),
		Reset: key.NewBinding(
			key.WithKeys("d", "home"),
			key.WithHelp("d", "default zone"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Reload, k.Help, k.Quit},
	}
}
