package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	About    key.Binding
	Skills   key.Binding
	Projects key.Binding
	Next     key.Binding
	Prev     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		About: key.NewBinding(
			key.WithKeys("1", "a"),
			key.WithHelp("1/a", "about")),
		Skills: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", "skills")),
		Projects: key.NewBinding(
			key.WithKeys("3", "p"),
			key.WithHelp("3/p", "projects")),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next")),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous")),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help")),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.About, k.Skills, k.Projects},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
