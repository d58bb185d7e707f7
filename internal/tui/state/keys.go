package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Jump  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("right", "down", "l", "j", "n", "pgdown"), key.WithHelp("→/l", "next")),
		Prev:  key.NewBinding(key.WithKeys("left", "up", "h", "k", "p", "pgup"), key.WithHelp("←/h", "prev")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Jump:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to page")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last, k.Jump},
		{k.Help, k.Quit},
	}
}
