package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left         key.Binding
	Right        key.Binding
	Pick         key.Binding
	Cancel       key.Binding
	New          key.Binding
	Abort        key.Binding
	MoreColumns  key.Binding
	FewerColumns key.Binding
	MoreCapacity key.Binding
	LessCapacity key.Binding
	Scores       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Pick:         key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick/drop")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		New:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new puzzle")),
		Abort:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "abort")),
		MoreColumns:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more columns")),
		FewerColumns: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer columns")),
		MoreCapacity: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "taller")),
		LessCapacity: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shorter")),
		Scores:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.New, k.Scores, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pick, k.Cancel},
		{k.New, k.Abort, k.Scores},
		{k.MoreColumns, k.FewerColumns, k.MoreCapacity, k.LessCapacity},
		{k.Help, k.Quit},
	}
}
