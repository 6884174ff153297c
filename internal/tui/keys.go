package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Rent     key.Binding
	Items    key.Binding
	Holidays key.Binding

	// Actions
	Select    key.Binding
	New       key.Binding
	Breakdown key.Binding

	// Movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Rent:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "rent")),
	Items:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "items")),
	Holidays:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "holidays")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Breakdown: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breakdown")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous year")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next year")),
}
