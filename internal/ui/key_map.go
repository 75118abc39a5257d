package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	nextFilter key.Binding
	left       key.Binding
	right      key.Binding
	up         key.Binding
	down       key.Binding
	dataView   key.Binding
	chartsView key.Binding
	rawView    key.Binding
	animate    key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		nextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		dataView:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "data")),
		chartsView: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "charts")),
		rawView:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "raw data")),
		animate:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animate")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextFilter, k.dataView, k.chartsView, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextFilter, k.left, k.right},
		{k.dataView, k.chartsView, k.rawView},
		{k.animate, k.quit},
	}
}
