package ui

import "github.com/charmbracelet/bubbles/key"

type rootKeyMap struct {
	Quit      key.Binding
	Interrupt key.Binding
	Back      key.Binding
	Focus     key.Binding
	Help      key.Binding
}

func newRootKeyMap() rootKeyMap {
	return rootKeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k rootKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Back, k.Quit, k.Help}
}

func (k rootKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Back}, {k.Quit, k.Interrupt, k.Help}}
}

// widgetKeys are shared by Menu and RadioDialog.
var widgetKeys = struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Left:   key.NewBinding(key.WithKeys("left", "h")),
	Right:  key.NewBinding(key.WithKeys("right", "l")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
}
