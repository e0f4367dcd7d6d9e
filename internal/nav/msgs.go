package nav

import tea "github.com/charmbracelet/bubbletea"

type (
	PushMsg          struct{ Screen Screen }
	BackMsg          struct{}
	FloatMsg         struct{ Screen Screen }
	ClearFloatingMsg struct{}
)

func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

func Back() tea.Msg { return BackMsg{} }

func Float(s Screen) tea.Cmd {
	return func() tea.Msg { return FloatMsg{Screen: s} }
}

func ClearFloating() tea.Msg { return ClearFloatingMsg{} }
