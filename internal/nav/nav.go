// Package nav keeps the screen history and floating overlays of the
// full-screen UI. Screens never hold the Navigator; they return commands
// that emit the messages in this package and the UI hands those messages
// back to Handle.
package nav

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnderflow is returned when going back from the only screen in history.
var ErrUnderflow = errors.New("navigation underflow: no previous screen")

// Container is the displayable root of a screen. Layouts compare containers
// by identity, so implementations should be pointer types.
type Container interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Container, tea.Cmd)
	View() string
}

// Screen produces a fresh root container each time it is asked. Producing
// one has no side effects.
type Screen interface {
	RootContainer() Container
}

// Layout is the display surface the Navigator attaches containers to.
type Layout interface {
	// SetRoot replaces the base container. Overlays stay attached.
	SetRoot(c Container)
	AddFloat(c Container)
	ClearFloats()
	Focus(c Container)
}

type Navigator struct {
	layout   Layout
	history  []Screen
	floating []Screen
}

// New displays def and makes it the bottom of the history.
func New(layout Layout, def Screen) *Navigator {
	n := &Navigator{layout: layout}
	n.SetScreen(def)
	return n
}

// SetScreen pushes s, attaches its container as the root and focuses it.
func (n *Navigator) SetScreen(s Screen) {
	c := s.RootContainer()
	n.layout.SetRoot(c)
	n.layout.Focus(c)
	n.history = append(n.history, s)
}

// SetPrevious discards the active screen and displays the one before it.
func (n *Navigator) SetPrevious() error {
	if len(n.history) < 2 {
		return ErrUnderflow
	}
	prev := n.history[len(n.history)-2]
	n.history = n.history[:len(n.history)-2]
	n.SetScreen(prev)
	return nil
}

// AddFloatingScreen layers s above the active screen and focuses it.
func (n *Navigator) AddFloatingScreen(s Screen) {
	c := s.RootContainer()
	n.layout.AddFloat(c)
	n.layout.Focus(c)
	n.floating = append(n.floating, s)
}

// ClearFloating removes every overlay, then rebuilds and focuses the active
// screen's container so it reflects anything the overlays changed.
func (n *Navigator) ClearFloating() {
	n.layout.ClearFloats()
	n.floating = nil
	c := n.Active().RootContainer()
	n.layout.SetRoot(c)
	n.layout.Focus(c)
}

func (n *Navigator) Active() Screen {
	return n.history[len(n.history)-1]
}

func (n *Navigator) Depth() int {
	return len(n.history)
}

func (n *Navigator) FloatingCount() int {
	return len(n.floating)
}

// Handle applies a navigation message. It reports whether msg was one.
func (n *Navigator) Handle(msg tea.Msg) (bool, error) {
	switch msg := msg.(type) {
	case PushMsg:
		n.SetScreen(msg.Screen)
	case BackMsg:
		return true, n.SetPrevious()
	case FloatMsg:
		n.AddFloatingScreen(msg.Screen)
	case ClearFloatingMsg:
		n.ClearFloating()
	default:
		return false, nil
	}
	return true, nil
}
