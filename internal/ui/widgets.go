package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ActivatedMsg is emitted when a SelectableLabel is activated.
type ActivatedMsg struct {
	ID string
}

// ChoiceMsg is emitted when a RadioDialog is confirmed or cancelled.
type ChoiceMsg struct {
	ID    string
	Value string
	OK    bool
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// SelectableLabel is a left-aligned focusable line of text.
type SelectableLabel struct {
	ID      string
	Text    string
	theme   Theme
	focused bool
}

func NewSelectableLabel(theme Theme, id, text string) *SelectableLabel {
	return &SelectableLabel{ID: id, Text: text, theme: theme}
}

func (l *SelectableLabel) Focus()        { l.focused = true }
func (l *SelectableLabel) Blur()         { l.focused = false }
func (l *SelectableLabel) Focused() bool { return l.focused }

// Update emits ActivatedMsg on enter or space while focused.
func (l *SelectableLabel) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !l.focused || !key.Matches(k, widgetKeys.Select) {
		return nil
	}
	return emit(ActivatedMsg{ID: l.ID})
}

func (l *SelectableLabel) View(width int) string {
	style := l.theme.Item
	if l.focused {
		style = l.theme.ItemFocused
	}
	text := " " + l.Text
	if width > 0 {
		text = padRune(trimForWidth(text, width), width)
	}
	return style.Render(text)
}

// Menu is a vertical list of labels with one focused entry.
type Menu struct {
	labels []*SelectableLabel
	cursor int
	width  int
}

func NewMenu(labels ...*SelectableLabel) *Menu {
	m := &Menu{labels: labels}
	m.focus(0)
	return m
}

// Focused returns the ID of the focused label.
func (m *Menu) Focused() string {
	if len(m.labels) == 0 {
		return ""
	}
	return m.labels[m.cursor].ID
}

// FocusID moves focus to the label with id, if present.
func (m *Menu) FocusID(id string) {
	for i, l := range m.labels {
		if l.ID == id {
			m.focus(i)
			return
		}
	}
}

func (m *Menu) SetWidth(w int) { m.width = w }

func (m *Menu) focus(i int) {
	if len(m.labels) == 0 {
		return
	}
	m.labels[m.cursor].Blur()
	m.cursor = wrapIndex(i, len(m.labels))
	m.labels[m.cursor].Focus()
}

func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.labels) == 0 {
		return nil
	}
	switch {
	case key.Matches(k, widgetKeys.Up, widgetKeys.Prev):
		m.focus(m.cursor - 1)
	case key.Matches(k, widgetKeys.Down, widgetKeys.Next):
		m.focus(m.cursor + 1)
	default:
		return m.labels[m.cursor].Update(msg)
	}
	return nil
}

func (m *Menu) View() string {
	width := m.width
	for _, l := range m.labels {
		width = max(width, lipgloss.Width(l.Text)+2)
	}
	lines := make([]string, len(m.labels))
	for i, l := range m.labels {
		lines[i] = l.View(width)
	}
	return strings.Join(lines, "\n")
}

type RadioOption struct {
	Value string
	Label string
}

const (
	radioOptions = iota
	radioOkay
	radioCancel
)

// RadioDialog asks for one of several options and confirms with Okay or Cancel.
type RadioDialog struct {
	ID       string
	Title    string
	theme    Theme
	options  []RadioOption
	selected int
	cursor   int
	area     int
}

// NewRadioDialog starts with the option whose value is current selected.
func NewRadioDialog(theme Theme, id, title string, options []RadioOption, current string) *RadioDialog {
	d := &RadioDialog{ID: id, Title: title, theme: theme, options: options}
	for i, o := range options {
		if o.Value == current {
			d.selected = i
			d.cursor = i
		}
	}
	return d
}

func (d *RadioDialog) Selected() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.selected].Value
}

func (d *RadioDialog) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, widgetKeys.Next):
		d.area = (d.area + 1) % 3
	case key.Matches(k, widgetKeys.Prev):
		d.area = (d.area + 2) % 3
	case d.area == radioOptions && key.Matches(k, widgetKeys.Up):
		d.cursor = wrapIndex(d.cursor-1, len(d.options))
	case d.area == radioOptions && key.Matches(k, widgetKeys.Down):
		d.cursor = wrapIndex(d.cursor+1, len(d.options))
	case d.area != radioOptions && key.Matches(k, widgetKeys.Left, widgetKeys.Right):
		if d.area == radioOkay {
			d.area = radioCancel
		} else {
			d.area = radioOkay
		}
	case key.Matches(k, widgetKeys.Select):
		switch d.area {
		case radioOkay:
			return emit(ChoiceMsg{ID: d.ID, Value: d.Selected(), OK: true})
		case radioCancel:
			return emit(ChoiceMsg{ID: d.ID})
		default:
			d.selected = d.cursor
		}
	}
	return nil
}

func (d *RadioDialog) View() string {
	lines := []string{d.theme.DialogTitle.Render(d.Title), ""}
	for i, o := range d.options {
		mark := d.theme.Marks[0]
		if i == d.selected {
			mark = d.theme.Marks[1]
		}
		style := d.theme.Item
		if d.area == radioOptions && i == d.cursor {
			style = d.theme.ItemFocused
		}
		lines = append(lines, style.Render(mark+" "+o.Label))
	}
	okay, cancel := d.theme.Button, d.theme.Button
	switch d.area {
	case radioOkay:
		okay = d.theme.ButtonFocused
	case radioCancel:
		cancel = d.theme.ButtonFocused
	}
	lines = append(lines, "", okay.Render("< Okay >")+"  "+cancel.Render("< Cancel >"))
	return d.theme.Dialog.Render(strings.Join(lines, "\n"))
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
