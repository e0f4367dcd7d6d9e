package round

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaPrompter reads each line with a small inline bubbletea program.
type TeaPrompter struct {
	in       io.Reader
	out      io.Writer
	errStyle lipgloss.Style
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{
		in:       in,
		out:      out,
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (p *TeaPrompter) Prompt(ctx context.Context, marker string, check func(string) error) (string, error) {
	m := newPromptModel(marker, check, p.errStyle)
	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if ctx.Err() != nil {
		return "", interrupted(context.Cause(ctx))
	}
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return "", interrupted(err)
		}
		return "", err
	}
	pm, ok := final.(promptModel)
	if !ok || pm.interrupted {
		return "", ErrInterrupted
	}
	return pm.value, nil
}

type promptModel struct {
	input       textinput.Model
	marker      string
	check       func(string) error
	errStyle    lipgloss.Style
	errText     string
	value       string
	done        bool
	interrupted bool
}

func newPromptModel(marker string, check func(string) error, errStyle lipgloss.Style) promptModel {
	in := textinput.New()
	in.Prompt = marker
	in.Focus()
	return promptModel{input: in, marker: marker, check: check, errStyle: errStyle}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			if err := m.check(v); err != nil {
				m.errText = describeError(err)
				return m, nil
			}
			m.value = v
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return m.marker + m.value + "\n"
	}
	if m.interrupted {
		return "\n"
	}
	view := m.input.View()
	if m.errText != "" {
		view += "\n" + m.errStyle.Render(m.errText)
	}
	return view + "\n"
}
