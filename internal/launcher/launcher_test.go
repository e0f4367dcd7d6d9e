package launcher

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skiddie/internal/difficulty"
	"skiddie/internal/ui"
)

type fixedPresets map[difficulty.Difficulty]difficulty.Args

func (p fixedPresets) Args(_ string, d difficulty.Difficulty) (difficulty.Args, error) {
	return p[d], nil
}

// harness runs a ui.Root without a terminal, delivering every message the
// commands produce until none are left.
type harness struct {
	t    *testing.T
	root *ui.Root
	exit *ui.ExitMsg
	quit bool
}

func newHarness(t *testing.T, l *Launcher) *harness {
	h := &harness{t: t, root: ui.New(ui.Options{Theme: l.theme, Motion: "off"}, l.Screen())}
	h.run(h.root.Init())
	return h
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.root.Update(msg)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	case ui.ExitMsg:
		h.exit = &msg
		h.send(msg)
	default:
		h.send(msg)
	}
}

func (h *harness) key(k tea.KeyType) {
	h.send(tea.KeyMsg{Type: k})
}

func newLauncher(opts Options) *Launcher {
	opts.Theme = ui.ThemeFor("arcade", true, true)
	return New([]Entry{
		{Name: "shell_scripter", Title: "Shell Scripter", Description: "Type the commands you see."},
		{Name: "hash_cracker", Title: "Hash Cracker", Description: "Crack hashes."},
	}, opts)
}

func TestLauncherFlowYieldsSelection(t *testing.T) {
	l := newLauncher(Options{})
	h := newHarness(t, l)

	// hash_cracker sorts first
	h.key(tea.KeyDown)
	assert.Contains(t, h.root.View(), "Type the commands you see.")
	h.key(tea.KeyEnter)
	require.Equal(t, 2, h.root.Navigator().Depth())
	assert.Equal(t, "shell_scripter", l.Selected())
	assert.Contains(t, h.root.View(), "Difficulty: Normal")

	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)
	require.Equal(t, 1, h.root.Navigator().FloatingCount())
	assert.Contains(t, h.root.View(), "Select Difficulty")

	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)
	h.key(tea.KeyTab)
	h.key(tea.KeyEnter)
	require.Zero(t, h.root.Navigator().FloatingCount())
	assert.Contains(t, h.root.View(), "Difficulty: Hard")

	h.key(tea.KeyEnter)
	require.NotNil(t, h.exit)
	assert.Equal(t, Selection{Game: "shell_scripter", Difficulty: difficulty.Hard}, h.exit.Result)
	assert.True(t, h.quit)
}

func TestCancelKeepsDifficulty(t *testing.T) {
	l := newLauncher(Options{})
	h := newHarness(t, l)
	h.key(tea.KeyEnter)
	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)

	h.key(tea.KeyUp)
	h.key(tea.KeyEnter)
	h.key(tea.KeyShiftTab)
	h.key(tea.KeyEnter)
	require.Zero(t, h.root.Navigator().FloatingCount())
	assert.Equal(t, difficulty.Normal, l.Difficulty("hash_cracker"))
	assert.Equal(t, difficulty.Normal, l.Difficulty("shell_scripter"))
}

func TestBackAndEscReturnToGameList(t *testing.T) {
	l := newLauncher(Options{})
	h := newHarness(t, l)
	h.key(tea.KeyEnter)
	require.Equal(t, 2, h.root.Navigator().Depth())

	h.key(tea.KeyEsc)
	require.Equal(t, 1, h.root.Navigator().Depth())
	assert.Contains(t, h.root.View(), "Games")

	h.key(tea.KeyEnter)
	h.key(tea.KeyUp)
	h.key(tea.KeyEnter)
	require.Equal(t, 1, h.root.Navigator().Depth())
	assert.Nil(t, h.exit)
}

func TestQuitEntryStopsWithoutSelection(t *testing.T) {
	l := newLauncher(Options{})
	h := newHarness(t, l)
	h.key(tea.KeyUp)
	h.key(tea.KeyEnter)
	assert.True(t, h.quit)
	assert.Nil(t, h.exit)
}

func TestDifficultyIsRememberedPerGame(t *testing.T) {
	l := newLauncher(Options{})
	l.SetDifficulty("hash_cracker", difficulty.Easy)
	assert.Equal(t, difficulty.Easy, l.Difficulty("hash_cracker"))
	assert.Equal(t, difficulty.Normal, l.Difficulty("shell_scripter"))
}

func TestOptionsShowPresetTable(t *testing.T) {
	l := newLauncher(Options{Presets: fixedPresets{
		difficulty.Normal: {"rounds_to_win": 15, "max_args": 4},
	}})
	h := newHarness(t, l)
	h.key(tea.KeyEnter)
	view := h.root.View()
	assert.Contains(t, view, "rounds_to_win")
	assert.Contains(t, view, "15")
}

func TestTooSmallTerminal(t *testing.T) {
	l := newLauncher(Options{})
	h := newHarness(t, l)
	h.send(tea.WindowSizeMsg{Width: 30, Height: 8})
	assert.True(t, strings.Contains(h.root.View(), "Terminal too small"))

	h.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, h.root.View(), "Games")
}
