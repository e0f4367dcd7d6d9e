package launcher

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skiddie/internal/difficulty"
	"skiddie/internal/nav"
	"skiddie/internal/textfmt"
	"skiddie/internal/ui"
)

const quitID = "quit"

// GameSelectScreen lists every game plus Quit.
type GameSelectScreen struct {
	l *Launcher
}

func (s *GameSelectScreen) RootContainer() nav.Container {
	labels := make([]*ui.SelectableLabel, 0, len(s.l.entries)+1)
	for _, e := range s.l.entries {
		labels = append(labels, ui.NewSelectableLabel(s.l.theme, e.Name, e.Title))
	}
	labels = append(labels, ui.NewSelectableLabel(s.l.theme, quitID, "Quit"))
	menu := ui.NewMenu(labels...)
	if s.l.selected != "" {
		menu.FocusID(s.l.selected)
	}
	return &gameSelectView{l: s.l, menu: menu}
}

type gameSelectView struct {
	l    *Launcher
	menu *ui.Menu
	size
}

func (v *gameSelectView) Init() tea.Cmd { return nil }

func (v *gameSelectView) Update(msg tea.Msg) (nav.Container, tea.Cmd) {
	if m, ok := msg.(ui.ActivatedMsg); ok {
		if m.ID == quitID {
			return v, tea.Quit
		}
		v.l.selected = m.ID
		return v, nav.Push(&GameOptionsScreen{l: v.l})
	}
	return v, v.menu.Update(msg)
}

func (v *gameSelectView) View() string {
	side := ""
	if v.menu.Focused() != quitID {
		side = v.l.description(v.menu.Focused(), v.sideWidth())
	}
	return v.render(v.l.theme, "Skiddie", "Games", v.menu, "About", side)
}

// GameOptionsScreen offers Play, Difficulty and Back for the selected game.
type GameOptionsScreen struct {
	l *Launcher
}

func (s *GameOptionsScreen) RootContainer() nav.Container {
	t := s.l.theme
	menu := ui.NewMenu(
		ui.NewSelectableLabel(t, "play", "Play"),
		ui.NewSelectableLabel(t, "difficulty", "Difficulty"),
		ui.NewSelectableLabel(t, "back", "Back"),
	)
	return &gameOptionsView{l: s.l, menu: menu}
}

type gameOptionsView struct {
	l    *Launcher
	menu *ui.Menu
	size
}

func (v *gameOptionsView) Init() tea.Cmd { return nil }

func (v *gameOptionsView) Update(msg tea.Msg) (nav.Container, tea.Cmd) {
	if m, ok := msg.(ui.ActivatedMsg); ok {
		switch m.ID {
		case "play":
			return v, ui.Exit(v.l.selection())
		case "difficulty":
			return v, nav.Float(&DifficultySelectScreen{l: v.l})
		case "back":
			return v, nav.Back
		}
		return v, nil
	}
	return v, v.menu.Update(msg)
}

func (v *gameOptionsView) View() string {
	game := v.l.selected
	d := v.l.Difficulty(game)
	side := []string{v.l.theme.Accent.Render("Difficulty: " + d.Label())}
	if table := v.presetTable(game, d); table != "" {
		side = append(side, "", table)
	}
	side = append(side, "", v.l.description(game, v.sideWidth()))

	title := game
	if e, ok := v.l.entry(game); ok {
		title = e.Title
	}
	return v.render(v.l.theme, title, "Options", v.menu, "Details", strings.Join(side, "\n"))
}

func (v *gameOptionsView) presetTable(game string, d difficulty.Difficulty) string {
	if v.l.opts.Presets == nil {
		return ""
	}
	args, err := v.l.opts.Presets.Args(game, d)
	if err != nil {
		return v.l.theme.Fail.Render(err.Error())
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprint(args[k])})
	}
	return v.l.theme.Muted.Render(textfmt.Table(rows, "  ", false))
}

// DifficultySelectScreen floats a radio dialog over the options screen.
type DifficultySelectScreen struct {
	l *Launcher
}

func (s *DifficultySelectScreen) RootContainer() nav.Container {
	opts := make([]ui.RadioOption, 0, len(difficulty.All))
	for _, d := range difficulty.All {
		opts = append(opts, ui.RadioOption{Value: d.String(), Label: d.Label()})
	}
	current := s.l.Difficulty(s.l.selected)
	return &difficultyView{
		l:      s.l,
		dialog: ui.NewRadioDialog(s.l.theme, "difficulty", "Select Difficulty", opts, current.String()),
	}
}

type difficultyView struct {
	l      *Launcher
	dialog *ui.RadioDialog
}

func (v *difficultyView) Init() tea.Cmd { return nil }

func (v *difficultyView) Update(msg tea.Msg) (nav.Container, tea.Cmd) {
	if m, ok := msg.(ui.ChoiceMsg); ok {
		if m.OK {
			if d, err := difficulty.Parse(m.Value); err == nil {
				v.l.SetDifficulty(v.l.selected, d)
			}
		}
		return v, nav.ClearFloating
	}
	return v, v.dialog.Update(msg)
}

func (v *difficultyView) View() string {
	return v.dialog.View()
}

// size is embedded by the full-screen views.
type size struct {
	w, h int
}

func (s *size) SetSize(width, height int) { s.w, s.h = width, height }

func (s *size) mode() ui.LayoutMode {
	if s.w == 0 && s.h == 0 {
		return ui.LayoutWide
	}
	return ui.DetermineLayoutMode(s.w, s.h)
}

func (s *size) sideWidth() int {
	if s.mode() == ui.LayoutWide {
		return max(20, s.width()-s.menuWidth()-4)
	}
	return max(20, s.width()-4)
}

func (s *size) width() int {
	if s.w == 0 {
		return 100
	}
	return s.w
}

func (s *size) height() int {
	if s.h == 0 {
		return 30
	}
	return s.h
}

func (s *size) menuWidth() int {
	return min(32, max(20, s.width()/3))
}

func (s *size) render(t ui.Theme, title, menuTitle string, menu *ui.Menu, sideTitle, side string) string {
	w, h := s.width(), s.height()
	if s.mode() == ui.LayoutTooSmall {
		msg := fmt.Sprintf("Terminal too small\nCurrent: %dx%d\nMinimum: 40x12", w, h)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, t.Fail.Render(msg))
	}
	header := t.Title.Render(title)
	bodyH := max(3, h-lipgloss.Height(header))
	if s.mode() == ui.LayoutWide {
		mw := s.menuWidth()
		menu.SetWidth(mw - 4)
		left := panel(t, menuTitle, menu.View(), mw, bodyH)
		right := panel(t, sideTitle, side, w-mw, bodyH)
		return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	menu.SetWidth(w - 4)
	top := panel(t, menuTitle, menu.View(), w, lipgloss.Height(menu.View())+4)
	bottom := panel(t, sideTitle, side, w, max(3, bodyH-lipgloss.Height(top)))
	return header + "\n" + top + "\n" + bottom
}

func panel(t ui.Theme, title, body string, width, height int) string {
	content := t.PanelTitle.Render(title) + "\n" + body
	return t.Panel.
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(max(3, height)).
		Render(content)
}

var (
	_ nav.Screen = (*GameSelectScreen)(nil)
	_ nav.Screen = (*GameOptionsScreen)(nil)
	_ nav.Screen = (*DifficultySelectScreen)(nil)
	_ ui.Sizer   = (*gameSelectView)(nil)
	_ ui.Sizer   = (*gameOptionsView)(nil)
)
