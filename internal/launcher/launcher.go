// Package launcher is the full-screen menu that picks a game and a
// difficulty before play starts.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"skiddie/internal/describe"
	"skiddie/internal/difficulty"
	"skiddie/internal/games"
	"skiddie/internal/ui"
)

// ErrNoSelection is returned by Run when the player leaves without choosing.
var ErrNoSelection = errors.New("no game selected")

// Selection is what the launcher exits with.
type Selection struct {
	Game       string
	Difficulty difficulty.Difficulty
}

// Entry is one game on the select screen.
type Entry struct {
	Name        string
	Title       string
	Description string
}

// EntriesFor builds entries for gs with their bundled descriptions. A game
// whose description is missing still gets an entry.
func EntriesFor(gs []games.Game) []Entry {
	out := make([]Entry, 0, len(gs))
	for _, g := range gs {
		text, err := describe.Get(g.DescriptionFile())
		if err != nil {
			text = ""
		}
		out = append(out, Entry{Name: g.Name(), Title: games.Title(g), Description: text})
	}
	return out
}

type Options struct {
	Theme ui.Theme
	// Styled renders descriptions as markdown.
	Styled    bool
	Presets   games.ArgsSource
	Motion    string
	Debug     bool
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Launcher holds the state shared by its screens.
type Launcher struct {
	opts    Options
	theme   ui.Theme
	entries []Entry
	// chosen difficulty per game; only kept for the life of the launcher
	difficulties map[string]difficulty.Difficulty
	selected     string
	rendered     map[renderKey]string
}

type renderKey struct {
	name  string
	width int
}

func New(entries []Entry, opts Options) *Launcher {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Launcher{
		opts:         opts,
		theme:        opts.Theme,
		entries:      sorted,
		difficulties: make(map[string]difficulty.Difficulty),
		rendered:     make(map[renderKey]string),
	}
}

// Screen is the default screen: the game menu.
func (l *Launcher) Screen() *GameSelectScreen {
	return &GameSelectScreen{l: l}
}

// Difficulty returns the difficulty chosen for game, Normal until changed.
func (l *Launcher) Difficulty(game string) difficulty.Difficulty {
	if d, ok := l.difficulties[game]; ok {
		return d
	}
	return difficulty.Normal
}

func (l *Launcher) SetDifficulty(game string, d difficulty.Difficulty) {
	l.difficulties[game] = d
}

// Selected is the game whose options are showing.
func (l *Launcher) Selected() string {
	return l.selected
}

func (l *Launcher) entry(name string) (Entry, bool) {
	for _, e := range l.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (l *Launcher) selection() Selection {
	return Selection{Game: l.selected, Difficulty: l.Difficulty(l.selected)}
}

// description renders the description of game for width, caching the result.
func (l *Launcher) description(game string, width int) string {
	e, ok := l.entry(game)
	if !ok || e.Description == "" {
		return l.theme.Muted.Render("No description.")
	}
	k := renderKey{name: game, width: width}
	if s, ok := l.rendered[k]; ok {
		return s
	}
	s, err := describe.Render(e.Description, width, l.opts.Styled)
	if err != nil {
		s, _ = describe.Render(e.Description, width, false)
	}
	l.rendered[k] = s
	return s
}

// Run shows the launcher until the player picks a game or quits.
func (l *Launcher) Run(ctx context.Context) (Selection, error) {
	root := ui.New(ui.Options{
		Theme:     l.theme,
		Debug:     l.opts.Debug,
		Motion:    l.opts.Motion,
		Input:     l.opts.Input,
		Output:    l.opts.Output,
		AltScreen: l.opts.AltScreen,
	}, l.Screen())
	result, err := root.Run(ctx)
	if err != nil {
		return Selection{}, err
	}
	sel, ok := result.(Selection)
	if !ok {
		return Selection{}, ErrNoSelection
	}
	if sel.Game == "" {
		return Selection{}, fmt.Errorf("%w: empty game", ErrNoSelection)
	}
	return sel, nil
}
