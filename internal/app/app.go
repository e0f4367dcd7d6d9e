// Package app wires configuration, logging, presets and the game registry
// into the operations the command line exposes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"skiddie/internal/describe"
	"skiddie/internal/difficulty"
	"skiddie/internal/games"
	"skiddie/internal/games/shellscripter"
	"skiddie/internal/launcher"
	"skiddie/internal/round"
	"skiddie/internal/telemetry"
	"skiddie/internal/textfmt"
	"skiddie/internal/ui"
)

type App struct {
	cfg Config

	logger    *telemetry.JSONLogger
	presets   *difficulty.Presets
	registry  *games.Registry
	sessionID string

	in  io.Reader
	out io.Writer
	now func() time.Time
}

// New reads the presets and registers the bundled games. in and out are the
// player's terminal.
func New(cfg Config, in io.Reader, out io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	overridePath, err := cfg.OverridePath()
	if err != nil {
		logger.Error("presets.override_path_failed", map[string]any{"error": err.Error()})
		overridePath = ""
	}
	presets := difficulty.NewPresets(overridePath)
	if err := presets.Read(); err != nil {
		_ = logger.Close()
		return nil, err
	}

	scripter, err := shellscripter.New()
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	registry, err := games.NewRegistry(scripter)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	sessionID := uuid.NewString()
	return &App{
		cfg:       cfg,
		logger:    logger.With(map[string]any{"session": sessionID}),
		presets:   presets,
		registry:  registry,
		sessionID: sessionID,
		in:        in,
		out:       out,
		now:       time.Now,
	}, nil
}

func (a *App) Close() {
	_ = a.logger.Close()
}

func (a *App) Config() Config                { return a.cfg }
func (a *App) Registry() *games.Registry     { return a.registry }
func (a *App) Presets() *difficulty.Presets  { return a.presets }
func (a *App) Logger() *telemetry.JSONLogger { return a.logger }

// Interactive reports whether the player is on a terminal and did not ask
// for plain line input.
func (a *App) Interactive() bool {
	return !a.cfg.Plain && textfmt.IsTerminal(a.in) && textfmt.IsTerminal(a.out)
}

// Styled reports whether output may carry color.
func (a *App) Styled() bool {
	return !a.cfg.NoColor && !a.cfg.ASCIIOnly && textfmt.IsTerminal(a.out)
}

func (a *App) Theme() ui.Theme {
	return ui.ThemeFor(a.cfg.UI.StyleVariant, a.cfg.ASCIIOnly, a.cfg.NoColor)
}

// Launch runs the full-screen launcher and returns the chosen game.
func (a *App) Launch(ctx context.Context) (launcher.Selection, error) {
	l := launcher.New(launcher.EntriesFor(a.registry.List()), launcher.Options{
		Theme:     a.Theme(),
		Styled:    a.Styled(),
		Presets:   a.presets,
		Motion:    a.cfg.UI.MotionLevel,
		Debug:     a.cfg.Debug,
		AltScreen: a.cfg.UI.AltScreen,
		Input:     a.in,
		Output:    a.out,
	})
	a.logger.Info("launcher.start", nil)
	sel, err := l.Run(ctx)
	if err != nil {
		if !errors.Is(err, launcher.ErrNoSelection) {
			a.logger.Error("launcher.failed", map[string]any{"error": err.Error()})
		}
		return sel, err
	}
	a.logger.Info("launcher.selected", map[string]any{"game": sel.Game, "difficulty": sel.Difficulty.String()})
	return sel, nil
}

// Play runs one session of game. The returned session is filled in even
// when err is non-nil.
func (a *App) Play(ctx context.Context, game string, d difficulty.Difficulty, overrides difficulty.Args) (*games.Session, error) {
	g, err := a.registry.Get(game)
	if err != nil {
		return nil, err
	}
	seed := seedFor(GameMode(a.cfg.Mode), a.cfg.Seed, a.now())
	s := &games.Session{Game: g, Difficulty: d, Overrides: overrides}
	log := a.logger.With(map[string]any{"game": g.Name(), "difficulty": d.String()})
	log.Info("session.start", map[string]any{"seed": seed, "mode": a.cfg.Mode})

	err = s.Play(ctx, a.env(seed, log), a.presets)
	fields := map[string]any{
		"completed":  s.Completed,
		"duration":   s.Duration.String(),
		"rounds":     s.Stats.Rounds,
		"mistakes":   s.Stats.Mistakes,
		"characters": s.Stats.Characters,
	}
	switch {
	case err == nil:
		log.Info("session.end", fields)
	case errors.Is(err, round.ErrInterrupted):
		log.Info("session.interrupted", fields)
	default:
		fields["error"] = err.Error()
		log.Error("session.failed", fields)
	}
	return s, err
}

func (a *App) env(seed uint64, log *telemetry.JSONLogger) games.Env {
	var prompter round.Prompter = round.NewLinePrompter(a.in, a.out)
	if a.Interactive() {
		prompter = round.NewTeaPrompter(a.in, a.out)
	}
	var highlight func(string) string
	if a.Styled() {
		highlight = textfmt.HighlightShell
	}
	return games.Env{
		Out:       a.out,
		Prompter:  prompter,
		Highlight: highlight,
		Logger:    log,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Description returns the rendered description of game for width columns.
func (a *App) Description(game string, width int) (string, error) {
	g, err := a.registry.Get(game)
	if err != nil {
		return "", err
	}
	text, err := describe.Get(g.DescriptionFile())
	if err != nil {
		return "", err
	}
	return describe.Render(text, width, a.Styled())
}

// PresetTable lists the arguments of every difficulty of game, one column
// per difficulty.
func (a *App) PresetTable(game string) (string, error) {
	g, err := a.registry.Get(game)
	if err != nil {
		return "", err
	}
	descriptions, err := a.presets.Descriptions(g.Name())
	if err != nil {
		return "", err
	}
	byDifficulty := make([]difficulty.Args, len(difficulty.All))
	for i, d := range difficulty.All {
		if byDifficulty[i], err = a.presets.Args(g.Name(), d); err != nil {
			return "", err
		}
	}
	header := []string{"argument"}
	for _, d := range difficulty.All {
		header = append(header, d.Label())
	}
	rows := make([][]string, 0, len(descriptions))
	for _, key := range sortedKeys(descriptions) {
		row := []string{key}
		for _, args := range byDifficulty {
			row = append(row, fmt.Sprint(args[key]))
		}
		rows = append(rows, row)
	}
	return textfmt.TableColumns(rows, len(rows), header, "  ", false), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
