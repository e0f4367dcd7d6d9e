// Package games holds the game registry and times play sessions.
package games

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"skiddie/internal/difficulty"
	"skiddie/internal/round"
)

var ErrUnknownGame = errors.New("unknown game")

// Env is everything a game needs from its caller.
type Env struct {
	Out       io.Writer
	Prompter  round.Prompter
	Highlight func(string) string
	Logger    round.Logger
	Rand      *rand.Rand
}

type Game interface {
	// Name is the identifier used on the command line and in presets.
	Name() string
	// DescriptionFile names the bundled description of the game.
	DescriptionFile() string
	Play(ctx context.Context, env Env, args difficulty.Args) (round.Stats, error)
}

var titleCaser = cases.Title(language.English)

// Title turns a game name like "shell_scripter" into "Shell Scripter".
func Title(g Game) string {
	return titleCaser.String(strings.ReplaceAll(g.Name(), "_", " "))
}

type Registry struct {
	games map[string]Game
}

func NewRegistry(games ...Game) (*Registry, error) {
	r := &Registry{games: make(map[string]Game)}
	for _, g := range games {
		if err := r.Register(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(g Game) error {
	key := normalizeName(g.Name())
	if _, ok := r.games[key]; ok {
		return fmt.Errorf("game %q registered twice", g.Name())
	}
	r.games[key] = g
	return nil
}

// Get looks a game up by name, ignoring case and accepting dashes for underscores.
func (r *Registry) Get(name string) (Game, error) {
	g, ok := r.games[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, name)
	}
	return g, nil
}

// List returns every game sorted by name.
func (r *Registry) List() []Game {
	out := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// ArgsSource resolves preset arguments; *difficulty.Presets implements it.
type ArgsSource interface {
	Args(game string, d difficulty.Difficulty) (difficulty.Args, error)
}

// Session is one timed play of a game.
type Session struct {
	Game       Game
	Difficulty difficulty.Difficulty
	// Overrides replace individual preset arguments.
	Overrides difficulty.Args

	Duration  time.Duration
	Completed bool
	Stats     round.Stats
}

// Play resolves the preset, applies overrides and plays the game, recording
// how long it took on the monotonic clock.
func (s *Session) Play(ctx context.Context, env Env, presets ArgsSource) error {
	args, err := presets.Args(s.Game.Name(), s.Difficulty)
	if err != nil {
		return err
	}
	for k, v := range s.Overrides {
		args[k] = v
	}
	start := time.Now()
	stats, err := s.Game.Play(ctx, env, args)
	s.Duration = time.Since(start)
	s.Stats = stats
	s.Completed = err == nil
	return err
}
