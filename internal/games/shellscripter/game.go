// Package shellscripter is the typing game where the player copies randomly
// generated shell commands.
package shellscripter

import (
	"context"

	"skiddie/internal/difficulty"
	"skiddie/internal/games"
	"skiddie/internal/generate"
	"skiddie/internal/round"
)

const Name = "shell_scripter"

type Game struct {
	catalog Catalog
}

// New returns the game backed by the bundled catalog.
func New() (*Game, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(c), nil
}

func NewWithCatalog(c Catalog) *Game {
	return &Game{catalog: c}
}

func (g *Game) Name() string            { return Name }
func (g *Game) DescriptionFile() string { return Name + ".md" }

// Config turns settings into a generator config over the catalog.
func (g *Game) Config(s Settings) generate.Config {
	return generate.Config{
		Templates:           g.catalog.Commands,
		MinArgs:             s.MinArgs,
		MaxArgs:             s.MaxArgs,
		RedirectProbability: s.RedirectProbability,
		PipeProbability:     s.PipeProbability,
		ArgNames:            g.catalog.Pools["input_files"],
		OutputNames:         g.catalog.Pools["output_files"],
	}
}

func (g *Game) Play(ctx context.Context, env games.Env, args difficulty.Args) (round.Stats, error) {
	s, err := SettingsFrom(args)
	if err != nil {
		return round.Stats{}, err
	}
	loop := round.New(round.Options{
		Out:       env.Out,
		Prompter:  env.Prompter,
		Highlight: env.Highlight,
		Logger:    env.Logger,
		Rand:      env.Rand,
	})
	return loop.Play(ctx, s.RoundsToWin, g.Config(s))
}

var _ games.Game = (*Game)(nil)
