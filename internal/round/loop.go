// Package round runs the generate, display, read and validate cycle shared by
// the typing games.
package round

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"skiddie/internal/generate"
	"skiddie/internal/textfmt"
)

// DefaultMarker precedes every displayed command and every line of input.
const DefaultMarker = "$ "

// Prompter reads one line of player input. check is called on every
// submitted line; a non-nil error is shown to the player and the same line
// is asked for again.
type Prompter interface {
	Prompt(ctx context.Context, marker string, check func(string) error) (string, error)
}

type Logger interface {
	Info(msg string, fields map[string]any)
}

type Options struct {
	Out       io.Writer
	Prompter  Prompter
	Marker    string
	Highlight func(string) string
	Logger    Logger
	Rand      *rand.Rand
	// Congratulate prints the win banner. Defaults to textfmt.Correct.
	Congratulate func(io.Writer) error
}

// Stats summarizes a finished or interrupted loop.
type Stats struct {
	Rounds     int
	Mistakes   int
	Characters int
	Elapsed    time.Duration
}

type Loop struct {
	out          io.Writer
	prompter     Prompter
	marker       string
	highlight    func(string) string
	log          Logger
	rng          *rand.Rand
	congratulate func(io.Writer) error
}

func New(opts Options) *Loop {
	l := &Loop{
		out:          opts.Out,
		prompter:     opts.Prompter,
		marker:       opts.Marker,
		highlight:    opts.Highlight,
		log:          opts.Logger,
		rng:          opts.Rand,
		congratulate: opts.Congratulate,
	}
	if l.out == nil {
		l.out = io.Discard
	}
	if l.marker == "" {
		l.marker = DefaultMarker
	}
	if l.highlight == nil {
		l.highlight = func(s string) string { return s }
	}
	if l.log == nil {
		l.log = nopLogger{}
	}
	if l.rng == nil {
		now := uint64(time.Now().UnixNano())
		l.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	if l.congratulate == nil {
		l.congratulate = textfmt.Correct
	}
	return l
}

// Play builds a generator from cfg and runs roundsToWin rounds with it.
func (l *Loop) Play(ctx context.Context, roundsToWin int, cfg generate.Config) (Stats, error) {
	if roundsToWin < 1 {
		return Stats{}, fmt.Errorf("%w: rounds to win must be >= 1 (got %d)", ErrConfig, roundsToWin)
	}
	gen, err := generate.New(cfg, l.rng)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return l.Run(ctx, roundsToWin, gen)
}

// Run plays roundsToWin rounds with items from src. A round only counts once
// the player types the item exactly.
func (l *Loop) Run(ctx context.Context, roundsToWin int, src generate.Source) (stats Stats, err error) {
	if roundsToWin < 1 {
		return stats, fmt.Errorf("%w: rounds to win must be >= 1 (got %d)", ErrConfig, roundsToWin)
	}
	if l.prompter == nil {
		return stats, fmt.Errorf("%w: no prompter", ErrConfig)
	}
	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	for stats.Rounds < roundsToWin {
		if err := ctx.Err(); err != nil {
			return stats, interrupted(context.Cause(ctx))
		}
		expected := src.Generate().Render()
		if _, err := fmt.Fprintln(l.out, l.marker+l.highlight(expected)); err != nil {
			return stats, err
		}

		input, err := l.prompter.Prompt(ctx, l.marker, func(got string) error {
			if got == expected {
				return nil
			}
			stats.Mistakes++
			return newMismatch(expected, got)
		})
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				return stats, err
			}
			if ctx.Err() != nil {
				return stats, interrupted(context.Cause(ctx))
			}
			return stats, err
		}

		stats.Rounds++
		stats.Characters += utf8.RuneCountInString(input)
		l.log.Info("round_passed", map[string]any{"round": stats.Rounds, "mistakes": stats.Mistakes})
		if _, err := fmt.Fprintln(l.out); err != nil {
			return stats, err
		}
	}

	if err := l.congratulate(l.out); err != nil {
		return stats, err
	}
	return stats, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, map[string]any) {}
