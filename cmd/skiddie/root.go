package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skiddie/internal/app"
)

// cli carries the configuration shared by every command.
type cli struct {
	cfg app.Config
	err error
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	c.cfg, c.err = app.LoadConfig()

	root := &cobra.Command{
		Use:   "skiddie",
		Short: "Terminal typing games for aspiring hackers",
		Long: `skiddie is a collection of terminal minigames.

In Shell Scripter you copy randomly generated shell commands, quotes and
redirections included, until you have typed enough of them correctly.

Run without arguments to pick a game and a difficulty from a menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.err != nil {
				return c.err
			}
			return c.cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			sel, err := a.Launch(cmd.Context())
			if err != nil {
				return err
			}
			return playLoop(cmd, a, sel.Game, sel.Difficulty, nil)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&c.cfg.LogPath, "log", c.cfg.LogPath, "write JSON event logs to this file")
	f.BoolVar(&c.cfg.ASCIIOnly, "ascii", c.cfg.ASCIIOnly, "draw with ASCII characters only")
	f.BoolVar(&c.cfg.NoColor, "no-color", c.cfg.NoColor, "disable colors")
	f.BoolVar(&c.cfg.Debug, "debug", c.cfg.Debug, "log UI diagnostics to stderr")
	f.StringVar(&c.cfg.UI.StyleVariant, "style", c.cfg.UI.StyleVariant, "UI style: arcade, cozy or retro")
	f.StringVar(&c.cfg.UI.MotionLevel, "motion", c.cfg.UI.MotionLevel, "UI motion: full, reduced or off")
	f.StringVar(&c.cfg.ConfigDir, "config-dir", c.cfg.ConfigDir, "directory holding difficulty.yaml overrides")
	f.BoolVar(&c.cfg.Plain, "plain", c.cfg.Plain, "read answers as plain lines")
	f.Uint64Var(&c.cfg.Seed, "seed", c.cfg.Seed, "random seed; 0 picks one")
	f.StringVar(&c.cfg.Mode, "mode", c.cfg.Mode, "free, or daily for the same commands all day")

	root.AddCommand(
		newPlayCmd(c),
		newDescriptionCmd(c),
		newListCmd(c),
		newManCmd(root),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) (*app.App, error) {
	a, err := app.New(c.cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	return a, nil
}
