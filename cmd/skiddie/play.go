package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"skiddie/internal/app"
	"skiddie/internal/difficulty"
	"skiddie/internal/games"
	"skiddie/internal/games/shellscripter"
	"skiddie/internal/textfmt"
)

type playFlags struct {
	difficulty          string
	rounds              int
	minArgs             int
	maxArgs             int
	redirectProbability float64
	pipeProbability     float64
}

func newPlayCmd(c *cli) *cobra.Command {
	var pf playFlags
	cmd := &cobra.Command{
		Use:   "play GAME",
		Short: "Play a game",
		Long: `Play GAME at a difficulty preset. The argument flags override single
values of the preset for this run only.`,
		Example: `  skiddie play shell_scripter -d hard
  skiddie play shell_scripter --rounds 5 --max-args 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.Registry().Get(args[0]); err != nil {
				return err
			}

			d := difficulty.Normal
			switch {
			case pf.difficulty != "":
				if d, err = difficulty.Parse(pf.difficulty); err != nil {
					return err
				}
			case a.Interactive():
				if d, err = chooseDifficulty(); err != nil {
					return err
				}
			}
			return playLoop(cmd, a, args[0], d, overrides(cmd, pf))
		},
	}
	f := cmd.Flags()
	f.StringVarP(&pf.difficulty, "difficulty", "d", "", "difficulty: easy, normal or hard")
	f.IntVar(&pf.rounds, "rounds", 0, "commands to type correctly to win")
	f.IntVar(&pf.minArgs, "min-args", 0, "minimum optional arguments per command")
	f.IntVar(&pf.maxArgs, "max-args", 0, "maximum optional arguments per command")
	f.Float64Var(&pf.redirectProbability, "redirect-probability", 0, "chance a command redirects its output")
	f.Float64Var(&pf.pipeProbability, "pipe-probability", 0, "chance a redirect is a pipe")
	return cmd
}

// overrides collects the preset arguments set on the command line.
func overrides(cmd *cobra.Command, pf playFlags) difficulty.Args {
	out := difficulty.Args{}
	set := func(flag, key string, v any) {
		if cmd.Flags().Changed(flag) {
			out[key] = v
		}
	}
	set("rounds", shellscripter.KeyRoundsToWin, pf.rounds)
	set("min-args", shellscripter.KeyMinArgs, pf.minArgs)
	set("max-args", shellscripter.KeyMaxArgs, pf.maxArgs)
	set("redirect-probability", shellscripter.KeyRedirectProbability, pf.redirectProbability)
	set("pipe-probability", shellscripter.KeyPipeProbability, pf.pipeProbability)
	return out
}

func chooseDifficulty() (difficulty.Difficulty, error) {
	choice := difficulty.Normal.String()
	opts := make([]huh.Option[string], 0, len(difficulty.All))
	for _, d := range difficulty.All {
		opts = append(opts, huh.NewOption(d.Label(), d.String()))
	}
	err := huh.NewSelect[string]().
		Title("Difficulty").
		Options(opts...).
		Value(&choice).
		Run()
	if err != nil {
		return "", err
	}
	return difficulty.Parse(choice)
}

// playLoop plays game until the player declines another round. Outside a
// terminal it plays once.
func playLoop(cmd *cobra.Command, a *app.App, game string, d difficulty.Difficulty, args difficulty.Args) error {
	out := cmd.OutOrStdout()
	for {
		s, err := a.Play(cmd.Context(), game, d, args)
		if err != nil {
			return err
		}
		printSummary(out, s)
		if !a.Interactive() {
			return nil
		}
		again := false
		if err := huh.NewConfirm().Title("Play again?").Value(&again).Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func printSummary(w io.Writer, s *games.Session) {
	fmt.Fprintf(w, "Completed in %s\n", textfmt.Duration(s.Duration))
	fmt.Fprintf(w, "%s characters typed, %s mistakes\n",
		textfmt.Count(s.Stats.Characters), textfmt.Count(s.Stats.Mistakes))
}
