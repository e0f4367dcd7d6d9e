package main

import (
	"fmt"
	"strings"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"

	"skiddie/internal/games"
	"skiddie/internal/textfmt"
)

func newDescriptionCmd(c *cli) *cobra.Command {
	var presets bool
	cmd := &cobra.Command{
		Use:   "description GAME",
		Short: "Explain how a game is played",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			text, err := a.Description(args[0], textfmt.TerminalWidth(1))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, text)
			if !presets {
				return nil
			}
			table, err := a.PresetTable(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, table)
			return nil
		},
	}
	cmd.Flags().BoolVar(&presets, "presets", false, "also list the difficulty presets")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rows := [][]string{}
			for _, g := range a.Registry().List() {
				rows = append(rows, []string{g.Name(), games.Title(g)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(textfmt.Table(rows, "  ", false), "\n"))
			return nil
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:                   "man",
		Short:                 "Print the man page",
		Args:                  cobra.NoArgs,
		Hidden:                true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := mcobra.NewManPage(1, root)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), page.Build(roff.NewDocument()))
			return nil
		},
	}
}
