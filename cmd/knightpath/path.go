package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/knight"
	"github.com/katalvlaran/knightpath/path"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest knight path between two cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grid()
			if err != nil {
				return err
			}
			from, err := parseCell(g, args[0])
			if err != nil {
				return err
			}
			to, err := parseCell(g, args[1])
			if err != nil {
				return err
			}

			p, err := path.NewFinder(g).ShortestPath(from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Format(g))
			fmt.Fprintf(out, "%d moves\n", p.Moves())
			return nil
		},
	}
}

func newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves CELL",
		Short: "List the legal knight moves from a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grid()
			if err != nil {
				return err
			}
			c, err := parseCell(g, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range knight.MovesFrom(g, c) {
				fmt.Fprintf(out, "%d %s\n", m, g.Label(m))
			}
			return nil
		},
	}
}
