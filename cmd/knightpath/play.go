package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/board/terminal"
	"github.com/katalvlaran/knightpath/path"
	"github.com/katalvlaran/knightpath/traversal"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play on an interactive terminal board",
		Long:  `Draws the board in the terminal. Click a square and the knight walks there along the shortest path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grid()
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			defer screen.Fini()

			surface := terminal.New(screen, g)
			ctrl, err := traversal.New(g, path.NewFinder(g), surface, controllerOptions(cfg, log)...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = surface.Run(ctx, ctrl.OnCellClicked)
			// a started traversal always runs to completion
			ctrl.Wait()
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Int("start", -1, "Start cell of the knight (-1 for random)")
	return cmd
}
