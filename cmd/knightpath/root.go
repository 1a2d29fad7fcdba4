package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/internal/config"
	"github.com/katalvlaran/knightpath/internal/logging"
	"github.com/katalvlaran/knightpath/traversal"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "knightpath",
		Short:         "Move a knight along the shortest path to any square",
		Long:          `knightpath finds the fewest knight moves between two squares and animates the knight along them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().Int("size", grid.DefaultSize, "Board dimension N (N×N squares)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd(), newServeCmd(), newPathCmd(), newMovesCmd())
	return root
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("size") {
		cfg.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if f := cmd.Flags().Lookup("start"); f != nil && f.Changed {
		cfg.Start, _ = cmd.Flags().GetInt("start")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level), nil
}

// controllerOptions maps config onto traversal options.
func controllerOptions(cfg config.Config, log *slog.Logger) []traversal.Option {
	opts := []traversal.Option{
		traversal.WithStepDelay(time.Duration(cfg.StepDelay)),
		traversal.WithEdgeDelay(time.Duration(cfg.EdgeDelay)),
		traversal.WithLogger(log),
	}
	if cfg.Start != config.RandomStart {
		opts = append(opts, traversal.WithStart(grid.Cell(cfg.Start)))
	}
	return opts
}

// parseCell reads a cell index argument and checks it against g.
func parseCell(g grid.Grid, arg string) (grid.Cell, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("cell %q is not an integer", arg)
	}
	c := grid.Cell(n)
	if err := g.Validate(c); err != nil {
		return 0, err
	}
	return c, nil
}
