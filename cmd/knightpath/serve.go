package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/httpapi"
	"github.com/katalvlaran/knightpath/internal/metrics"
	"github.com/katalvlaran/knightpath/path"
	"github.com/katalvlaran/knightpath/traversal"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP board server",
		Long:  `Serves the board as a JSON API. POST /cells/{cell}/click moves the knight; GET /board reads it back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
			}
			g, err := cfg.Grid()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			rec, err := metrics.New(reg)
			if err != nil {
				return err
			}

			state := board.NewState()
			finder := path.NewFinder(g)
			opts := append(controllerOptions(cfg, log), traversal.WithObserver(rec))
			ctrl, err := traversal.New(g, finder, state, opts...)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr: cfg.HTTP.Addr,
				Handler: httpapi.NewHandler(&httpapi.Server{
					Controller: ctrl,
					Board:      state,
					Finder:     finder,
					Gatherer:   reg,
					Logger:     log,
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				log.Info("http server listening", "addr", srv.Addr, "size", g.Size())
				serverErrors <- srv.ListenAndServe()
			}()

			// Channel to listen for interrupt or terminate signals.
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-shutdown:
				log.Info("shutting down", "signal", sig.String())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					log.Warn("graceful shutdown did not complete", "error", err)
					_ = srv.Close()
				}
				ctrl.Wait()
				log.Info("server stopped")
				return nil
			}
		},
	}
	cmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	cmd.Flags().Int("start", -1, "Start cell of the knight (-1 for random)")
	return cmd
}
