package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harmonic/launchkit/internal/registry"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile records against the package registry once",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
			stats, err := e.coord.Sync(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("installed %d, upserted %d, removed %d\n",
				stats.Installed, stats.Upserted, stats.Removed)
			return nil
		}),
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the registry and reconcile on changes",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Catch up before waiting for events.
			if _, err := e.coord.Sync(ctx); err != nil {
				return err
			}

			debounce := time.Duration(e.cfg.Watcher.DebounceMS) * time.Millisecond
			w, err := registry.NewWatcher(e.reg.Path(), debounce, e.log, func(ctx context.Context) {
				if _, err := e.coord.Sync(ctx); err != nil {
					e.log.Warn("reconcile failed", zap.Error(err))
				}
			})
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			w.Stop()
			return nil
		}),
	}
}
