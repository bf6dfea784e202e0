package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/store"
	"github.com/timesight/timesight/internal/tracker"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record foreground activity into the local database",
	Long: `Poll the desktop for the foreground window and input activity, and write
activity intervals, input metrics, and idle periods into the database.
Runs until interrupted; pending state is flushed on shutdown.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := buildLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	sampler, err := tracker.NewPlatformSampler()
	if err != nil {
		return fmt.Errorf("starting tracker: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tr := tracker.New(sampler, db, tracker.Config{
		PollInterval:  time.Duration(cfg.Tracker.PollSeconds) * time.Second,
		FlushInterval: time.Duration(cfg.Tracker.FlushSeconds) * time.Second,
		IdleThreshold: time.Duration(cfg.Tracker.IdleThresholdSeconds) * time.Second,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("timesight tracking started, press Ctrl-C to stop")
	if err := tr.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildLogger returns the tracker logger. Verbose mode enables debug
// level development output.
func buildLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
