package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/timesight/timesight/internal/config"
	"github.com/timesight/timesight/internal/output"
	"github.com/timesight/timesight/internal/report"
	"github.com/timesight/timesight/internal/store"
)

// withGenerator loads config, opens the database read path, and hands a
// ready report.Generator to fn. Overrides run after the config is loaded
// and before the generator is built, so flag values can replace settings.
func withGenerator(fn func(cfg *config.Config, gen *report.Generator) error, overrides ...func(*config.Config)) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, o := range overrides {
		o(cfg)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	gen := report.NewGenerator(db, report.Options{
		Browsers:        cfg.Browsers,
		FocusMaxGap:     time.Duration(cfg.Focus.MaxGapSeconds) * time.Second,
		FocusMinSession: time.Duration(cfg.Focus.MinSessionSeconds) * time.Second,
		Thresholds: report.CategoryThresholds{
			Productive: time.Duration(cfg.Categories.ProductiveSeconds) * time.Second,
			Neutral:    time.Duration(cfg.Categories.NeutralSeconds) * time.Second,
		},
	})

	return fn(cfg, gen)
}

// reportWindow returns the half-open window covering the last n days,
// ending now and starting at local midnight n-1 days back.
func reportWindow(days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	now := time.Now()
	end := now
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
	return start, end
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
