package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/store"
)

// DataSource is the read-only collaborator reports are computed from. All
// three queries cover the half-open window [start, end); implementations
// must return rows overlapping the window. The aggregation result is the
// same whether or not rows are pre-filtered. *store.DB satisfies the
// interface; tests use in-memory fixtures.
type DataSource interface {
	ActivityIntervals(ctx context.Context, start, end time.Time) ([]store.ActivityInterval, error)
	IdlePeriods(ctx context.Context, start, end time.Time) ([]store.IdlePeriod, error)
	InputSamples(ctx context.Context, start, end time.Time) ([]store.InputSample, error)
}

// Options tunes report policies. Zero values fall back to defaults.
type Options struct {
	// Browsers lists the executable names whose window titles carry a
	// website signal.
	Browsers []string

	// FocusMaxGap is the largest sample gap that still extends a focus
	// session.
	FocusMaxGap time.Duration

	// FocusMinSession is the shortest focus session worth reporting.
	FocusMinSession time.Duration

	// Thresholds classify daily active totals.
	Thresholds CategoryThresholds
}

// Generator bundles a DataSource with report policies. Each method owns
// its working set completely, so concurrent calls for different windows
// need no coordination.
type Generator struct {
	src        DataSource
	browsers   map[string]bool
	maxGap     time.Duration
	minSession time.Duration
	thresholds CategoryThresholds
}

// NewGenerator builds a Generator, applying defaults for any unset option.
func NewGenerator(src DataSource, opts Options) *Generator {
	g := &Generator{
		src:        src,
		browsers:   BrowserSet(opts.Browsers),
		maxGap:     opts.FocusMaxGap,
		minSession: opts.FocusMinSession,
		thresholds: opts.Thresholds,
	}
	if g.maxGap <= 0 {
		g.maxGap = DefaultFocusMaxGap
	}
	if g.minSession <= 0 {
		g.minSession = DefaultFocusMinSession
	}
	if g.thresholds.Productive <= 0 {
		g.thresholds = DefaultThresholds
	}
	return g
}

// fetchActivityAndIdle retrieves both interval streams for the window
// concurrently. Fetching is the only suspension point in a report; the
// aggregation that follows is pure CPU work.
func (g *Generator) fetchActivityAndIdle(ctx context.Context, start, end time.Time) ([]store.ActivityInterval, []store.IdlePeriod, error) {
	var (
		acts  []store.ActivityInterval
		idles []store.IdlePeriod
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		acts, err = g.src.ActivityIntervals(ctx, start, end)
		return err
	})
	eg.Go(func() error {
		var err error
		idles, err = g.src.IdlePeriods(ctx, start, end)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return acts, idles, nil
}

// Usage produces the per-bucket-per-app duration table for the window.
func (g *Generator) Usage(ctx context.Context, start, end time.Time, gran interval.Granularity) ([]BucketUsage, error) {
	acts, idles, err := g.fetchActivityAndIdle(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return AggregateUsage(acts, idles, gran), nil
}

// DailyCategories produces per-day active totals with category labels.
func (g *Generator) DailyCategories(ctx context.Context, start, end time.Time) ([]DailyActivity, error) {
	usage, err := g.Usage(ctx, start, end, interval.Daily)
	if err != nil {
		return nil, err
	}
	return ClassifyDays(usage, g.thresholds), nil
}

// Heatmap produces day-by-hour activity cells for the window.
func (g *Generator) Heatmap(ctx context.Context, start, end time.Time) ([]HeatmapCell, error) {
	usage, err := g.Usage(ctx, start, end, interval.Hourly)
	if err != nil {
		return nil, err
	}
	return BuildHeatmap(usage), nil
}

// FocusSessions detects focus sessions in the window and attaches the
// distinct applications active during each one.
func (g *Generator) FocusSessions(ctx context.Context, start, end time.Time) ([]FocusSession, error) {
	samples, err := g.src.InputSamples(ctx, start, end)
	if err != nil {
		return nil, err
	}
	sessions := DetectFocusSessions(samples, g.maxGap, g.minSession)
	attachApps(ctx, sessions, g.src)
	return sessions, nil
}

// Websites produces the top website activity for the window.
func (g *Generator) Websites(ctx context.Context, start, end time.Time) ([]WebsiteUsage, error) {
	acts, err := g.src.ActivityIntervals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return AggregateWebsites(acts, g.browsers), nil
}

// IdleByHour produces the hour-of-day idle distribution for the window.
func (g *Generator) IdleByHour(ctx context.Context, start, end time.Time) ([]IdleBucket, error) {
	idles, err := g.src.IdlePeriods(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return IdleDistribution(idles), nil
}

// Summaries produces the per-day input and active-time summaries.
func (g *Generator) Summaries(ctx context.Context, start, end time.Time) ([]DailySummary, error) {
	var (
		acts    []store.ActivityInterval
		idles   []store.IdlePeriod
		samples []store.InputSample
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		acts, err = g.src.ActivityIntervals(gctx, start, end)
		return err
	})
	eg.Go(func() error {
		var err error
		idles, err = g.src.IdlePeriods(gctx, start, end)
		return err
	})
	eg.Go(func() error {
		var err error
		samples, err = g.src.InputSamples(gctx, start, end)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return DailySummaries(acts, idles, samples), nil
}

// Stats produces the scalar summary for the window.
func (g *Generator) Stats(ctx context.Context, start, end time.Time) (Stats, error) {
	var (
		acts    []store.ActivityInterval
		samples []store.InputSample
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		acts, err = g.src.ActivityIntervals(gctx, start, end)
		return err
	})
	eg.Go(func() error {
		var err error
		samples, err = g.src.InputSamples(gctx, start, end)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}
	return Summarize(acts, samples), nil
}
