package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder persists captured activity. *store.DB satisfies it.
type Recorder interface {
	InsertActivity(ctx context.Context, startedAt time.Time, app, windowTitle string, d time.Duration) error
	InsertInputSample(ctx context.Context, loggedAt time.Time, keyPresses, mouseClicks int, mouseDistance float64) error
	OpenIdlePeriod(ctx context.Context, startedAt time.Time) (int64, error)
	CloseIdlePeriod(ctx context.Context, id int64, endedAt time.Time) error
}

// Config tunes the capture loop.
type Config struct {
	// PollInterval is how often the sampler is read.
	PollInterval time.Duration

	// FlushInterval is how often accumulated input metrics are written.
	FlushInterval time.Duration

	// IdleThreshold is how long without input counts as idle.
	IdleThreshold time.Duration
}

// DefaultConfig returns the standard capture settings.
func DefaultConfig() Config {
	return Config{
		PollInterval:  time.Second,
		FlushInterval: time.Minute,
		IdleThreshold: 3 * time.Minute,
	}
}

// Tracker polls a Sampler and writes activity intervals, input samples
// and idle periods through a Recorder.
type Tracker struct {
	sampler  Sampler
	recorder Recorder
	cfg      Config
	log      *zap.Logger
	runID    string

	// Current activity segment, if any.
	cur        *WindowSample
	curStarted time.Time

	// Pending input metrics since the last flush.
	pending   InputDelta
	lastFlush time.Time

	// Open idle period row, if any.
	idleRowID int64
	idleOpen  bool
}

// New creates a Tracker. A nil logger disables logging.
func New(sampler Sampler, recorder Recorder, cfg Config, log *zap.Logger) *Tracker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Minute
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = 3 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		sampler:  sampler,
		recorder: recorder,
		cfg:      cfg,
		log:      log,
		runID:    uuid.NewString(),
	}
}

// Run polls until the context is cancelled, then flushes pending state.
func (t *Tracker) Run(ctx context.Context) error {
	t.log.Info("tracker started",
		zap.String("run_id", t.runID),
		zap.Duration("poll_interval", t.cfg.PollInterval),
		zap.Duration("idle_threshold", t.cfg.IdleThreshold))

	now := time.Now()
	t.lastFlush = now.Truncate(t.cfg.FlushInterval)

	ticker := time.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.shutdown(time.Now())
			t.log.Info("tracker stopped", zap.String("run_id", t.runID))
			return ctx.Err()
		case tick := <-ticker.C:
			t.step(ctx, tick)
		}
	}
}

// step processes one poll at the given time.
func (t *Tracker) step(ctx context.Context, now time.Time) {
	idleFor, err := t.sampler.IdleFor()
	if err != nil {
		t.log.Warn("idle probe failed", zap.Error(err))
		idleFor = 0
	}

	if delta, err := t.sampler.DrainInput(); err != nil {
		t.log.Warn("input drain failed", zap.Error(err))
	} else {
		t.pending.Add(delta)
	}

	if idleFor >= t.cfg.IdleThreshold {
		t.enterIdle(ctx, now, idleFor)
	} else {
		t.exitIdle(ctx, now)
		t.sampleWindow(ctx, now)
	}

	t.maybeFlushInput(ctx, now)
}

// enterIdle closes the current activity segment and opens an idle period
// backdated to when input actually stopped.
func (t *Tracker) enterIdle(ctx context.Context, now time.Time, idleFor time.Duration) {
	if t.idleOpen {
		return
	}
	idleStart := now.Add(-idleFor)

	t.closeSegment(ctx, idleStart)

	id, err := t.recorder.OpenIdlePeriod(ctx, idleStart)
	if err != nil {
		t.log.Error("open idle period failed", zap.Error(err))
		return
	}
	t.idleRowID = id
	t.idleOpen = true
	t.log.Debug("idle started", zap.Time("since", idleStart))
}

// exitIdle closes the open idle period on reactivation.
func (t *Tracker) exitIdle(ctx context.Context, now time.Time) {
	if !t.idleOpen {
		return
	}
	if err := t.recorder.CloseIdlePeriod(ctx, t.idleRowID, now); err != nil {
		t.log.Error("close idle period failed", zap.Error(err))
	}
	t.idleOpen = false
	t.idleRowID = 0
	t.log.Debug("idle ended", zap.Time("at", now))
}

// sampleWindow reads the foreground window and rolls the activity segment
// when it changes.
func (t *Tracker) sampleWindow(ctx context.Context, now time.Time) {
	win, err := t.sampler.ActiveWindow()
	if err != nil {
		t.log.Warn("window probe failed", zap.Error(err))
		return
	}
	if win.App == "" {
		return
	}

	if t.cur != nil && t.cur.App == win.App && t.cur.Title == win.Title {
		return
	}

	t.closeSegment(ctx, now)
	t.cur = &win
	t.curStarted = now
}

// closeSegment writes the current activity segment ending at the given time.
func (t *Tracker) closeSegment(ctx context.Context, endedAt time.Time) {
	if t.cur == nil {
		return
	}
	d := endedAt.Sub(t.curStarted)
	if d > 0 {
		err := t.recorder.InsertActivity(ctx, t.curStarted, t.cur.App, t.cur.Title, d)
		if err != nil {
			t.log.Error("insert activity failed",
				zap.String("app", t.cur.App),
				zap.Error(err))
		}
	}
	t.cur = nil
}

// maybeFlushInput writes pending input metrics once per flush interval,
// aligned to the interval boundary. Quiet intervals write nothing.
func (t *Tracker) maybeFlushInput(ctx context.Context, now time.Time) {
	boundary := now.Truncate(t.cfg.FlushInterval)
	if !boundary.After(t.lastFlush) {
		return
	}
	t.flushInput(ctx, boundary)
	t.lastFlush = boundary
}

func (t *Tracker) flushInput(ctx context.Context, at time.Time) {
	if t.pending.IsZero() {
		return
	}
	err := t.recorder.InsertInputSample(ctx, at,
		t.pending.KeyPresses, t.pending.MouseClicks, t.pending.MouseDistance)
	if err != nil {
		t.log.Error("insert input sample failed", zap.Error(err))
		return
	}
	t.pending = InputDelta{}
}

// shutdown flushes all pending state at exit time.
func (t *Tracker) shutdown(now time.Time) {
	// Writes must finish even though the run context is cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.closeSegment(ctx, now)
	t.exitIdle(ctx, now)
	t.flushInput(ctx, now)
}
