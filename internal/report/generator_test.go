package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/store"
)

// fixtureSource is an in-memory DataSource for report tests. Each fetch
// filters its rows to the requested window the way the real store does.
type fixtureSource struct {
	activity []store.ActivityInterval
	idle     []store.IdlePeriod
	samples  []store.InputSample

	activityErr error
	idleErr     error
	samplesErr  error
}

func (f *fixtureSource) ActivityIntervals(_ context.Context, start, end time.Time) ([]store.ActivityInterval, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	var out []store.ActivityInterval
	for _, a := range f.activity {
		if a.StartedAt.Before(end) && a.EndedAt().After(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fixtureSource) IdlePeriods(_ context.Context, start, end time.Time) ([]store.IdlePeriod, error) {
	if f.idleErr != nil {
		return nil, f.idleErr
	}
	var out []store.IdlePeriod
	for _, p := range f.idle {
		if p.StartedAt.Before(end) && p.EndedAt.After(start) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fixtureSource) InputSamples(_ context.Context, start, end time.Time) ([]store.InputSample, error) {
	if f.samplesErr != nil {
		return nil, f.samplesErr
	}
	var out []store.InputSample
	for _, s := range f.samples {
		if !s.LoggedAt.Before(start) && s.LoggedAt.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestGenerator_UsageEndToEnd(t *testing.T) {
	src := &fixtureSource{
		activity: []store.ActivityInterval{
			{StartedAt: at(10, 23, 30), App: "editor.exe", Duration: time.Hour},
		},
		idle: []store.IdlePeriod{
			{StartedAt: at(10, 23, 45), EndedAt: at(10, 23, 50)},
		},
	}
	g := NewGenerator(src, Options{})

	usage, err := g.Usage(context.Background(), at(10, 0, 0), at(12, 0, 0), interval.Hourly)
	require.NoError(t, err)
	require.Len(t, usage, 3)

	assert.Equal(t, BucketUsage{Bucket: "2026-05-10 23:00", App: "editor.exe", Seconds: 1500}, usage[0])
	assert.Equal(t, BucketUsage{Bucket: "2026-05-10 23:00", App: IdleLabel, Seconds: 300}, usage[1])
	assert.Equal(t, BucketUsage{Bucket: "2026-05-11 00:00", App: "editor.exe", Seconds: 1800}, usage[2])
}

func TestGenerator_PropagatesSourceFailure(t *testing.T) {
	srcErr := errors.New("disk gone")
	g := NewGenerator(&fixtureSource{idleErr: srcErr}, Options{})

	_, err := g.Usage(context.Background(), at(10, 0, 0), at(11, 0, 0), interval.Hourly)
	require.Error(t, err)
	assert.ErrorIs(t, err, srcErr)
}

func TestGenerator_FocusSessionsAttachApps(t *testing.T) {
	base := at(10, 9, 0)
	src := &fixtureSource{
		activity: []store.ActivityInterval{
			{StartedAt: base, App: "editor.exe", Duration: 10 * time.Minute},
			{StartedAt: base.Add(10 * time.Minute), App: "chrome.exe", Duration: 10 * time.Minute},
			{StartedAt: base.Add(2 * time.Hour), App: "slack.exe", Duration: 10 * time.Minute},
		},
	}
	for i := 0; i <= 15; i++ {
		src.samples = append(src.samples, store.InputSample{
			LoggedAt:   base.Add(time.Duration(i) * time.Minute),
			KeyPresses: 20,
		})
	}
	g := NewGenerator(src, Options{})

	sessions, err := g.FocusSessions(context.Background(), at(10, 0, 0), at(10, 12, 0))
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	assert.Equal(t, []string{"chrome.exe", "editor.exe"}, sessions[0].Apps)
	assert.Equal(t, int64(320), sessions[0].Keystrokes)
}

func TestGenerator_FocusSessionsSurviveAppLookupFailure(t *testing.T) {
	base := at(10, 9, 0)
	src := &fixtureSource{activityErr: errors.New("activity table locked")}
	for i := 0; i <= 15; i++ {
		src.samples = append(src.samples, store.InputSample{LoggedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	g := NewGenerator(src, Options{})

	sessions, err := g.FocusSessions(context.Background(), at(10, 0, 0), at(10, 12, 0))
	require.NoError(t, err, "app attachment is best-effort")
	require.Len(t, sessions, 1)
	assert.Empty(t, sessions[0].Apps)
}

func TestGenerator_StatsEmptyWindow(t *testing.T) {
	g := NewGenerator(&fixtureSource{}, Options{})

	stats, err := g.Stats(context.Background(), at(10, 0, 0), at(11, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, Stats{TopApps: []AppUsage{}}, stats)
}

func TestGenerator_WebsitesUseConfiguredBrowsers(t *testing.T) {
	src := &fixtureSource{
		activity: []store.ActivityInterval{
			{StartedAt: at(10, 9, 0), App: "vivaldi.exe", WindowTitle: "wiki | example.org", Duration: time.Hour},
		},
	}

	// Default options do not know vivaldi.
	g := NewGenerator(src, Options{})
	usage, err := g.Websites(context.Background(), at(10, 0, 0), at(11, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, usage)

	g = NewGenerator(src, Options{Browsers: []string{"vivaldi.exe"}})
	usage, err = g.Websites(context.Background(), at(10, 0, 0), at(11, 0, 0))
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, "example.org", usage[0].Website)
}

func TestGenerator_SummariesAcrossDays(t *testing.T) {
	src := &fixtureSource{
		activity: []store.ActivityInterval{
			{StartedAt: at(10, 23, 30), App: "editor.exe", Duration: time.Hour},
		},
		samples: []store.InputSample{
			{LoggedAt: at(10, 23, 35), KeyPresses: 40, MouseClicks: 3, MouseDistance: 120},
			{LoggedAt: at(11, 0, 5), KeyPresses: 10, MouseClicks: 1, MouseDistance: 30},
		},
	}
	g := NewGenerator(src, Options{})

	summaries, err := g.Summaries(context.Background(), at(10, 0, 0), at(12, 0, 0))
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, int64(1800), summaries[0].ActiveSeconds)
	assert.Equal(t, int64(1800), summaries[1].ActiveSeconds)
	assert.Equal(t, int64(40), summaries[0].TotalKeystrokes)
	assert.Equal(t, int64(10), summaries[1].TotalKeystrokes)
}
