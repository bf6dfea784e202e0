package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/timesight/timesight/internal/store"
)

func TestSummarize_EmptyWindow(t *testing.T) {
	stats := Summarize(nil, nil)

	assert.Equal(t, int64(0), stats.TotalActiveSeconds)
	assert.Equal(t, int64(0), stats.TotalKeystrokes)
	assert.Empty(t, stats.TopApps)
	assert.NotNil(t, stats.TopApps, "top apps must serialize as [], not null")
	assert.Equal(t, int64(0), stats.AverageSessionSeconds)
	assert.Equal(t, 0, stats.SessionCount)
}

func TestSummarize_RanksTopThreeApps(t *testing.T) {
	activity := []store.ActivityInterval{
		{App: "editor.exe", Duration: 40 * time.Minute},
		{App: "chrome.exe", Duration: 25 * time.Minute},
		{App: "editor.exe", Duration: 20 * time.Minute},
		{App: "slack.exe", Duration: 10 * time.Minute},
		{App: "terminal.exe", Duration: 5 * time.Minute},
		{App: "ghost.exe", Duration: 0}, // zero rows never count
	}
	samples := []store.InputSample{
		{KeyPresses: 500}, {KeyPresses: 250},
	}

	stats := Summarize(activity, samples)

	assert.Equal(t, int64(6000), stats.TotalActiveSeconds)
	assert.Equal(t, int64(750), stats.TotalKeystrokes)
	assert.Equal(t, 5, stats.SessionCount)
	assert.Equal(t, int64(1200), stats.AverageSessionSeconds)

	if assert.Len(t, stats.TopApps, 3) {
		assert.Equal(t, "editor.exe", stats.TopApps[0].App)
		assert.Equal(t, int64(3600), stats.TopApps[0].Seconds)
		assert.Equal(t, "chrome.exe", stats.TopApps[1].App)
		assert.Equal(t, "slack.exe", stats.TopApps[2].App)
	}
}

func TestDailySummaries_JoinsInputAndActiveTime(t *testing.T) {
	activity := []store.ActivityInterval{
		{StartedAt: at(10, 9, 0), App: "editor.exe", Duration: 2 * time.Hour},
		{StartedAt: at(11, 14, 0), App: "chrome.exe", Duration: time.Hour},
	}
	idle := []store.IdlePeriod{
		{StartedAt: at(10, 10, 0), EndedAt: at(10, 10, 30)},
	}
	samples := []store.InputSample{
		{LoggedAt: at(10, 9, 1), KeyPresses: 100, MouseClicks: 20, MouseDistance: 1500},
		{LoggedAt: at(10, 9, 2), KeyPresses: 50, MouseClicks: 5, MouseDistance: 300.5},
		// A day with samples but no activity rows still appears.
		{LoggedAt: at(12, 8, 0), KeyPresses: 10, MouseClicks: 1, MouseDistance: 40},
	}

	summaries := DailySummaries(activity, idle, samples)
	if !assert.Len(t, summaries, 3) {
		return
	}

	assert.Equal(t, "2026-05-10", summaries[0].Date)
	assert.Equal(t, int64(150), summaries[0].TotalKeystrokes)
	assert.Equal(t, int64(25), summaries[0].TotalClicks)
	assert.InDelta(t, 1800.5, summaries[0].MouseDistance, 0.001)
	// Two hours minus the half-hour idle period.
	assert.Equal(t, int64(5400), summaries[0].ActiveSeconds)

	assert.Equal(t, "2026-05-11", summaries[1].Date)
	assert.Equal(t, int64(3600), summaries[1].ActiveSeconds)
	assert.Equal(t, int64(0), summaries[1].TotalKeystrokes)

	assert.Equal(t, "2026-05-12", summaries[2].Date)
	assert.Equal(t, int64(0), summaries[2].ActiveSeconds)
	assert.Equal(t, int64(10), summaries[2].TotalKeystrokes)
}

func TestIdleDistribution(t *testing.T) {
	idle := []store.IdlePeriod{
		// Starts at 9:50, runs 20 minutes: 10 minutes in hour 9, 10 in hour 10.
		{StartedAt: at(10, 9, 50), EndedAt: at(10, 10, 10)},
		{StartedAt: at(10, 9, 5), EndedAt: at(10, 9, 15)},
		{StartedAt: at(11, 22, 0), EndedAt: at(11, 22, 30)},
	}

	dist := IdleDistribution(idle)
	if !assert.Len(t, dist, 24, "distribution always covers the whole day") {
		return
	}

	assert.Equal(t, int64(1200), dist[9].TotalIdleSeconds)
	assert.Equal(t, 2, dist[9].Occurrences)
	assert.Equal(t, int64(600), dist[10].TotalIdleSeconds)
	assert.Equal(t, 0, dist[10].Occurrences, "occurrence counts only in the starting hour")
	assert.Equal(t, int64(1800), dist[22].TotalIdleSeconds)
	assert.Equal(t, 1, dist[22].Occurrences)
	assert.Equal(t, int64(0), dist[0].TotalIdleSeconds)
}
