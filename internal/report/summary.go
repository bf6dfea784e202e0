package report

import (
	"sort"

	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/store"
)

// AppUsage is an application's total time within a window.
type AppUsage struct {
	App     string `json:"app"`
	Seconds int64  `json:"seconds"`
}

// Stats is the scalar summary for a time window. "Session" here means a
// raw activity-interval row, not a focus session; the two are separate
// concepts with separate definitions. Every field is zero-valued, never
// absent, when the window holds no rows.
type Stats struct {
	TotalActiveSeconds    int64      `json:"total_active_seconds"`
	TotalKeystrokes       int64      `json:"total_keystrokes"`
	TopApps               []AppUsage `json:"top_apps"`
	AverageSessionSeconds int64      `json:"average_session_seconds"`
	SessionCount          int        `json:"session_count"`
}

// topAppLimit caps the ranked app list in a stats summary.
const topAppLimit = 3

// Summarize computes the window's scalar aggregates from raw rows.
func Summarize(activity []store.ActivityInterval, samples []store.InputSample) Stats {
	stats := Stats{TopApps: []AppUsage{}}

	perApp := make(map[string]int64)
	for _, a := range activity {
		if a.Duration <= 0 {
			continue
		}
		secs := int64(a.Duration.Seconds())
		stats.TotalActiveSeconds += secs
		stats.SessionCount++
		perApp[a.App] += secs
	}
	if stats.SessionCount > 0 {
		stats.AverageSessionSeconds = stats.TotalActiveSeconds / int64(stats.SessionCount)
	}

	for _, s := range samples {
		stats.TotalKeystrokes += int64(s.KeyPresses)
	}

	apps := make([]AppUsage, 0, len(perApp))
	for app, secs := range perApp {
		apps = append(apps, AppUsage{App: app, Seconds: secs})
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Seconds != apps[j].Seconds {
			return apps[i].Seconds > apps[j].Seconds
		}
		return apps[i].App < apps[j].App
	})
	if len(apps) > topAppLimit {
		apps = apps[:topAppLimit]
	}
	stats.TopApps = apps

	return stats
}

// DailySummary is one day's input totals alongside its active time.
type DailySummary struct {
	Date            string  `json:"date"`
	TotalKeystrokes int64   `json:"total_keystrokes"`
	TotalClicks     int64   `json:"total_clicks"`
	MouseDistance   float64 `json:"mouse_distance"`
	ActiveSeconds   int64   `json:"active_seconds"`
}

// DailySummaries groups input counters by calendar day and joins each day
// with its idle-subtracted active seconds. Days that appear in either
// source are included.
func DailySummaries(activity []store.ActivityInterval, idle []store.IdlePeriod, samples []store.InputSample) []DailySummary {
	perDay := make(map[string]*DailySummary)
	day := func(date string) *DailySummary {
		if d, ok := perDay[date]; ok {
			return d
		}
		d := &DailySummary{Date: date}
		perDay[date] = d
		return d
	}

	for _, s := range samples {
		d := day(interval.Daily.BucketKey(s.LoggedAt))
		d.TotalKeystrokes += int64(s.KeyPresses)
		d.TotalClicks += int64(s.MouseClicks)
		d.MouseDistance += s.MouseDistance
	}

	for _, u := range AggregateUsage(activity, idle, interval.Daily) {
		if u.App == IdleLabel {
			continue
		}
		day(u.Bucket).ActiveSeconds += u.Seconds
	}

	summaries := make([]DailySummary, 0, len(perDay))
	for _, d := range perDay {
		summaries = append(summaries, *d)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })
	return summaries
}

// IdleBucket is one hour-of-day slot of the idle distribution.
type IdleBucket struct {
	HourOfDay        int   `json:"hour_of_day"`
	TotalIdleSeconds int64 `json:"total_idle_seconds"`
	Occurrences      int   `json:"occurrences"`
}

// IdleDistribution spreads idle periods across the 24 hours of the day:
// seconds are attributed to each hour a period touches, while an
// occurrence is counted once, in the hour the period starts. All 24 slots
// are always present so the distribution renders as a complete day.
func IdleDistribution(idle []store.IdlePeriod) []IdleBucket {
	buckets := make([]IdleBucket, 24)
	for h := range buckets {
		buckets[h].HourOfDay = h
	}

	for _, p := range idle {
		for _, sl := range interval.Split(p.StartedAt, p.Duration(), interval.Hourly) {
			// Hourly bucket keys end in "HH:00".
			if len(sl.Bucket) < 13 {
				continue
			}
			h := int(sl.Bucket[11]-'0')*10 + int(sl.Bucket[12]-'0')
			if h >= 0 && h < 24 {
				buckets[h].TotalIdleSeconds += int64(sl.Seconds)
			}
		}
		buckets[p.StartedAt.Hour()].Occurrences++
	}
	return buckets
}
