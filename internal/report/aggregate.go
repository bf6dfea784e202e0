// Package report turns raw capture rows into calendar-aligned usage
// statistics: per-bucket-per-app durations, focus sessions, website
// activity, heatmaps and summary figures. Everything here is a pure
// computation over fetched row slices; I/O happens only in Generator,
// at the fetch boundary.
package report

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/store"
)

// IdleLabel is the reserved app label under which idle time accumulates.
// Idle seconds are tracked as their own series, never subtracted from
// themselves, so active and away time stay additive but distinct.
const IdleLabel = "Idle"

// BucketUsage is one (bucket, app) cell of the usage table, in whole
// seconds. Rows are sorted ascending by bucket; within a bucket the
// dominant app sorts first.
type BucketUsage struct {
	Bucket  string `json:"bucket"`
	App     string `json:"app"`
	Seconds int64  `json:"seconds"`
}

type usageKey struct {
	bucket string
	app    string
}

// AggregateUsage composes idle subtraction and bucket splitting over a row
// set. Each activity interval is first reduced to its active residue, then
// split across bucket boundaries; idle periods are split independently and
// accumulated under IdleLabel. Fractional seconds are carried through the
// whole accumulation and rounded once per output cell, so totals never
// drift across many short intervals. The function is deterministic: the
// same rows always produce the identical slice.
func AggregateUsage(activity []store.ActivityInterval, idle []store.IdlePeriod, g interval.Granularity) []BucketUsage {
	idleSpans := make([]interval.Span, 0, len(idle))
	for _, p := range idle {
		idleSpans = append(idleSpans, interval.Span{Start: p.StartedAt, End: p.EndedAt})
	}

	totals := make(map[usageKey]float64)
	for _, a := range activity {
		if a.Duration <= 0 {
			continue
		}
		active := interval.ActiveResidue(interval.Span{Start: a.StartedAt, End: a.EndedAt()}, idleSpans)
		for _, frag := range active {
			for _, sl := range interval.Split(frag.Start, frag.Duration(), g) {
				totals[usageKey{sl.Bucket, a.App}] += sl.Seconds
			}
		}
	}

	for _, p := range idle {
		for _, sl := range interval.Split(p.StartedAt, p.Duration(), g) {
			totals[usageKey{sl.Bucket, IdleLabel}] += sl.Seconds
		}
	}

	usage := make([]BucketUsage, 0, len(totals))
	for k, secs := range totals {
		usage = append(usage, BucketUsage{Bucket: k.bucket, App: k.app, Seconds: int64(math.Round(secs))})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Bucket != usage[j].Bucket {
			return usage[i].Bucket < usage[j].Bucket
		}
		if usage[i].Seconds != usage[j].Seconds {
			return usage[i].Seconds > usage[j].Seconds
		}
		return usage[i].App < usage[j].App
	})
	return usage
}

// DayCategory labels a day's overall activity level.
type DayCategory string

const (
	CategoryProductive DayCategory = "productive"
	CategoryNeutral    DayCategory = "neutral"
	CategoryIdle       DayCategory = "idle"
)

// CategoryThresholds sets the active-time cutoffs for day classification.
type CategoryThresholds struct {
	Productive time.Duration
	Neutral    time.Duration
}

// DefaultThresholds classifies more than four active hours as productive
// and more than two as neutral.
var DefaultThresholds = CategoryThresholds{
	Productive: 4 * time.Hour,
	Neutral:    2 * time.Hour,
}

// DailyActivity is one day's total active time with its category.
type DailyActivity struct {
	Date          string      `json:"date"`
	ActiveSeconds int64       `json:"active_seconds"`
	Category      DayCategory `json:"category"`
}

// ClassifyDays reduces daily usage rows to per-day active totals and
// applies the threshold policy. Idle rows do not count toward a day's
// active seconds. Usage must come from a Daily aggregation.
func ClassifyDays(usage []BucketUsage, th CategoryThresholds) []DailyActivity {
	if th.Productive <= 0 {
		th = DefaultThresholds
	}

	perDay := make(map[string]int64)
	for _, u := range usage {
		if u.App == IdleLabel {
			continue
		}
		perDay[u.Bucket] += u.Seconds
	}

	days := make([]DailyActivity, 0, len(perDay))
	for date, secs := range perDay {
		category := CategoryIdle
		switch {
		case secs > int64(th.Productive.Seconds()):
			category = CategoryProductive
		case secs > int64(th.Neutral.Seconds()):
			category = CategoryNeutral
		}
		days = append(days, DailyActivity{Date: date, ActiveSeconds: secs, Category: category})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// HeatmapCell is one day-hour cell of the activity heatmap. ActivityScore
// is the active (non-idle) seconds within that hour, 0 through 3600.
type HeatmapCell struct {
	Day           string `json:"day"`
	Hour          int    `json:"hour"`
	ActivityScore int64  `json:"activity_score"`
}

// BuildHeatmap projects hourly usage rows onto (day, hour) cells, summing
// all non-idle apps. Usage must come from an Hourly aggregation. Cells
// with no activity are omitted.
func BuildHeatmap(usage []BucketUsage) []HeatmapCell {
	type cellKey struct {
		day  string
		hour int
	}
	scores := make(map[cellKey]int64)
	for _, u := range usage {
		if u.App == IdleLabel {
			continue
		}
		// Hourly bucket keys look like "2006-01-02 15:00".
		if len(u.Bucket) < 13 {
			continue
		}
		hour, err := strconv.Atoi(u.Bucket[11:13])
		if err != nil {
			continue
		}
		scores[cellKey{day: u.Bucket[:10], hour: hour}] += u.Seconds
	}

	cells := make([]HeatmapCell, 0, len(scores))
	for k, score := range scores {
		cells = append(cells, HeatmapCell{Day: k.day, Hour: k.hour, ActivityScore: score})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Day != cells[j].Day {
			return cells[i].Day < cells[j].Day
		}
		return cells[i].Hour < cells[j].Hour
	})
	return cells
}
