// Package interval provides pure calendar-interval arithmetic: splitting
// time ranges across hour and day boundaries and subtracting idle spans
// from activity spans. Nothing in this package touches storage or clocks;
// every function is a pure function of its inputs.
package interval

import "time"

// Granularity selects the calendar bucketing unit.
type Granularity int

const (
	// Hourly buckets ranges by local calendar hour.
	Hourly Granularity = iota
	// Daily buckets ranges by local calendar day.
	Daily
)

// String returns the granularity name.
func (g Granularity) String() string {
	if g == Daily {
		return "day"
	}
	return "hour"
}

// BucketKey returns the bucket identifier for the instant t:
// "2006-01-02 15:00" for hourly buckets, "2006-01-02" for daily ones.
// Keys are computed in t's location, conventionally local time.
func (g Granularity) BucketKey(t time.Time) string {
	if g == Daily {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:00")
}

// nextBoundary returns the first bucket boundary strictly after t.
// Built from calendar components rather than Truncate so that zones with
// non-whole-hour offsets and DST transitions bucket correctly.
func (g Granularity) nextBoundary(t time.Time) time.Time {
	if g == Daily {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	}
	hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return hour.Add(time.Hour)
}

// Span is a half-open time range [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

// Duration returns End − Start.
func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Seconds returns the span length in seconds.
func (s Span) Seconds() float64 {
	return s.End.Sub(s.Start).Seconds()
}

// Overlaps reports whether the half-open spans s and o share any instant.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}
