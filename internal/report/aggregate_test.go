package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/timesight/timesight/internal/interval"
	"github.com/timesight/timesight/internal/store"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 5, day, hour, min, 0, 0, time.Local)
}

func TestAggregateUsage_MidnightStraddleWithIdle(t *testing.T) {
	// One editor interval from 23:30 to 00:30 with five idle minutes at
	// 23:45. The idle minutes come out of the editor's bucket but land in
	// their own series.
	activity := []store.ActivityInterval{
		{StartedAt: at(10, 23, 30), App: "editor.exe", WindowTitle: "main.go", Duration: time.Hour},
	}
	idle := []store.IdlePeriod{
		{StartedAt: at(10, 23, 45), EndedAt: at(10, 23, 50)},
	}

	usage := AggregateUsage(activity, idle, interval.Hourly)

	want := []BucketUsage{
		{Bucket: "2026-05-10 23:00", App: "editor.exe", Seconds: 1500},
		{Bucket: "2026-05-10 23:00", App: IdleLabel, Seconds: 300},
		{Bucket: "2026-05-11 00:00", App: "editor.exe", Seconds: 1800},
	}
	if !reflect.DeepEqual(usage, want) {
		t.Errorf("usage = %+v\nwant %+v", usage, want)
	}
}

func TestAggregateUsage_Idempotent(t *testing.T) {
	activity := []store.ActivityInterval{
		{StartedAt: at(10, 9, 15), App: "editor.exe", Duration: 50 * time.Minute},
		{StartedAt: at(10, 10, 5), App: "chrome.exe", Duration: 2 * time.Hour},
		{StartedAt: at(10, 13, 0), App: "slack.exe", Duration: 35 * time.Minute},
	}
	idle := []store.IdlePeriod{
		{StartedAt: at(10, 10, 30), EndedAt: at(10, 10, 40)},
		{StartedAt: at(10, 11, 55), EndedAt: at(10, 12, 5)},
	}

	first := AggregateUsage(activity, idle, interval.Hourly)
	second := AggregateUsage(activity, idle, interval.Hourly)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not deterministic:\n%+v\nvs\n%+v", first, second)
	}
}

func TestAggregateUsage_Ordering(t *testing.T) {
	activity := []store.ActivityInterval{
		{StartedAt: at(10, 9, 0), App: "minor.exe", Duration: 5 * time.Minute},
		{StartedAt: at(10, 9, 10), App: "major.exe", Duration: 40 * time.Minute},
		{StartedAt: at(10, 8, 0), App: "early.exe", Duration: 10 * time.Minute},
	}

	usage := AggregateUsage(activity, nil, interval.Hourly)
	if len(usage) != 3 {
		t.Fatalf("len = %d, want 3", len(usage))
	}
	if usage[0].App != "early.exe" {
		t.Errorf("usage[0].App = %q, want early.exe (ascending buckets)", usage[0].App)
	}
	// Within the 09:00 bucket the dominant app sorts first.
	if usage[1].App != "major.exe" || usage[2].App != "minor.exe" {
		t.Errorf("09:00 bucket order = %q, %q, want major.exe then minor.exe", usage[1].App, usage[2].App)
	}
}

func TestAggregateUsage_SkipsZeroDurationAndEmptyInput(t *testing.T) {
	usage := AggregateUsage([]store.ActivityInterval{
		{StartedAt: at(10, 9, 0), App: "ghost.exe", Duration: 0},
	}, nil, interval.Daily)
	if len(usage) != 0 {
		t.Errorf("usage = %+v, want empty", usage)
	}

	if usage := AggregateUsage(nil, nil, interval.Hourly); len(usage) != 0 {
		t.Errorf("usage over no rows = %+v, want empty", usage)
	}
}

func TestAggregateUsage_IdleFullyCoversInterval(t *testing.T) {
	activity := []store.ActivityInterval{
		{StartedAt: at(10, 9, 0), App: "editor.exe", Duration: 30 * time.Minute},
	}
	idle := []store.IdlePeriod{
		{StartedAt: at(10, 8, 0), EndedAt: at(10, 10, 0)},
	}

	usage := AggregateUsage(activity, idle, interval.Hourly)
	for _, u := range usage {
		if u.App == "editor.exe" {
			t.Errorf("editor.exe credited %ds, want no active time", u.Seconds)
		}
	}
	// The idle series itself still shows the full two hours.
	var idleSecs int64
	for _, u := range usage {
		if u.App == IdleLabel {
			idleSecs += u.Seconds
		}
	}
	if idleSecs != 7200 {
		t.Errorf("idle seconds = %d, want 7200", idleSecs)
	}
}

func TestClassifyDays(t *testing.T) {
	usage := []BucketUsage{
		{Bucket: "2026-05-10", App: "editor.exe", Seconds: 10000},
		{Bucket: "2026-05-10", App: "chrome.exe", Seconds: 5000},
		{Bucket: "2026-05-10", App: IdleLabel, Seconds: 90000},
		{Bucket: "2026-05-11", App: "editor.exe", Seconds: 8000},
		{Bucket: "2026-05-12", App: "slack.exe", Seconds: 600},
	}

	days := ClassifyDays(usage, DefaultThresholds)
	if len(days) != 3 {
		t.Fatalf("len = %d, want 3", len(days))
	}
	if days[0].Category != CategoryProductive || days[0].ActiveSeconds != 15000 {
		t.Errorf("day 0 = %+v, want productive with 15000s (idle excluded)", days[0])
	}
	if days[1].Category != CategoryNeutral {
		t.Errorf("day 1 category = %q, want neutral", days[1].Category)
	}
	if days[2].Category != CategoryIdle {
		t.Errorf("day 2 category = %q, want idle", days[2].Category)
	}
}

func TestBuildHeatmap(t *testing.T) {
	usage := []BucketUsage{
		{Bucket: "2026-05-10 09:00", App: "editor.exe", Seconds: 1200},
		{Bucket: "2026-05-10 09:00", App: "chrome.exe", Seconds: 600},
		{Bucket: "2026-05-10 09:00", App: IdleLabel, Seconds: 900},
		{Bucket: "2026-05-10 14:00", App: "editor.exe", Seconds: 3600},
		{Bucket: "2026-05-11 09:00", App: "editor.exe", Seconds: 300},
	}

	cells := BuildHeatmap(usage)
	want := []HeatmapCell{
		{Day: "2026-05-10", Hour: 9, ActivityScore: 1800},
		{Day: "2026-05-10", Hour: 14, ActivityScore: 3600},
		{Day: "2026-05-11", Hour: 9, ActivityScore: 300},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells = %+v\nwant %+v", cells, want)
	}
}
