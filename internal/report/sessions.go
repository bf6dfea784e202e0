package report

import (
	"context"
	"sort"
	"time"

	"github.com/timesight/timesight/internal/store"
)

// Default focus-session policy. Both values are configurable; these are
// starting points, not contracts.
const (
	DefaultFocusMaxGap     = 5 * time.Minute
	DefaultFocusMinSession = 10 * time.Minute
)

// FocusSession is a sustained period of continuous input activity, derived
// from input samples and never persisted. It is a different concept from a
// raw activity interval: a focus session spans many intervals and ignores
// which window held focus.
type FocusSession struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int64     `json:"duration_seconds"`
	Keystrokes      int64     `json:"keystrokes"`
	Apps            []string  `json:"apps"`
}

// DetectFocusSessions merges chronologically-ordered input samples into
// sessions: consecutive samples no more than maxGap apart extend the
// current session, a larger gap closes it and starts the next. Sessions
// shorter than minSession are discarded. Output is ordered by descending
// duration; callers wanting chronological order must re-sort. Apps is left
// nil; see Generator.FocusSessions for attachment.
func DetectFocusSessions(samples []store.InputSample, maxGap, minSession time.Duration) []FocusSession {
	if maxGap <= 0 {
		maxGap = DefaultFocusMaxGap
	}
	if minSession <= 0 {
		minSession = DefaultFocusMinSession
	}

	var sessions []FocusSession

	var (
		inSession  bool
		start, end time.Time
		keystrokes int64
	)
	closeSession := func() {
		if d := end.Sub(start); d >= minSession {
			sessions = append(sessions, FocusSession{
				StartTime:       start,
				EndTime:         end,
				DurationSeconds: int64(d.Seconds()),
				Keystrokes:      keystrokes,
			})
		}
	}

	for _, s := range samples {
		if !inSession {
			inSession = true
			start, end = s.LoggedAt, s.LoggedAt
			keystrokes = int64(s.KeyPresses)
			continue
		}
		if s.LoggedAt.Sub(end) <= maxGap {
			end = s.LoggedAt
			keystrokes += int64(s.KeyPresses)
			continue
		}
		closeSession()
		start, end = s.LoggedAt, s.LoggedAt
		keystrokes = int64(s.KeyPresses)
	}
	if inSession {
		closeSession()
	}

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].DurationSeconds != sessions[j].DurationSeconds {
			return sessions[i].DurationSeconds > sessions[j].DurationSeconds
		}
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions
}

// attachApps fills each session's distinct application set by querying the
// activity collaborator for the session window. A failed lookup leaves the
// session's apps empty rather than failing the whole report.
func attachApps(ctx context.Context, sessions []FocusSession, src DataSource) {
	for i := range sessions {
		acts, err := src.ActivityIntervals(ctx, sessions[i].StartTime, sessions[i].EndTime)
		if err != nil {
			continue
		}
		seen := make(map[string]bool)
		var apps []string
		for _, a := range acts {
			if !seen[a.App] {
				seen[a.App] = true
				apps = append(apps, a.App)
			}
		}
		sort.Strings(apps)
		sessions[i].Apps = apps
	}
}
