package store

import "time"

// ActivityInterval is one continuous period an application held focus.
// Rows are immutable once written; zero-duration rows are ignored by all
// aggregation.
type ActivityInterval struct {
	ID          int64         `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	App         string        `json:"app"`
	WindowTitle string        `json:"window_title"`
	Duration    time.Duration `json:"duration"`
}

// EndedAt returns the exclusive end of the interval.
func (a ActivityInterval) EndedAt() time.Time {
	return a.StartedAt.Add(a.Duration)
}

// IdlePeriod is a closed period without user input. Open periods (no end
// time yet) exist in the table while the user is away but are never
// returned by fetch queries.
type IdlePeriod struct {
	ID        int64     `json:"id"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Duration returns the period length.
func (p IdlePeriod) Duration() time.Duration {
	return p.EndedAt.Sub(p.StartedAt)
}

// InputSample is one polling period's worth of input counters, nominally
// one row per minute. Consumers must not assume a fixed cadence.
type InputSample struct {
	ID            int64     `json:"id"`
	LoggedAt      time.Time `json:"logged_at"`
	KeyPresses    int       `json:"key_presses"`
	MouseClicks   int       `json:"mouse_clicks"`
	MouseDistance float64   `json:"mouse_distance"`
}
