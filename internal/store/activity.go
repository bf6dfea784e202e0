package store

import (
	"context"
	"fmt"
	"time"
)

// ActivityIntervals returns activity rows whose [start, start+duration)
// range overlaps the window [windowStart, windowEnd), ordered by start
// time. Zero-duration rows are excluded and rows with unparseable
// timestamps are skipped.
func (db *DB) ActivityIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]ActivityInterval, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, timestamp, app_name, window_title, duration
		FROM activity_log
		WHERE duration > 0
		  AND datetime(timestamp) < datetime(?)
		  AND datetime(timestamp, '+' || duration || ' seconds') > datetime(?)
		ORDER BY timestamp ASC`,
		formatTimestamp(windowEnd), formatTimestamp(windowStart))
	if err != nil {
		return nil, fmt.Errorf("querying activity_log: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var intervals []ActivityInterval
	for rows.Next() {
		var (
			iv   ActivityInterval
			raw  string
			secs int64
		)
		if err := rows.Scan(&iv.ID, &raw, &iv.App, &iv.WindowTitle, &secs); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w: %v", ErrUnavailable, err)
		}
		started, ok := parseTimestamp(raw)
		if !ok {
			// One corrupt row must not blank out the whole window.
			continue
		}
		iv.StartedAt = started
		iv.Duration = time.Duration(secs) * time.Second
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w: %v", ErrUnavailable, err)
	}
	return intervals, nil
}

// InsertActivity records one closed activity interval. Durations below one
// second are dropped, matching what the capture loop has always done.
func (db *DB) InsertActivity(ctx context.Context, startedAt time.Time, app, windowTitle string, d time.Duration) error {
	secs := int64(d.Seconds())
	if secs <= 0 {
		return nil
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO activity_log (timestamp, app_name, window_title, duration)
		VALUES (?, ?, ?, ?)`,
		formatTimestamp(startedAt), app, windowTitle, secs)
	if err != nil {
		return fmt.Errorf("inserting activity row: %w: %v", ErrUnavailable, err)
	}
	return nil
}
