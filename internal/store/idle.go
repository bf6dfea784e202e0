package store

import (
	"context"
	"fmt"
	"time"
)

// IdlePeriods returns closed idle periods overlapping the window
// [windowStart, windowEnd), ordered by start time. Open periods (end_time
// NULL) and inverted rows (end before start) are excluded so downstream
// subtraction can never see a negative-length span.
func (db *DB) IdlePeriods(ctx context.Context, windowStart, windowEnd time.Time) ([]IdlePeriod, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, start_time, end_time
		FROM idle_periods
		WHERE end_time IS NOT NULL
		  AND datetime(start_time) < datetime(?)
		  AND datetime(end_time) > datetime(?)
		ORDER BY start_time ASC`,
		formatTimestamp(windowEnd), formatTimestamp(windowStart))
	if err != nil {
		return nil, fmt.Errorf("querying idle_periods: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var periods []IdlePeriod
	for rows.Next() {
		var (
			p        IdlePeriod
			rawStart string
			rawEnd   string
		)
		if err := rows.Scan(&p.ID, &rawStart, &rawEnd); err != nil {
			return nil, fmt.Errorf("scanning idle row: %w: %v", ErrUnavailable, err)
		}
		started, okStart := parseTimestamp(rawStart)
		ended, okEnd := parseTimestamp(rawEnd)
		if !okStart || !okEnd {
			continue
		}
		if !started.Before(ended) {
			continue
		}
		p.StartedAt = started
		p.EndedAt = ended
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating idle rows: %w: %v", ErrUnavailable, err)
	}
	return periods, nil
}

// OpenIdlePeriod records the start of an idle period and returns the row ID
// so the capture loop can close it when the user comes back.
func (db *DB) OpenIdlePeriod(ctx context.Context, startedAt time.Time) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO idle_periods (start_time) VALUES (?)",
		formatTimestamp(startedAt))
	if err != nil {
		return 0, fmt.Errorf("opening idle period: %w: %v", ErrUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("opening idle period: %w: %v", ErrUnavailable, err)
	}
	return id, nil
}

// CloseIdlePeriod sets the end time of a previously opened idle period and
// backfills its duration column.
func (db *DB) CloseIdlePeriod(ctx context.Context, id int64, endedAt time.Time) error {
	_, err := db.conn.ExecContext(ctx, `
		UPDATE idle_periods
		SET end_time = ?,
		    duration = CAST((julianday(?) - julianday(start_time)) * 86400 AS INTEGER)
		WHERE id = ?`,
		formatTimestamp(endedAt), formatTimestamp(endedAt), id)
	if err != nil {
		return fmt.Errorf("closing idle period: %w: %v", ErrUnavailable, err)
	}
	return nil
}
