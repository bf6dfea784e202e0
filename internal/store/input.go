package store

import (
	"context"
	"fmt"
	"time"
)

// InputSamples returns input-counter rows with timestamps in
// [windowStart, windowEnd), ordered ascending as the session detector
// requires. Rows with unparseable timestamps are skipped.
func (db *DB) InputSamples(ctx context.Context, windowStart, windowEnd time.Time) ([]InputSample, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, timestamp, key_presses, mouse_clicks, mouse_distance
		FROM input_metrics
		WHERE datetime(timestamp) >= datetime(?)
		  AND datetime(timestamp) < datetime(?)
		ORDER BY timestamp ASC`,
		formatTimestamp(windowStart), formatTimestamp(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("querying input_metrics: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var samples []InputSample
	for rows.Next() {
		var (
			s   InputSample
			raw string
		)
		if err := rows.Scan(&s.ID, &raw, &s.KeyPresses, &s.MouseClicks, &s.MouseDistance); err != nil {
			return nil, fmt.Errorf("scanning input row: %w: %v", ErrUnavailable, err)
		}
		logged, ok := parseTimestamp(raw)
		if !ok {
			continue
		}
		s.LoggedAt = logged
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating input rows: %w: %v", ErrUnavailable, err)
	}
	return samples, nil
}

// InsertInputSample records one polling period's input counters.
func (db *DB) InsertInputSample(ctx context.Context, loggedAt time.Time, keyPresses, mouseClicks int, mouseDistance float64) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO input_metrics (timestamp, key_presses, mouse_clicks, mouse_distance)
		VALUES (?, ?, ?, ?)`,
		formatTimestamp(loggedAt), keyPresses, mouseClicks, mouseDistance)
	if err != nil {
		return fmt.Errorf("inserting input row: %w: %v", ErrUnavailable, err)
	}
	return nil
}
