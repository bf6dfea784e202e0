package store

import "time"

// timeLayout is the canonical timestamp format written to the database.
// Local wall-clock text keeps rows lexicographically sortable and matches
// what SQLite's datetime() understands.
const timeLayout = "2006-01-02 15:04:05"

// parseLayouts are accepted on read. Older capture agents wrote ISO 8601
// with a 'T' separator and fractional seconds.
var parseLayouts = []string{
	timeLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

func formatTimestamp(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTimestamp parses a stored timestamp, trying each known layout.
// Returns false for malformed values so callers can skip the row instead
// of failing the whole query.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
