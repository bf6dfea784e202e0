package interval

import "time"

// Slice is the portion of a split interval that falls inside one bucket.
// Seconds stays fractional so that repeated splitting never loses sub-second
// remainders; rounding happens once, at report output.
type Slice struct {
	Bucket  string
	Seconds float64
}

// Split decomposes the interval [start, start+d) into slices that each lie
// fully within one calendar bucket, in chronological order. The slice seconds
// always sum to exactly d. A non-positive duration yields no slices.
func Split(start time.Time, d time.Duration, g Granularity) []Slice {
	if d <= 0 {
		return nil
	}

	end := start.Add(d)
	var slices []Slice

	// Walk a cursor from start to end, one bucket at a time. The cursor
	// strictly advances, so the walk terminates.
	cursor := start
	for cursor.Before(end) {
		sliceEnd := g.nextBoundary(cursor)
		if end.Before(sliceEnd) {
			sliceEnd = end
		}
		if secs := sliceEnd.Sub(cursor).Seconds(); secs > 0 {
			slices = append(slices, Slice{Bucket: g.BucketKey(cursor), Seconds: secs})
		}
		cursor = sliceEnd
	}

	return slices
}
