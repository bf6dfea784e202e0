package interval

import "sort"

// ActiveResidue returns the sub-spans of the activity span [start, end) that
// do not overlap any of the given idle spans. The result is sorted by start
// time and pairwise non-overlapping, and the outcome does not depend on the
// order of the idle spans. Idle spans with zero or negative length are
// ignored rather than corrupting the arithmetic.
func ActiveResidue(activity Span, idle []Span) []Span {
	if !activity.Start.Before(activity.End) {
		return nil
	}

	segments := []Span{activity}
	for _, iv := range idle {
		if !iv.Start.Before(iv.End) {
			continue
		}
		segments = subtract(segments, iv)
		if len(segments) == 0 {
			break
		}
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start.Before(segments[j].Start)
	})
	return segments
}

// subtract removes iv from every segment, producing at most two fragments
// per segment. Segments disjoint from iv pass through unchanged; segments
// fully covered by iv are dropped.
func subtract(segments []Span, iv Span) []Span {
	out := segments[:0:0]
	for _, seg := range segments {
		if !seg.Overlaps(iv) {
			out = append(out, seg)
			continue
		}
		if seg.Start.Before(iv.Start) {
			out = append(out, Span{Start: seg.Start, End: iv.Start})
		}
		if iv.End.Before(seg.End) {
			out = append(out, Span{Start: iv.End, End: seg.End})
		}
	}
	return out
}
