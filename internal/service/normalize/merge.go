package normalize

import (
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
)

// Merge implements punch.NormalizeService. Records sharing an
// (employee, date) key fold into one day record, in first-seen key
// order: In slots keep the earliest non-empty value, Out slots the
// latest, and segments accumulate then deduplicate by exact
// (start, end) equality. Earliest/latest are commutative and
// associative, so input order never changes the result.
func (s *normalizeServiceImpl) Merge(records []punch.NormalizedRecord) []punch.MergedDayRecord {
	index := make(map[string]int, len(records))
	merged := make([]punch.MergedDayRecord, 0, len(records))

	for _, r := range records {
		key := r.EmployeeName + "\x00" + r.Date
		i, seen := index[key]
		if !seen {
			i = len(merged)
			index[key] = i
			merged = append(merged, punch.MergedDayRecord{
				EmployeeName: r.EmployeeName,
				Date:         r.Date,
			})
		}
		m := &merged[i]
		m.MorningIn = pickEarlier(m.MorningIn, r.MorningIn)
		m.MorningOut = pickLater(m.MorningOut, r.MorningOut)
		m.AfternoonIn = pickEarlier(m.AfternoonIn, r.AfternoonIn)
		m.AfternoonOut = pickLater(m.AfternoonOut, r.AfternoonOut)
		m.NightIn = pickEarlier(m.NightIn, r.NightIn)
		m.NightOut = pickLater(m.NightOut, r.NightOut)
		m.GenericIn = pickEarlier(m.GenericIn, r.GenericIn)
		m.GenericOut = pickLater(m.GenericOut, r.GenericOut)
		m.Segments = append(m.Segments, r.Segments...)
	}

	for i := range merged {
		merged[i].Segments = dedupSegments(merged[i].Segments)
	}
	return merged
}

func pickEarlier(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if a <= b {
		return a
	}
	return b
}

func pickLater(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if a >= b {
		return a
	}
	return b
}

// dedupSegments drops exact duplicates, keeping insertion order.
func dedupSegments(segments []punch.TimeSegment) []punch.TimeSegment {
	if len(segments) < 2 {
		return segments
	}
	seen := make(map[punch.TimeSegment]struct{}, len(segments))
	out := segments[:0]
	for _, seg := range segments {
		if _, dup := seen[seg]; dup {
			continue
		}
		seen[seg] = struct{}{}
		out = append(out, seg)
	}
	return out
}
