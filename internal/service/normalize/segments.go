package normalize

import (
	"sort"
	"strings"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/fixtures"
	"github.com/punchcard-io/punchcard-backend-go/internal/pkg/token"
)

type labelClass int

const (
	labelLoose labelClass = iota
	labelIn
	labelOut
)

// ExtractSegments scans every labeled cell of one raw row and pairs
// discovered times into segments, independent of the named-slot
// aliases. Cells that are an explicit range become segments directly;
// single times are bucketed by label keyword (in/out/loose), the
// buckets sorted, and in/out paired positionally. When no in/out pair
// produced a segment, loose times pair up as adjacent couples.
//
// This is a best-effort reconciliation of heterogeneously labeled
// sheets: mismatched punch counts yield a partial pairing, never an
// error.
func ExtractSegments(row punch.RawRow) []punch.TimeSegment {
	// Map iteration order is random; sorted labels keep extraction
	// deterministic. The buckets get sorted anyway, so only the order
	// of explicit range segments depends on it.
	labels := make([]string, 0, len(row))
	for label := range row {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var segments []punch.TimeSegment
	var ins, outs, loose []string
	for _, label := range labels {
		value := row[label]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if start, end, ok := token.NormalizeTimeRange(value); ok {
			if end > start {
				segments = append(segments, punch.TimeSegment{Start: start, End: end})
			}
			continue
		}
		t := token.NormalizeTime(value)
		if t == "" {
			continue
		}
		switch classifyLabel(label) {
		case labelIn:
			ins = append(ins, t)
		case labelOut:
			outs = append(outs, t)
		default:
			loose = append(loose, t)
		}
	}

	// Lexicographic sort is chronological for zero-padded HH:MM.
	sort.Strings(ins)
	sort.Strings(outs)
	sort.Strings(loose)

	for i := 0; i < min(len(ins), len(outs)); i++ {
		if outs[i] > ins[i] {
			segments = append(segments, punch.TimeSegment{Start: ins[i], End: outs[i]})
		}
	}

	if len(segments) == 0 && len(loose) >= 2 {
		for i := 0; i+1 < len(loose); i += 2 {
			if loose[i+1] > loose[i] {
				segments = append(segments, punch.TimeSegment{Start: loose[i], End: loose[i+1]})
			}
		}
	}
	return segments
}

func classifyLabel(label string) labelClass {
	l := strings.ToLower(label)
	for _, kw := range fixtures.InLabelKeywords {
		if strings.Contains(l, kw) {
			return labelIn
		}
	}
	for _, kw := range fixtures.OutLabelKeywords {
		if strings.Contains(l, kw) {
			return labelOut
		}
	}
	return labelLoose
}
