package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/fixtures"
	"github.com/punchcard-io/punchcard-backend-go/internal/pkg/token"
)

type normalizeServiceImpl struct{}

func NewNormalizeService() punch.NormalizeService {
	return &normalizeServiceImpl{}
}

// NormalizeRow implements punch.NormalizeService.
func (s *normalizeServiceImpl) NormalizeRow(row punch.RawRow) punch.NormalizedRecord {
	rec := punch.NormalizedRecord{
		EmployeeName: cellString(lookupCell(row, fixtures.NameAliases)),
		Date:         token.NormalizeDate(lookupCell(row, fixtures.DateAliases)),

		MorningIn:    token.NormalizeTime(lookupCell(row, fixtures.MorningInAliases)),
		MorningOut:   token.NormalizeTime(lookupCell(row, fixtures.MorningOutAliases)),
		AfternoonIn:  token.NormalizeTime(lookupCell(row, fixtures.AfternoonInAliases)),
		AfternoonOut: token.NormalizeTime(lookupCell(row, fixtures.AfternoonOutAliases)),
		NightIn:      token.NormalizeTime(lookupCell(row, fixtures.NightInAliases)),
		NightOut:     token.NormalizeTime(lookupCell(row, fixtures.NightOutAliases)),
		GenericIn:    token.NormalizeTime(lookupCell(row, fixtures.GenericInAliases)),
		GenericOut:   token.NormalizeTime(lookupCell(row, fixtures.GenericOutAliases)),

		Segments: ExtractSegments(row),
	}
	backfillDisplaySlots(&rec)
	return rec
}

// NormalizeRows implements punch.NormalizeService.
func (s *normalizeServiceImpl) NormalizeRows(rows []punch.RawRow) []punch.NormalizedRecord {
	records := make([]punch.NormalizedRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.NormalizeRow(row))
	}
	return records
}

// lookupCell resolves a logical field through its ordered alias list:
// the first alias with a present, non-blank value wins.
func lookupCell(row punch.RawRow, aliases []string) any {
	for _, label := range aliases {
		v, ok := row[label]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// backfillDisplaySlots copies extracted segments into the named slots,
// in encounter order, when the row had no named punch at all. This is
// purely for presentation; hour computation always prefers the raw
// segment list.
func backfillDisplaySlots(rec *punch.NormalizedRecord) {
	if len(rec.Segments) == 0 {
		return
	}
	if rec.MorningIn != "" || rec.MorningOut != "" ||
		rec.AfternoonIn != "" || rec.AfternoonOut != "" ||
		rec.NightIn != "" || rec.NightOut != "" {
		return
	}
	slots := [][2]*string{
		{&rec.MorningIn, &rec.MorningOut},
		{&rec.AfternoonIn, &rec.AfternoonOut},
		{&rec.NightIn, &rec.NightOut},
	}
	for i, seg := range rec.Segments {
		if i >= len(slots) {
			break
		}
		*slots[i][0] = seg.Start
		*slots[i][1] = seg.End
	}
}
