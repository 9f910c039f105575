package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ymdRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	// 2025/8/1, 2025.8.1 and 2025年8月1日 all normalize to dashes first.
	dateSeparators = strings.NewReplacer(
		".", "-",
		"/", "-",
		"年", "-",
		"月", "-",
		"日", "",
	)
)

// NormalizeDate canonicalizes one raw cell value into "YYYY-MM-DD".
// Numbers are read as Excel serial dates, digit-only strings are
// retried as serial dates, and separator variants (slash, dot, dash,
// 年月日) are accepted. Unrecognizable input degrades to the empty
// string; it never errors.
func NormalizeDate(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return fromSerialDate(n)
	case float32:
		return fromSerialDate(float64(n))
	case int:
		return fromSerialDate(float64(n))
	case int64:
		return fromSerialDate(float64(n))
	case string:
		return normalizeDateString(n)
	default:
		return ""
	}
}

func normalizeDateString(s string) string {
	raw := foldWidth(strings.TrimSpace(s))
	if raw == "" {
		return ""
	}
	if dayFractionRe.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			if d := fromSerialDate(f); d != "" {
				return d
			}
		}
	}
	if m := ymdRe.FindStringSubmatch(dateSeparators.Replace(raw)); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[1], atoi(m[2]), atoi(m[3]))
	}
	return ""
}

func fromSerialDate(serial float64) string {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
