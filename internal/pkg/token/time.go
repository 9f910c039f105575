package token

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "2025-07-23 07:45:19" — embedded date-time, keep the time of day.
	dateTimeRe = regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}\s+(\d{1,2}):(\d{1,2})(?::\d{1,2})?$`)
	// Pure digit or decimal string; Excel day fraction unless it is a
	// bare 3-4 digit clock like "0830".
	dayFractionRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	bareClockRe   = regexp.MustCompile(`^\d{3,4}$`)
	// 上午8:30 / 下午2 — localized meridiem prefix.
	zhMeridiemRe = regexp.MustCompile(`^(上午|下午)\s*(\d{1,2})[:.]?(\d{1,2})?$`)
	// 2:30 PM / 2.30pm
	meridiemRe = regexp.MustCompile(`(?i)^(\d{1,2})[:.](\d{1,2})\s*([AP]M)$`)
	// 8:30 / 8.30 / 8:30:00 — seconds ignored.
	clockRe = regexp.MustCompile(`^(\d{1,2})[:.](\d{1,2})(?::\d{1,2})?$`)
	// 8点30分 / 8时30 / 8点
	zhClockRe = regexp.MustCompile(`^(\d{1,2})\s*[点时]\s*(\d{1,2})?\s*分?$`)
	// Whole-cell time range: two tokens joined by -, ~, 到 or 至.
	// Anchored so date-shaped values like "2025-08-01" never match.
	rangeRe = regexp.MustCompile(`^(\d{1,2}[:.]?\d{1,2})\s*(?:[-~]|到|至)\s*(\d{1,2}[:.]?\d{1,2})$`)
)

// NormalizeTime canonicalizes one raw cell value into a zero-padded
// 24-hour "HH:MM" token. Numbers are read as Excel day fractions.
// Unrecognizable input degrades to the empty string; it never errors.
func NormalizeTime(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return fromDayFraction(n)
	case float32:
		return fromDayFraction(float64(n))
	case int:
		return fromDayFraction(float64(n))
	case int64:
		return fromDayFraction(float64(n))
	case string:
		return normalizeTimeString(n)
	default:
		return ""
	}
}

// NormalizeTimeRange recognizes a cell whose whole value is an explicit
// time range ("08:30-12:00", "8:30到12:00", "0830~1200"). Both halves
// must independently normalize for the range to be accepted.
func NormalizeTimeRange(v any) (start, end string, ok bool) {
	s, isString := v.(string)
	if !isString {
		return "", "", false
	}
	m := rangeRe.FindStringSubmatch(foldWidth(strings.TrimSpace(s)))
	if m == nil {
		return "", "", false
	}
	start = normalizeTimeString(m[1])
	end = normalizeTimeString(m[2])
	if start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}

// normalizeTimeString is the priority-ordered recognizer chain; first
// match wins.
func normalizeTimeString(s string) string {
	raw := foldWidth(strings.TrimSpace(s))
	if raw == "" || raw == "-" || raw == "--" {
		return ""
	}
	if m := dateTimeRe.FindStringSubmatch(raw); m != nil {
		return clock(atoi(m[1]), atoi(m[2]))
	}
	if dayFractionRe.MatchString(raw) && !bareClockRe.MatchString(raw) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ""
		}
		return fromDayFraction(f)
	}
	if bareClockRe.MatchString(raw) {
		// HHmm or Hmm: the last two digits are minutes.
		return clock(atoi(raw[:len(raw)-2]), atoi(raw[len(raw)-2:]))
	}
	if m := zhMeridiemRe.FindStringSubmatch(raw); m != nil {
		h := atoi(m[2])
		min := 0
		if m[3] != "" {
			min = atoi(m[3])
		}
		if m[1] == "下午" && h < 12 {
			h += 12
		}
		if m[1] == "上午" && h == 12 {
			h = 0
		}
		return clock(h, min)
	}
	if m := meridiemRe.FindStringSubmatch(raw); m != nil {
		h := atoi(m[1])
		switch strings.ToUpper(m[3]) {
		case "PM":
			if h < 12 {
				h += 12
			}
		case "AM":
			if h == 12 {
				h = 0
			}
		}
		return clock(h, atoi(m[2]))
	}
	if m := clockRe.FindStringSubmatch(raw); m != nil {
		return clock(atoi(m[1]), atoi(m[2]))
	}
	if m := zhClockRe.FindStringSubmatch(raw); m != nil {
		min := 0
		if m[2] != "" {
			min = atoi(m[2])
		}
		return clock(atoi(m[1]), min)
	}
	return ""
}

func fromDayFraction(f float64) string {
	minutes := int(math.Round(f * 24 * 60))
	return clock(minutes/60, minutes%60)
}

func clock(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
