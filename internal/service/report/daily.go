package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
)

// computeDay derives one DayStat from a merged day record. Segment
// source priority: the extracted segment list; else any complete named
// in/out pair; else the generic pair. Each contributing segment adds
// its clamped overlap with the three standard windows — morning and
// afternoon minutes become white hours, night minutes overtime.
func (s *reportServiceImpl) computeDay(rec punch.MergedDayRecord) stats.DayStat {
	segments := rec.Segments
	if len(segments) == 0 {
		for _, pair := range [][2]string{
			{rec.MorningIn, rec.MorningOut},
			{rec.AfternoonIn, rec.AfternoonOut},
			{rec.NightIn, rec.NightOut},
		} {
			if pair[0] != "" && pair[1] != "" {
				segments = append(segments, punch.TimeSegment{Start: pair[0], End: pair[1]})
			}
		}
		if len(segments) == 0 && rec.GenericIn != "" && rec.GenericOut != "" {
			segments = append(segments, punch.TimeSegment{Start: rec.GenericIn, End: rec.GenericOut})
		}
	}

	var whiteMinutes, nightMinutes int
	for _, seg := range segments {
		start := minuteOfDay(seg.Start)
		end := minuteOfDay(seg.End)
		if end <= start {
			continue
		}
		whiteMinutes += overlapMinutes(start, end, s.windows.Morning)
		whiteMinutes += overlapMinutes(start, end, s.windows.Afternoon)
		nightMinutes += overlapMinutes(start, end, s.windows.Night)
	}

	whiteHours := float64(whiteMinutes) / 60
	overtimeHours := float64(nightMinutes) / 60
	lunch, snack := s.mealAllowances(whiteHours, overtimeHours)

	flag := 0
	if whiteHours > 0 || overtimeHours > 0 {
		flag = 1
	}

	return stats.DayStat{
		EmployeeName:   rec.EmployeeName,
		Date:           rec.Date,
		MorningIn:      rec.MorningIn,
		MorningOut:     rec.MorningOut,
		AfternoonIn:    rec.AfternoonIn,
		AfternoonOut:   rec.AfternoonOut,
		NightIn:        rec.NightIn,
		NightOut:       rec.NightOut,
		WhiteHours:     round2(whiteHours),
		OvertimeHours:  round2(overtimeHours),
		LunchAllowance: lunch,
		SnackAllowance: snack,
		TotalAllowance: lunch + snack,
		AttendanceFlag: flag,
	}
}

// mealAllowances applies the flat, non-prorated threshold rules.
func (s *reportServiceImpl) mealAllowances(whiteHours, overtimeHours float64) (lunch, snack float64) {
	if whiteHours >= s.meals.Lunch.ThresholdHours {
		lunch = s.meals.Lunch.Amount
	}
	if overtimeHours >= s.meals.Snack.ThresholdHours {
		snack = s.meals.Snack.Amount
	}
	return lunch, snack
}

// overlapMinutes is the clamped intersection of a segment with one
// standard window, in minutes.
func overlapMinutes(segStart, segEnd int, win stats.TimeWindow) int {
	start := max(segStart, minuteOfDay(win.Start))
	end := min(segEnd, minuteOfDay(win.End))
	if end <= start {
		return 0
	}
	return end - start
}

// minuteOfDay converts a canonical "HH:MM" token to minutes since
// midnight.
func minuteOfDay(t string) int {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}

// round2 rounds half away from zero at the hundredths place.
func round2(n float64) float64 {
	return math.Round(n*100) / 100
}
