package report

import (
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
)

// aggregateMonthly reduces day stats into one row per
// (employee, month) key, in encounter order. Sums and counts are
// commutative, so input order only affects row order, never values.
func aggregateMonthly(days []stats.DayStat) []stats.MonthlyStat {
	index := make(map[string]int)
	var monthly []stats.MonthlyStat

	for _, d := range days {
		month := d.Date
		if len(month) > 7 {
			month = month[:7]
		}
		key := d.EmployeeName + "\x00" + month
		i, seen := index[key]
		if !seen {
			i = len(monthly)
			index[key] = i
			monthly = append(monthly, stats.MonthlyStat{
				EmployeeName: d.EmployeeName,
				Month:        month,
			})
		}
		m := &monthly[i]
		m.AttendanceDays += d.AttendanceFlag
		m.WhiteHours += d.WhiteHours
		m.OvertimeHours += d.OvertimeHours
		m.MealAllowance += d.TotalAllowance
	}

	for i := range monthly {
		m := &monthly[i]
		if m.AttendanceDays > 0 {
			m.AvgDailyHours = round2((m.WhiteHours + m.OvertimeHours) / float64(m.AttendanceDays))
		}
		m.WhiteHours = round2(m.WhiteHours)
		m.OvertimeHours = round2(m.OvertimeHours)
		m.MealAllowance = round2(m.MealAllowance)
	}
	return monthly
}

// aggregateCompany reduces all day stats of a run into the single
// company-wide summary.
func aggregateCompany(days []stats.DayStat) stats.CompanyStat {
	employees := make(map[string]struct{})
	var c stats.CompanyStat
	var whiteHours float64

	for _, d := range days {
		if d.EmployeeName != "" {
			employees[d.EmployeeName] = struct{}{}
		}
		c.TotalAttendance += d.AttendanceFlag
		c.TotalLunchAllowance += d.LunchAllowance
		c.TotalSnackAllowance += d.SnackAllowance
		c.TotalOvertimeHours += d.OvertimeHours
		whiteHours += d.WhiteHours
	}

	c.TotalEmployees = len(employees)
	c.TotalLunchAllowance = round2(c.TotalLunchAllowance)
	c.TotalSnackAllowance = round2(c.TotalSnackAllowance)
	c.TotalHours = round2(whiteHours + c.TotalOvertimeHours)
	c.TotalOvertimeHours = round2(c.TotalOvertimeHours)
	return c
}
