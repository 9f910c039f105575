package stats

import (
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// BuildFromRowsRequest carries pre-read rows, e.g. from a client that
// parsed the spreadsheet itself. Cell values may be strings or numbers.
type BuildFromRowsRequest struct {
	Rows []punch.RawRow `json:"rows"`
}

func (r *BuildFromRowsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "rows is required and must not be empty",
		})
	}

	if len(r.Rows) > 100000 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "rows must not exceed 100000 entries",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Report is the full output of one computation run.
type Report struct {
	ID          string                `json:"id"`
	GeneratedAt string                `json:"generated_at"`
	Daily       []DayStatResponse     `json:"daily"`
	Monthly     []MonthlyStatResponse `json:"monthly"`
	Company     CompanyStatResponse   `json:"company"`
}

type DayStatResponse struct {
	EmployeeName   string  `json:"employee_name"`
	Date           string  `json:"date"`
	MorningIn      string  `json:"morning_in,omitempty"`
	MorningOut     string  `json:"morning_out,omitempty"`
	AfternoonIn    string  `json:"afternoon_in,omitempty"`
	AfternoonOut   string  `json:"afternoon_out,omitempty"`
	NightIn        string  `json:"night_in,omitempty"`
	NightOut       string  `json:"night_out,omitempty"`
	WhiteHours     float64 `json:"white_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	LunchAllowance float64 `json:"lunch_allowance"`
	SnackAllowance float64 `json:"snack_allowance"`
	TotalAllowance float64 `json:"total_allowance"`
	AttendanceFlag int     `json:"attendance_flag"`
}

type MonthlyStatResponse struct {
	EmployeeName   string  `json:"employee_name"`
	Month          string  `json:"month"`
	AttendanceDays int     `json:"attendance_days"`
	WhiteHours     float64 `json:"white_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	AvgDailyHours  float64 `json:"avg_daily_hours"`
	MealAllowance  float64 `json:"meal_allowance"`
}

type CompanyStatResponse struct {
	TotalEmployees      int     `json:"total_employees"`
	TotalAttendance     int     `json:"total_attendance"`
	TotalLunchAllowance float64 `json:"total_lunch_allowance"`
	TotalSnackAllowance float64 `json:"total_snack_allowance"`
	TotalOvertimeHours  float64 `json:"total_overtime_hours"`
	TotalHours          float64 `json:"total_hours"`
}

func NewDayStatResponse(d DayStat) DayStatResponse {
	return DayStatResponse{
		EmployeeName:   d.EmployeeName,
		Date:           d.Date,
		MorningIn:      d.MorningIn,
		MorningOut:     d.MorningOut,
		AfternoonIn:    d.AfternoonIn,
		AfternoonOut:   d.AfternoonOut,
		NightIn:        d.NightIn,
		NightOut:       d.NightOut,
		WhiteHours:     d.WhiteHours,
		OvertimeHours:  d.OvertimeHours,
		LunchAllowance: d.LunchAllowance,
		SnackAllowance: d.SnackAllowance,
		TotalAllowance: d.TotalAllowance,
		AttendanceFlag: d.AttendanceFlag,
	}
}

func NewMonthlyStatResponse(m MonthlyStat) MonthlyStatResponse {
	return MonthlyStatResponse{
		EmployeeName:   m.EmployeeName,
		Month:          m.Month,
		AttendanceDays: m.AttendanceDays,
		WhiteHours:     m.WhiteHours,
		OvertimeHours:  m.OvertimeHours,
		AvgDailyHours:  m.AvgDailyHours,
		MealAllowance:  m.MealAllowance,
	}
}

func NewCompanyStatResponse(c CompanyStat) CompanyStatResponse {
	return CompanyStatResponse{
		TotalEmployees:      c.TotalEmployees,
		TotalAttendance:     c.TotalAttendance,
		TotalLunchAllowance: c.TotalLunchAllowance,
		TotalSnackAllowance: c.TotalSnackAllowance,
		TotalOvertimeHours:  c.TotalOvertimeHours,
		TotalHours:          c.TotalHours,
	}
}
