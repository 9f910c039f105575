package stats

// TimeWindow is one fixed daily interval against which punch segments
// are measured. Start and End are canonical "HH:MM" tokens on the same
// implicit calendar date as the segments.
type TimeWindow struct {
	Name          string
	Start         string
	End           string
	StandardHours float64
}

// TimeWindows holds the three standard windows of a working day.
// Morning and afternoon overlap counts as white (regular) hours, night
// overlap counts as overtime.
type TimeWindows struct {
	Morning   TimeWindow
	Afternoon TimeWindow
	Night     TimeWindow
}

// MealRule is a flat, non-prorated allowance: Amount is paid in full
// once the matching hour total reaches ThresholdHours.
type MealRule struct {
	ThresholdHours float64
	Amount         float64
}

// MealRules pairs the lunch rule (keyed on white hours) with the snack
// rule (keyed on overtime hours).
type MealRules struct {
	Lunch MealRule
	Snack MealRule
}

// DayStat is the computed result for one (employee, date) day record.
// Hour values are rounded to 2 decimals; allowances are flat currency
// units. The punch slots are carried for presentation only.
type DayStat struct {
	EmployeeName string
	Date         string

	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	NightIn      string
	NightOut     string

	WhiteHours     float64
	OvertimeHours  float64
	LunchAllowance float64
	SnackAllowance float64
	TotalAllowance float64
	AttendanceFlag int
}

// MonthlyStat is the reduction of one employee's day stats over one
// month (date prefix YYYY-MM).
type MonthlyStat struct {
	EmployeeName   string
	Month          string
	AttendanceDays int
	WhiteHours     float64
	OvertimeHours  float64
	AvgDailyHours  float64
	MealAllowance  float64
}

// CompanyStat is the single company-wide reduction over all day stats
// of one computation run.
type CompanyStat struct {
	TotalEmployees      int
	TotalAttendance     int
	TotalLunchAllowance float64
	TotalSnackAllowance float64
	TotalOvertimeHours  float64
	TotalHours          float64
}
