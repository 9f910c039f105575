package punch

import "errors"

// Punch normalization domain errors
var (
	// ErrNoUsableRows is the single fatal condition of the pipeline:
	// after normalization not one row had both a recognizable employee
	// name and a recognizable date. The message enumerates the accepted
	// column conventions so the caller can surface it to an end user.
	ErrNoUsableRows = errors.New("no usable attendance rows found: " +
		"expected a name column (姓名/员工/员工姓名), a date column (日期/打卡日期/出勤日期) " +
		"holding an Excel date or YYYY-MM-DD / YYYY/MM/DD value, " +
		"and punch times such as 08:30, 0830, 下午2:00 or an Excel time fraction")
)
