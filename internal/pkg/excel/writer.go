package excel

import (
	"fmt"
	"io"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
	"github.com/xuri/excelize/v2"
)

const (
	dailySheet   = "日统计"
	monthlySheet = "月统计"
)

var (
	dailyHeader = []string{
		"姓名", "日期", "上午打卡", "下午打卡", "晚班打卡",
		"白班工时", "加班工时", "午餐补贴", "夜宵补贴", "总补贴",
	}
	monthlyHeader = []string{
		"姓名", "月份", "出勤天数", "月度白班工时", "月度加班工时", "平均日工时", "月度餐补",
	}
)

// WriteReport renders the daily and monthly statistics into a styled
// two-sheet workbook and streams it to w.
func WriteReport(daily []stats.DayStatResponse, monthly []stats.MonthlyStatResponse, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return fmt.Errorf("rename daily sheet: %w", err)
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("create monthly sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	writeHeader(f, dailySheet, dailyHeader, headerStyle)
	for i, d := range daily {
		setRow(f, dailySheet, i+2, []any{
			d.EmployeeName,
			d.Date,
			formatPair(d.MorningIn, d.MorningOut),
			formatPair(d.AfternoonIn, d.AfternoonOut),
			formatPair(d.NightIn, d.NightOut),
			d.WhiteHours,
			d.OvertimeHours,
			d.LunchAllowance,
			d.SnackAllowance,
			d.TotalAllowance,
		})
	}

	writeHeader(f, monthlySheet, monthlyHeader, headerStyle)
	for i, m := range monthly {
		setRow(f, monthlySheet, i+2, []any{
			m.EmployeeName,
			m.Month,
			m.AttendanceDays,
			m.WhiteHours,
			m.OvertimeHours,
			m.AvgDailyHours,
			m.MealAllowance,
		})
	}

	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string, labels []string, style int) {
	for i, label := range labels {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, label)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func formatPair(in, out string) string {
	if in != "" && out != "" {
		return in + " - " + out
	}
	return "-"
}
