package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header []string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerCells))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadRows(t *testing.T) {
	buf := buildWorkbook(t,
		[]string{"姓名", "日期", "上午上班", "上午下班"},
		[][]any{
			{"张三", "2025-08-01", "8:30", "12:00"},
			{"李四", "2025-08-01", "13:30", "17:30"},
		},
	)

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "张三", rows[0]["姓名"])
	assert.Equal(t, "2025-08-01", rows[0]["日期"])
	assert.Equal(t, "8:30", rows[0]["上午上班"])
	assert.Equal(t, "李四", rows[1]["姓名"])
}

// Trailing cells a sheet omits still appear as empty strings so alias
// lookup sees a uniform row shape.
func TestReadRows_ShortRowPadded(t *testing.T) {
	buf := buildWorkbook(t,
		[]string{"姓名", "日期", "上午上班"},
		[][]any{{"张三", "2025-08-01"}},
	)

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["上午上班"])
}

func TestReadRows_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, []string{"姓名", "日期"}, nil)

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_NotAWorkbook(t *testing.T) {
	_, err := ReadRows(strings.NewReader("definitely not an xlsx"))

	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	daily := []stats.DayStatResponse{
		{
			EmployeeName:   "张三",
			Date:           "2025-08-01",
			MorningIn:      "08:30",
			MorningOut:     "12:00",
			AfternoonIn:    "13:30",
			AfternoonOut:   "17:30",
			WhiteHours:     7.5,
			OvertimeHours:  2,
			TotalAllowance: 0,
			AttendanceFlag: 1,
		},
	}
	monthly := []stats.MonthlyStatResponse{
		{
			EmployeeName:   "张三",
			Month:          "2025-08",
			AttendanceDays: 1,
			WhiteHours:     7.5,
			OvertimeHours:  2,
			AvgDailyHours:  9.5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(daily, monthly, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"日统计", "月统计"}, f.GetSheetList())

	name, err := f.GetCellValue("日统计", "A2")
	require.NoError(t, err)
	assert.Equal(t, "张三", name)

	morning, err := f.GetCellValue("日统计", "C2")
	require.NoError(t, err)
	assert.Equal(t, "08:30 - 12:00", morning)

	night, err := f.GetCellValue("日统计", "E2")
	require.NoError(t, err)
	assert.Equal(t, "-", night, "missing pair renders as a dash")

	white, err := f.GetCellValue("日统计", "F2")
	require.NoError(t, err)
	assert.Equal(t, "7.5", white)

	month, err := f.GetCellValue("月统计", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-08", month)

	avg, err := f.GetCellValue("月统计", "F2")
	require.NoError(t, err)
	assert.Equal(t, "9.5", avg)
}

func TestWriteReport_RoundTripThroughReader(t *testing.T) {
	daily := []stats.DayStatResponse{
		{EmployeeName: "张三", Date: "2025-08-01", WhiteHours: 7.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(daily, nil, &buf))

	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "张三", rows[0]["姓名"])
	assert.Equal(t, "2025-08-01", rows[0]["日期"])
}
