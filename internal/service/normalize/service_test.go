package normalize

import (
	"testing"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRow_NamedSlots(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"姓名":   "张三",
		"日期":   "2025-08-01",
		"上午上班": "8:30",
		"上午下班": "12:00",
		"下午上班": "13:30",
		"下午下班": "17:30",
		"晚班上班": "18:00",
		"晚班下班": "20:00",
	})

	assert.Equal(t, "张三", rec.EmployeeName)
	assert.Equal(t, "2025-08-01", rec.Date)
	assert.Equal(t, "08:30", rec.MorningIn)
	assert.Equal(t, "12:00", rec.MorningOut)
	assert.Equal(t, "13:30", rec.AfternoonIn)
	assert.Equal(t, "17:30", rec.AfternoonOut)
	assert.Equal(t, "18:00", rec.NightIn)
	assert.Equal(t, "20:00", rec.NightOut)
	assert.True(t, rec.Usable())

	assert.Equal(t, []punch.TimeSegment{
		{Start: "08:30", End: "12:00"},
		{Start: "13:30", End: "17:30"},
		{Start: "18:00", End: "20:00"},
	}, rec.Segments)
}

// Each logical field resolves through its alias list, so dialects like
// 员工/打卡日期/上班(上午) normalize identically.
func TestNormalizeRow_AliasResolution(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"员工":     "李四",
		"打卡日期":   "2025/8/2",
		"上班(上午)": "0830",
		"下班(上午)": "1200",
	})

	assert.Equal(t, "李四", rec.EmployeeName)
	assert.Equal(t, "2025-08-02", rec.Date)
	assert.Equal(t, "08:30", rec.MorningIn)
	assert.Equal(t, "12:00", rec.MorningOut)
}

// The first alias with a non-blank value wins; blanks fall through.
func TestNormalizeRow_AliasPriority(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"姓名":   "  ",
		"员工":   "王五",
		"日期":   "2025-08-01",
		"员工姓名": "别名",
	})

	assert.Equal(t, "王五", rec.EmployeeName)
}

func TestNormalizeRow_NumericCells(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"姓名":   "张三",
		"日期":   float64(45870),
		"上班时间": 0.3541666666666667,
		"下班时间": 0.5,
	})

	assert.Equal(t, "2025-08-01", rec.Date)
	assert.Equal(t, "08:30", rec.GenericIn)
	assert.Equal(t, "12:00", rec.GenericOut)
}

// Segments found by extraction backfill the named display slots when
// the row carried no named punch column at all.
func TestNormalizeRow_BackfillDisplaySlots(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"姓名":  "张三",
		"日期":  "2025-08-01",
		"时间段": "09:00-11:00",
	})

	require.Equal(t, []punch.TimeSegment{{Start: "09:00", End: "11:00"}}, rec.Segments)
	assert.Equal(t, "09:00", rec.MorningIn)
	assert.Equal(t, "11:00", rec.MorningOut)
	assert.Empty(t, rec.AfternoonIn)
	assert.Empty(t, rec.NightIn)
}

// Backfill never overwrites a slot the row filled itself.
func TestNormalizeRow_NoBackfillWhenNamedSlotPresent(t *testing.T) {
	svc := NewNormalizeService()

	rec := svc.NormalizeRow(punch.RawRow{
		"姓名":   "张三",
		"日期":   "2025-08-01",
		"上午上班": "8:30",
		"时间段":  "18:30-19:30",
	})

	assert.Equal(t, "08:30", rec.MorningIn)
	assert.Empty(t, rec.MorningOut)
	assert.Empty(t, rec.NightIn)
}

func TestNormalizeRow_Unusable(t *testing.T) {
	svc := NewNormalizeService()

	cases := []struct {
		name string
		row  punch.RawRow
	}{
		{"missing name", punch.RawRow{"日期": "2025-08-01", "上午上班": "8:30"}},
		{"missing date", punch.RawRow{"姓名": "张三", "上午上班": "8:30"}},
		{"unparseable date", punch.RawRow{"姓名": "张三", "日期": "someday"}},
		{"unrelated columns", punch.RawRow{"foo": "bar"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.False(t, svc.NormalizeRow(c.row).Usable())
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	svc := NewNormalizeService()

	records := svc.NormalizeRows([]punch.RawRow{
		{"姓名": "张三", "日期": "2025-08-01"},
		{"姓名": "李四", "日期": "2025-08-02"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, "张三", records[0].EmployeeName)
	assert.Equal(t, "李四", records[1].EmployeeName)
}
