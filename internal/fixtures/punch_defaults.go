package fixtures

import (
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
)

// ==========================================
// COLUMN LABEL ALIASES
// ==========================================
//
// Every logical field of a punch row resolves through an ordered alias
// list, consulted in priority order against the raw column labels.
// New spreadsheet dialects are supported by extending these tables,
// not by touching the normalization code.

var (
	NameAliases = []string{"姓名", "员工", "员工姓名"}
	DateAliases = []string{"日期", "打卡日期", "出勤日期"}

	MorningInAliases    = []string{"上午上班", "上班(上午)", "上午打卡开始"}
	MorningOutAliases   = []string{"上午下班", "下班(上午)", "上午打卡结束"}
	AfternoonInAliases  = []string{"下午上班", "上班(下午)", "下午打卡开始"}
	AfternoonOutAliases = []string{"下午下班", "下班(下午)", "下午打卡结束"}
	NightInAliases      = []string{"晚班上班", "加班开始", "晚班打卡开始"}
	NightOutAliases     = []string{"晚班下班", "加班结束", "晚班打卡结束"}

	GenericInAliases = []string{
		"上班时间", "上班", "签到时间", "签到", "第一打卡", "第一次打卡",
		"打卡开始", "上班打卡", "打卡上班", "考勤开始",
	}
	GenericOutAliases = []string{
		"下班时间", "下班", "签退时间", "签退", "最后打卡", "最后一次打卡",
		"打卡结束", "下班打卡", "打卡下班", "考勤结束",
	}
)

// ==========================================
// LABEL CLASSIFICATION KEYWORDS
// ==========================================
//
// Used by segment extraction to classify a single-time cell by its
// column label when no alias matched. Matching is case-insensitive
// substring containment; the in set is consulted first.

var (
	InLabelKeywords  = []string{"上班", "签到", "打卡上", "上班打卡", "开始", "in"}
	OutLabelKeywords = []string{"下班", "签退", "打卡下", "下班打卡", "结束", "out"}
)

// ==========================================
// STANDARD WINDOWS AND MEAL RULES
// ==========================================

// DefaultTimeWindows returns the three fixed daily windows. Morning
// and afternoon overlap is counted as white hours, night overlap as
// overtime.
func DefaultTimeWindows() stats.TimeWindows {
	return stats.TimeWindows{
		Morning:   stats.TimeWindow{Name: "morning", Start: "08:30", End: "12:00", StandardHours: 3.5},
		Afternoon: stats.TimeWindow{Name: "afternoon", Start: "13:30", End: "17:30", StandardHours: 4.0},
		Night:     stats.TimeWindow{Name: "night", Start: "18:00", End: "22:00", StandardHours: 4.0},
	}
}

// DefaultMealRules returns the two flat allowance rules: lunch pays 15
// once white hours reach 8, snack pays 10 once overtime reaches 4.
func DefaultMealRules() stats.MealRules {
	return stats.MealRules{
		Lunch: stats.MealRule{ThresholdHours: 8, Amount: 15},
		Snack: stats.MealRule{ThresholdHours: 4, Amount: 10},
	}
}
