package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
)

type reportServiceImpl struct {
	normalizer punch.NormalizeService
	windows    stats.TimeWindows
	meals      stats.MealRules
}

func NewReportService(normalizer punch.NormalizeService, windows stats.TimeWindows, meals stats.MealRules) stats.ReportService {
	return &reportServiceImpl{
		normalizer: normalizer,
		windows:    windows,
		meals:      meals,
	}
}

// BuildFromRows implements stats.ReportService.
func (s *reportServiceImpl) BuildFromRows(ctx context.Context, rows []punch.RawRow) (stats.Report, error) {
	records := s.normalizer.NormalizeRows(rows)

	usable := make([]punch.NormalizedRecord, 0, len(records))
	for _, r := range records {
		if r.Usable() {
			usable = append(usable, r)
		}
	}
	if len(usable) == 0 {
		return stats.Report{}, punch.ErrNoUsableRows
	}

	merged := s.normalizer.Merge(usable)

	dayStats := make([]stats.DayStat, 0, len(merged))
	daily := make([]stats.DayStatResponse, 0, len(merged))
	for _, m := range merged {
		day := s.computeDay(m)
		dayStats = append(dayStats, day)
		daily = append(daily, stats.NewDayStatResponse(day))
	}

	monthlyStats := aggregateMonthly(dayStats)
	monthly := make([]stats.MonthlyStatResponse, 0, len(monthlyStats))
	for _, m := range monthlyStats {
		monthly = append(monthly, stats.NewMonthlyStatResponse(m))
	}

	return stats.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Daily:       daily,
		Monthly:     monthly,
		Company:     stats.NewCompanyStatResponse(aggregateCompany(dayStats)),
	}, nil
}
