package stats

import (
	"context"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
)

// ReportService runs the whole pipeline: normalize rows, merge by
// (employee, date), compute per-day hours and allowances, and reduce
// to monthly and company aggregates. It returns punch.ErrNoUsableRows
// when not a single row carried a recognizable name and date.
type ReportService interface {
	BuildFromRows(ctx context.Context, rows []punch.RawRow) (Report, error)
}
