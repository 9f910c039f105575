package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/domain/stats"
	"github.com/punchcard-io/punchcard-backend-go/internal/handler/http/response"
	"github.com/punchcard-io/punchcard-backend-go/internal/pkg/excel"
)

const exportFileName = "考勤统计报表.xlsx"

type ReportHandler interface {
	BuildFromWorkbook(w http.ResponseWriter, r *http.Request)
	BuildFromRows(w http.ResponseWriter, r *http.Request)
	ExportWorkbook(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService  stats.ReportService
	maxUploadBytes int64
}

func NewReportHandler(reportService stats.ReportService, maxUploadBytes int64) ReportHandler {
	return &reportHandlerImpl{
		reportService:  reportService,
		maxUploadBytes: maxUploadBytes,
	}
}

// BuildFromWorkbook implements ReportHandler. It accepts an uploaded
// xlsx workbook and responds with the computed report.
func (h *reportHandlerImpl) BuildFromWorkbook(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readWorkbookRows(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.BuildFromRows(r.Context(), rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// BuildFromRows implements ReportHandler. It accepts pre-read rows as
// JSON, for clients that parse the spreadsheet themselves.
func (h *reportHandlerImpl) BuildFromRows(w http.ResponseWriter, r *http.Request) {
	var req stats.BuildFromRowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode rows payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.reportService.BuildFromRows(r.Context(), req.Rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportWorkbook implements ReportHandler. It computes the report for
// an uploaded workbook and streams it back as a two-sheet xlsx.
func (h *reportHandlerImpl) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readWorkbookRows(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.BuildFromRows(r.Context(), rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteReport(report.Daily, report.Monthly, &buf); err != nil {
		slog.Error("Failed to render export workbook", "error", err)
		response.InternalServerError(w, "Failed to render export workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(
		`attachment; filename="attendance-report.xlsx"; filename*=UTF-8''%s`,
		url.PathEscape(exportFileName),
	))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to stream export workbook", "error", err)
	}
}

// readWorkbookRows pulls the uploaded workbook out of the multipart
// form and reads it into raw rows, writing the error response itself
// when anything fails.
func (h *reportHandlerImpl) readWorkbookRows(w http.ResponseWriter, r *http.Request) ([]punch.RawRow, bool) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return nil, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return nil, false
	}
	defer file.Close()

	rows, err := excel.ReadRows(file)
	if err != nil {
		slog.Error("Failed to read workbook", "error", err)
		response.BadRequest(w, "Unreadable workbook: please upload a valid .xlsx file", nil)
		return nil, false
	}

	return rows, true
}
