package main

import (
	"fmt"
	"net/http"

	"github.com/punchcard-io/punchcard-backend-go/internal/config"
	"github.com/punchcard-io/punchcard-backend-go/internal/fixtures"
	appHTTP "github.com/punchcard-io/punchcard-backend-go/internal/handler/http"
	normalizeService "github.com/punchcard-io/punchcard-backend-go/internal/service/normalize"
	reportService "github.com/punchcard-io/punchcard-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	normalizer := normalizeService.NewNormalizeService()
	reportSvc := reportService.NewReportService(
		normalizer,
		fixtures.DefaultTimeWindows(),
		fixtures.DefaultMealRules(),
	)

	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Upload.MaxBytes())

	router := appHTTP.NewRouter(cfg, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
