package handlers

import (
	"net/http"
	"time"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/business/services/reports"
)

type ReportHandler struct {
	reports *reports.Service
}

func NewReportHandler(service *reports.Service) *ReportHandler {
	return &ReportHandler{reports: service}
}

func (h *ReportHandler) filterFromRequest(r *http.Request) models.SalesReportFilter {
	filter := reports.DefaultFilter(time.Now())
	query := r.URL.Query()

	if start, err := time.Parse("2006-01-02", query.Get("startDate")); err == nil {
		filter.StartDate = start
	}
	if end, err := time.Parse("2006-01-02", query.Get("endDate")); err == nil {
		filter.EndDate = end
	}
	filter.LocationID = query.Get("locationId")
	filter.CategoryID = query.Get("categoryId")
	return filter
}

func (h *ReportHandler) GetReportHandler(w http.ResponseWriter, r *http.Request) {
	rows := h.reports.Generate(h.filterFromRequest(r))
	respondJSON(w, map[string]interface{}{
		"rows":    rows,
		"summary": reports.Summarize(rows),
	})
}

// ExportReportHandler streams the CSV download the admin UI offers.
func (h *ReportHandler) ExportReportHandler(w http.ResponseWriter, r *http.Request) {
	rows := h.reports.Generate(h.filterFromRequest(r))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_report.csv"`)
	if err := reports.WriteCSV(w, rows); err != nil {
		http.Error(w, "Failed to write report", http.StatusInternalServerError)
	}
}
