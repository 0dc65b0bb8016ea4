package reports

import (
	"math/rand"
	"time"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/pkg/logger"
)

// Service produces mock sales data standing in for a reporting backend. The
// random source is injectable so report contents are reproducible in tests.
type Service struct {
	rnd *rand.Rand
	log logger.Logger
}

func NewService(seed int64, log logger.Logger) *Service {
	return &Service{rnd: rand.New(rand.NewSource(seed)), log: log}
}

// DefaultFilter covers the last 14 days, all locations and categories.
func DefaultFilter(now time.Time) models.SalesReportFilter {
	return models.SalesReportFilter{
		StartDate: now.Add(-13 * 24 * time.Hour),
		EndDate:   now,
	}
}

// Generate produces one row per day across the filter's date range.
func (s *Service) Generate(filter models.SalesReportFilter) []models.SalesReportRow {
	start := filter.StartDate.Truncate(24 * time.Hour)
	end := filter.EndDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return []models.SalesReportRow{}
	}

	var rows []models.SalesReportRow
	for day := start; !day.After(end); day = day.Add(24 * time.Hour) {
		rows = append(rows, models.SalesReportRow{
			Date:       day,
			TotalSales: float64(s.rnd.Intn(5000) + 1000),
			TotalItems: s.rnd.Intn(100) + 10,
		})
	}

	if s.log != nil {
		s.log.Log("generated %d report rows (%s - %s)", len(rows),
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return rows
}

type Summary struct {
	TotalSales    float64 `json:"totalSales"`
	TotalItems    int     `json:"totalItems"`
	AveragePerDay float64 `json:"averagePerDay"`
}

// Summarize folds the rows into the headline numbers shown above the chart.
func Summarize(rows []models.SalesReportRow) Summary {
	summary := Summary{}
	for _, row := range rows {
		summary.TotalSales += row.TotalSales
		summary.TotalItems += row.TotalItems
	}
	if len(rows) > 0 {
		summary.AveragePerDay = summary.TotalSales / float64(len(rows))
	}
	return summary
}
