package models

import "time"

type SalesReportRow struct {
	Date       time.Time `json:"date"`
	TotalSales float64   `json:"totalSales"`
	TotalItems int       `json:"totalItems"`
}

type SalesReportFilter struct {
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	LocationID string    `json:"locationId,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
}
