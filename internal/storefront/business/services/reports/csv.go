package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gostorefront_api/internal/storefront/business/models"
)

// WriteCSV renders rows in the export format the admin UI downloads.
func WriteCSV(w io.Writer, rows []models.SalesReportRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Total Sales (kr)", "Total Items"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			strconv.FormatFloat(row.TotalSales, 'f', -1, 64),
			strconv.Itoa(row.TotalItems),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
