package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront_api/internal/storefront/business/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateOneRowPerDay(t *testing.T) {
	service := NewService(1, nil)

	rows := service.Generate(models.SalesReportFilter{
		StartDate: day(2026, time.August, 1),
		EndDate:   day(2026, time.August, 7),
	})

	require.Len(t, rows, 7)
	assert.Equal(t, day(2026, time.August, 1), rows[0].Date)
	assert.Equal(t, day(2026, time.August, 7), rows[6].Date)
}

func TestGenerateValuesStayInRange(t *testing.T) {
	service := NewService(42, nil)

	rows := service.Generate(models.SalesReportFilter{
		StartDate: day(2026, time.August, 1),
		EndDate:   day(2026, time.August, 31),
	})

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.TotalSales, 1000.0)
		assert.Less(t, row.TotalSales, 6000.0)
		assert.GreaterOrEqual(t, row.TotalItems, 10)
		assert.Less(t, row.TotalItems, 110)
	}
}

func TestGenerateIsReproducibleForASeed(t *testing.T) {
	filter := models.SalesReportFilter{
		StartDate: day(2026, time.August, 1),
		EndDate:   day(2026, time.August, 5),
	}

	first := NewService(7, nil).Generate(filter)
	second := NewService(7, nil).Generate(filter)
	assert.Equal(t, first, second)
}

func TestGenerateInvertedRangeIsEmpty(t *testing.T) {
	service := NewService(1, nil)

	rows := service.Generate(models.SalesReportFilter{
		StartDate: day(2026, time.August, 7),
		EndDate:   day(2026, time.August, 1),
	})
	assert.Empty(t, rows)
}

func TestDefaultFilterCoversFourteenDays(t *testing.T) {
	now := day(2026, time.September, 1)
	rows := NewService(1, nil).Generate(DefaultFilter(now))
	assert.Len(t, rows, 14)
}

func TestSummarize(t *testing.T) {
	rows := []models.SalesReportRow{
		{Date: day(2026, time.August, 1), TotalSales: 1200, TotalItems: 30},
		{Date: day(2026, time.August, 2), TotalSales: 1800, TotalItems: 50},
	}

	summary := Summarize(rows)
	assert.Equal(t, 3000.0, summary.TotalSales)
	assert.Equal(t, 80, summary.TotalItems)
	assert.Equal(t, 1500.0, summary.AveragePerDay)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.AveragePerDay)
}

func TestWriteCSV(t *testing.T) {
	rows := []models.SalesReportRow{
		{Date: day(2026, time.August, 1), TotalSales: 1200, TotalItems: 30},
		{Date: day(2026, time.August, 2), TotalSales: 1850, TotalItems: 47},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "Date,Total Sales (kr),Total Items\n" +
		"2026-08-01,1200,30\n" +
		"2026-08-02,1850,47\n"
	assert.Equal(t, want, buf.String())
}
