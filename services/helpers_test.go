package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-dashboard/models"
)

func record(date string, year, month, totalRooms, occupied int, roomRevenue, totalRevenue float64) models.DailyRecord {
	return models.DailyRecord{
		Date:          date,
		Year:          year,
		Month:         month,
		TotalRooms:    totalRooms,
		OccupiedRooms: occupied,
		RoomRevenue:   roomRevenue,
		TotalRevenue:  totalRevenue,
		RoomType:      "Standart",
		CustomerName:  "Guest " + date,
	}
}

func rawTable(rows ...models.DailyRecord) *Table {
	return NewTable(StoredColumns(), rows)
}

func derivedTable(t *testing.T, rows ...models.DailyRecord) *Table {
	t.Helper()
	table, err := DeriveMetrics(rawTable(rows...))
	require.NoError(t, err)
	return table
}

// spanningTable covers 2022 to 2024 with several rows per year.
func spanningTable(t *testing.T) *Table {
	t.Helper()
	return derivedTable(t,
		record("2022-01-10", 2022, 1, 100, 40, 4000, 5000),
		record("2022-06-01", 2022, 6, 100, 60, 6600, 8000),
		record("2023-01-01", 2023, 1, 100, 50, 5000, 6000),
		record("2023-01-20", 2023, 1, 100, 70, 7700, 9000),
		record("2023-02-01", 2023, 2, 100, 80, 8800, 10000),
		record("2023-12-31", 2023, 12, 100, 90, 9900, 12000),
		record("2024-01-05", 2024, 1, 100, 30, 3000, 4000),
	)
}

func intPtr(v int) *int {
	return &v
}
