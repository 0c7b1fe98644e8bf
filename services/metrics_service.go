package services

import (
	"context"
	"errors"
	"slices"

	"hotel-dashboard/models"
)

// OccupancyRate is the share of rooms sold, in percent. 0 when the hotel has no rooms.
func OccupancyRate(occupiedRooms, totalRooms int) float64 {
	if totalRooms == 0 {
		return 0
	}
	return float64(occupiedRooms) / float64(totalRooms) * 100
}

// AverageDailyRate is room revenue per occupied room. 0 when nothing was sold.
func AverageDailyRate(roomRevenue float64, occupiedRooms int) float64 {
	if occupiedRooms == 0 {
		return 0
	}
	return roomRevenue / float64(occupiedRooms)
}

// RevPAR has no guard of its own: zero ADR or occupancy already give zero.
func RevPAR(adr, occupancy float64) float64 {
	return adr * (occupancy / 100)
}

// TRevPAR is total revenue per available room. 0 when the hotel has no rooms.
func TRevPAR(totalRevenue float64, totalRooms int) float64 {
	if totalRooms == 0 {
		return 0
	}
	return totalRevenue / float64(totalRooms)
}

// ComputeKPI derives the metrics of a single row.
func ComputeKPI(r models.DailyRecord) models.KPI {
	occupancy := OccupancyRate(r.OccupiedRooms, r.TotalRooms)
	adr := AverageDailyRate(r.RoomRevenue, r.OccupiedRooms)
	return models.KPI{
		Occupancy: occupancy,
		ADR:       adr,
		RevPAR:    RevPAR(adr, occupancy),
		TRevPAR:   TRevPAR(r.TotalRevenue, r.TotalRooms),
		GOP:       r.GrossOperatingProfit,
		GOPPAR:    r.GOPPerAvailableRoom,
	}
}

var metricInputColumns = []string{
	models.ColOccupiedRooms,
	models.ColTotalRooms,
	models.ColRoomRevenue,
	models.ColTotalRevenue,
	models.ColGrossOperatingProfit,
	models.ColGOPPerAvailableRoom,
}

// DeriveMetrics returns a copy of raw with the KPI columns appended to every
// row. It must run once, on a raw table.
func DeriveMetrics(raw *Table) (*Table, error) {
	const op = "derive metrics"
	if raw.derived {
		return nil, &DatasetError{Kind: ErrComputation, Op: op, Err: errors.New("metrics already derived")}
	}
	if err := raw.require(op, metricInputColumns...); err != nil {
		return nil, err
	}

	rows := raw.Records()
	for i := range rows {
		rows[i].KPI = ComputeKPI(rows[i])
	}

	columns := slices.Clone(raw.columns)
	present := make(map[string]bool, len(raw.present)+len(models.KPIColumns))
	for c := range raw.present {
		present[c] = true
	}
	for _, c := range models.KPIColumns {
		if !present[c] {
			columns = append(columns, c)
			present[c] = true
		}
	}

	return &Table{columns: columns, present: present, rows: rows, derived: true}, nil
}

// LoadDerived loads a raw table and derives its metrics.
func LoadDerived(ctx context.Context, loader DatasetLoader) (*Table, error) {
	raw, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveMetrics(raw)
}
