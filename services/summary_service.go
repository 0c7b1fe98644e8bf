package services

import (
	"errors"
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"hotel-dashboard/models"
)

// DefaultRecentBookings is the number of bookings shown in the recent list.
const DefaultRecentBookings = 5

func sumMoney(rows []models.DailyRecord, value func(models.DailyRecord) float64) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(decimal.NewFromFloat(value(r)))
	}
	return total
}

func mean(rows []models.DailyRecord, value func(models.DailyRecord) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	var total float64
	for _, r := range rows {
		total += value(r)
	}
	return total / float64(len(rows))
}

// Summarize aggregates a derived view. An empty view yields zeros.
func Summarize(view *Table) (models.Summary, error) {
	const op = "summarize"
	if !view.derived {
		return models.Summary{}, &DatasetError{Kind: ErrComputation, Op: op, Err: errors.New("metrics not derived")}
	}
	if err := view.require(op, models.ColTotalRooms, models.ColTotalRevenue); err != nil {
		return models.Summary{}, err
	}

	rows := view.rows
	s := models.Summary{
		TotalRevenue:  sumMoney(rows, func(r models.DailyRecord) float64 { return r.TotalRevenue }).InexactFloat64(),
		MeanOccupancy: mean(rows, func(r models.DailyRecord) float64 { return r.Occupancy }),
		MeanADR:       mean(rows, func(r models.DailyRecord) float64 { return r.ADR }),
		MeanGOP:       mean(rows, func(r models.DailyRecord) float64 { return r.GOP }),
		MeanGOPPAR:    mean(rows, func(r models.DailyRecord) float64 { return r.GOPPAR }),
		Days:          len(rows),
	}
	if len(rows) > 0 {
		s.TotalRooms = rows[0].TotalRooms
	}
	return s, nil
}

// PeriodSummary computes occupancy and ADR from period totals:
// occupied room-nights over available room-nights, and room revenue over
// occupied room-nights.
func PeriodSummary(view *Table) (models.PeriodMetrics, error) {
	const op = "period summary"
	if err := view.require(op,
		models.ColTotalRooms,
		models.ColOccupiedRooms,
		models.ColRoomRevenue,
		models.ColTotalRevenue,
		models.ColGrossOperatingProfit,
		models.ColGOPPerAvailableRoom,
	); err != nil {
		return models.PeriodMetrics{}, err
	}

	rows := view.rows
	p := models.PeriodMetrics{Days: len(rows)}
	if len(rows) == 0 {
		return p, nil
	}

	p.TotalRooms = rows[0].TotalRooms
	p.TotalRevenue = sumMoney(rows, func(r models.DailyRecord) float64 { return r.TotalRevenue }).InexactFloat64()
	p.MeanGOP = mean(rows, func(r models.DailyRecord) float64 { return r.GrossOperatingProfit })
	p.MeanGOPPAR = mean(rows, func(r models.DailyRecord) float64 { return r.GOPPerAvailableRoom })

	occupied := 0
	for _, r := range rows {
		occupied += r.OccupiedRooms
	}
	p.Occupancy = OccupancyRate(occupied, p.TotalRooms*len(rows))

	roomRevenue := sumMoney(rows, func(r models.DailyRecord) float64 { return r.RoomRevenue })
	p.ADR = AverageDailyRate(roomRevenue.InexactFloat64(), occupied)
	return p, nil
}

// TopRecentBookings returns the n most recent rows, newest first.
// Rows sharing a date keep their table order.
func TopRecentBookings(view *Table, n int) ([]models.RecentBooking, error) {
	const op = "recent bookings"
	if err := view.require(op,
		models.ColCustomerName,
		models.ColDate,
		models.ColRoomType,
		models.ColTotalDailyValue,
	); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []models.RecentBooking{}, nil
	}

	bookings := make([]models.RecentBooking, len(view.rows))
	for i, r := range view.rows {
		d, err := ParseRecordDate(r.Date)
		if err != nil {
			return nil, &DatasetError{Kind: ErrParse, Op: op, Column: models.ColDate, Row: i + 1, Err: err}
		}
		bookings[i] = models.RecentBooking{
			CustomerName:    r.CustomerName,
			Date:            d,
			RoomType:        r.RoomType,
			TotalDailyValue: r.TotalDailyValue,
		}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date)
	})

	if len(bookings) > n {
		bookings = bookings[:n]
	}
	return bookings, nil
}

// RoomTypeDistribution counts rows per room type.
func RoomTypeDistribution(view *Table) (map[string]int, error) {
	if err := view.require("room type distribution", models.ColRoomType); err != nil {
		return nil, err
	}
	dist := make(map[string]int)
	for _, r := range view.rows {
		dist[r.RoomType]++
	}
	return dist, nil
}

// SortedRoomTypes orders a distribution by count, most frequent first,
// then by room type name.
func SortedRoomTypes(dist map[string]int) []models.RoomTypeCount {
	out := make([]models.RoomTypeCount, 0, len(dist))
	for roomType, count := range dist {
		out = append(out, models.RoomTypeCount{RoomType: roomType, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RoomType < out[j].RoomType
	})
	return out
}

// RevenueSeries returns total revenue per day in table order.
func RevenueSeries(view *Table) ([]models.RevenuePoint, error) {
	const op = "revenue series"
	if err := view.require(op, models.ColDate, models.ColTotalRevenue); err != nil {
		return nil, err
	}
	points := make([]models.RevenuePoint, len(view.rows))
	for i, r := range view.rows {
		d, err := ParseRecordDate(r.Date)
		if err != nil {
			return nil, &DatasetError{Kind: ErrParse, Op: op, Column: models.ColDate, Row: i + 1, Err: err}
		}
		points[i] = models.RevenuePoint{Date: d, TotalRevenue: r.TotalRevenue}
	}
	return points, nil
}

// FilterOptionsOf lists the distinct years and months of t in ascending order.
func FilterOptionsOf(t *Table) (models.FilterOptions, error) {
	if err := t.require("filter options", models.ColYear, models.ColMonth); err != nil {
		return models.FilterOptions{}, err
	}
	years := make([]int, 0)
	months := make([]int, 0)
	for _, r := range t.rows {
		years = append(years, r.Year)
		months = append(months, r.Month)
	}
	slices.Sort(years)
	slices.Sort(months)
	return models.FilterOptions{
		Years:  slices.Compact(years),
		Months: slices.Compact(months),
	}, nil
}
