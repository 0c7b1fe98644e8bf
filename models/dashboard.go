package models

import "time"

// DashboardFilter carries the optional predicates of a dashboard query.
// StartDate and EndDate only apply when both are set.
type DashboardFilter struct {
	Year      *int       `json:"year,omitempty"`
	Month     *int       `json:"month,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Summary aggregates a filtered view for the dashboard cards.
type Summary struct {
	TotalRooms    int     `json:"totalRooms"`
	TotalRevenue  float64 `json:"totalRevenue"`
	MeanOccupancy float64 `json:"meanOccupancy"`
	MeanADR       float64 `json:"meanAdr"`
	MeanGOP       float64 `json:"meanGop"`
	MeanGOPPAR    float64 `json:"meanGoppar"`
	Days          int     `json:"days"`
}

// PeriodMetrics are period-level figures: occupancy and ADR come from
// period totals instead of per-day means.
type PeriodMetrics struct {
	TotalRooms   int     `json:"totalRooms"`
	TotalRevenue float64 `json:"totalRevenue"`
	Occupancy    float64 `json:"occupancy"`
	ADR          float64 `json:"adr"`
	MeanGOP      float64 `json:"meanGop"`
	MeanGOPPAR   float64 `json:"meanGoppar"`
	Days         int     `json:"days"`
}

type RecentBooking struct {
	CustomerName    string    `json:"customerName"`
	Date            time.Time `json:"date"`
	RoomType        string    `json:"roomType"`
	TotalDailyValue float64   `json:"totalDailyValue"`
}

type RoomTypeCount struct {
	RoomType string `json:"roomType"`
	Count    int    `json:"count"`
}

type RevenuePoint struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"totalRevenue"`
}

// FilterOptions are the distinct values offered by the year and month pickers.
type FilterOptions struct {
	Years  []int `json:"years"`
	Months []int `json:"months"`
}

// Dashboard is the full payload of one dashboard query.
type Dashboard struct {
	Filter               DashboardFilter `json:"filter"`
	Summary              Summary         `json:"summary"`
	Period               PeriodMetrics   `json:"period"`
	RecentBookings       []RecentBooking `json:"recentBookings"`
	RoomTypeDistribution map[string]int  `json:"roomTypeDistribution"`
	RoomTypes            []RoomTypeCount `json:"roomTypes"`
	Revenue              []RevenuePoint  `json:"revenue"`
}
