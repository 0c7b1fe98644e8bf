package controllers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hotel-dashboard/models"
)

func dashboardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctrl := NewDashboardController(newTestService(t, nil))
	r := gin.New()
	g := r.Group("/api/dashboard")
	g.GET("", ctrl.GetDashboard)
	g.GET("/summary", ctrl.GetSummary)
	g.GET("/period", ctrl.GetPeriod)
	g.GET("/recent-bookings", ctrl.GetRecentBookings)
	g.GET("/room-types", ctrl.GetRoomTypes)
	g.GET("/revenue", ctrl.GetRevenue)
	g.GET("/filters", ctrl.GetFilterOptions)
	g.GET("/export", ctrl.ExportWorkbook)
	return r
}

func TestDashboardQuery_Filter(t *testing.T) {
	year := 2023
	q := DashboardQuery{Year: &year, StartDate: "01/01/2023", EndDate: "2023-01-31"}

	f, err := q.Filter()

	require.NoError(t, err)
	assert.Equal(t, &year, f.Year)
	assert.Nil(t, f.Month)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), *f.EndDate)

	_, err = DashboardQuery{EndDate: "31-01-2023"}.Filter()
	assert.ErrorContains(t, err, "end_date")
}

func TestGetSummary(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/summary?year=2023")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	s := decode[models.Summary](t, env.Data)
	assert.Equal(t, 3, s.Days)
	assert.Equal(t, 19000.0, s.TotalRevenue)
	assert.InDelta(t, 50.0, s.MeanOccupancy, 1e-9)
}

func TestGetSummary_DateRange(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/summary?start_date=01/01/2023&end_date=10/01/2023")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[models.Summary](t, env.Data).Days)
}

func TestGetSummary_EmptyView(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/summary?year=1999")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Summary{}, decode[models.Summary](t, env.Data))
}

func TestDashboardRoutes_BadQuery(t *testing.T) {
	r := dashboardRouter(t)

	tests := []struct {
		target string
		code   string
	}{
		{"/api/dashboard/summary?month=13", "error.invalidQuery"},
		{"/api/dashboard/summary?year=abc", "error.invalidQuery"},
		{"/api/dashboard/period?start_date=2023/01/01&end_date=01/02/2023", "error.invalidDate"},
		{"/api/dashboard/recent-bookings?n=-1", "error.invalidQuery"},
		{"/api/dashboard?n=500", "error.invalidQuery"},
		{"/api/dashboard/export?end_date=tomorrow", "error.invalidDate"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w, env := serve(t, r, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestGetPeriod(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/period?year=2023&month=1")

	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.PeriodMetrics](t, env.Data)
	assert.Equal(t, 2, p.Days)
	assert.InDelta(t, 55.0, p.Occupancy, 1e-9)
	assert.InDelta(t, 110.0, p.ADR, 1e-9)
}

func TestGetRecentBookings(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/recent-bookings")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]models.RecentBooking](t, env.Data)
	require.Len(t, got, 2, "configured limit applies without n")
	assert.Equal(t, "Guest 2023-02-01", got[0].CustomerName)
	assert.Equal(t, "Guest 2023-01-10", got[1].CustomerName)

	w, env = serve(t, r, http.MethodGet, "/api/dashboard/recent-bookings?n=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.RecentBooking](t, env.Data), 3)
}

func TestGetRoomTypes(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/room-types")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.RoomTypeCount{
		{RoomType: "Suite", Count: 2},
		{RoomType: "Duplo", Count: 1},
		{RoomType: "Standart", Count: 1},
	}, decode[[]models.RoomTypeCount](t, env.Data))
}

func TestGetRevenue(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/revenue?month=1")

	require.Equal(t, http.StatusOK, w.Code)
	points := decode[[]models.RevenuePoint](t, env.Data)
	require.Len(t, points, 2)
	assert.Equal(t, 6000.0, points[0].TotalRevenue)
}

func TestGetFilterOptions(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard/filters?year=2023")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.FilterOptions{Years: []int{2022, 2023}, Months: []int{1, 2, 12}},
		decode[models.FilterOptions](t, env.Data))
}

func TestGetDashboard(t *testing.T) {
	r := dashboardRouter(t)

	w, env := serve(t, r, http.MethodGet, "/api/dashboard?year=2023&n=1")

	require.Equal(t, http.StatusOK, w.Code)
	d := decode[models.Dashboard](t, env.Data)
	require.NotNil(t, d.Filter.Year)
	assert.Equal(t, 2023, *d.Filter.Year)
	assert.Equal(t, 3, d.Summary.Days)
	assert.Len(t, d.RecentBookings, 1)
	assert.Equal(t, map[string]int{"Duplo": 1, "Suite": 1, "Standart": 1}, d.RoomTypeDistribution)
	assert.Len(t, d.Revenue, 3)
}

func TestExportWorkbook(t *testing.T) {
	r := dashboardRouter(t)

	w, _ := serve(t, r, http.MethodGet, "/api/dashboard/export?year=2023")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hotel_dashboard.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Records")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
