package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

// DashboardQuery are the filter parameters shared by every dashboard route.
// Dates use DD/MM/YYYY; the range applies only when both are given.
type DashboardQuery struct {
	Year      *int   `form:"year" binding:"omitempty,min=1"`
	Month     *int   `form:"month" binding:"omitempty,min=1,max=12"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type RecentBookingsQuery struct {
	DashboardQuery
	N int `form:"n" binding:"omitempty,min=1,max=100"`
}

// Filter converts the query into an engine filter.
func (q DashboardQuery) Filter() (models.DashboardFilter, error) {
	f := models.DashboardFilter{Year: q.Year, Month: q.Month}
	if s := strings.TrimSpace(q.StartDate); s != "" {
		d, err := services.ParseDisplayDate(s)
		if err != nil {
			return f, fmt.Errorf("start_date: %w", err)
		}
		f.StartDate = &d
	}
	if s := strings.TrimSpace(q.EndDate); s != "" {
		d, err := services.ParseDisplayDate(s)
		if err != nil {
			return f, fmt.Errorf("end_date: %w", err)
		}
		f.EndDate = &d
	}
	return f, nil
}

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

func bindFilter(c *gin.Context, q *DashboardQuery) (models.DashboardFilter, bool) {
	if err := c.ShouldBindQuery(q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", err.Error())
		return models.DashboardFilter{}, false
	}
	f, err := q.Filter()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error())
		return models.DashboardFilter{}, false
	}
	return f, true
}

func respondEngineError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrFileNotFound):
		utils.JSONError(c, http.StatusInternalServerError, "error.datasetNotFound", err.Error())
	case errors.Is(err, services.ErrParse):
		utils.JSONError(c, http.StatusInternalServerError, "error.datasetParse", err.Error())
	case errors.Is(err, services.ErrComputation):
		utils.JSONError(c, http.StatusInternalServerError, "error.computation", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
	}
}

// GetDashboard (GET /api/dashboard)
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	var q RecentBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", err.Error())
		return
	}
	f, err := q.Filter()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error())
		return
	}

	dashboard, err := ctrl.DashboardSvc.Dashboard(f, q.N)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dashboard)
}

// GetSummary (GET /api/dashboard/summary)
func (ctrl *DashboardController) GetSummary(c *gin.Context) {
	var q DashboardQuery
	f, ok := bindFilter(c, &q)
	if !ok {
		return
	}
	summary, err := ctrl.DashboardSvc.Summary(f)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// GetPeriod (GET /api/dashboard/period)
func (ctrl *DashboardController) GetPeriod(c *gin.Context) {
	var q DashboardQuery
	f, ok := bindFilter(c, &q)
	if !ok {
		return
	}
	period, err := ctrl.DashboardSvc.Period(f)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, period)
}

// GetRecentBookings (GET /api/dashboard/recent-bookings?n=5)
func (ctrl *DashboardController) GetRecentBookings(c *gin.Context) {
	var q RecentBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuery", err.Error())
		return
	}
	f, err := q.Filter()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error())
		return
	}
	bookings, err := ctrl.DashboardSvc.RecentBookings(f, q.N)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetRoomTypes (GET /api/dashboard/room-types)
func (ctrl *DashboardController) GetRoomTypes(c *gin.Context) {
	var q DashboardQuery
	f, ok := bindFilter(c, &q)
	if !ok {
		return
	}
	counts, err := ctrl.DashboardSvc.RoomTypes(f)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, counts)
}

// GetRevenue (GET /api/dashboard/revenue)
func (ctrl *DashboardController) GetRevenue(c *gin.Context) {
	var q DashboardQuery
	f, ok := bindFilter(c, &q)
	if !ok {
		return
	}
	points, err := ctrl.DashboardSvc.Revenue(f)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, points)
}

// GetFilterOptions (GET /api/dashboard/filters)
func (ctrl *DashboardController) GetFilterOptions(c *gin.Context) {
	opts, err := ctrl.DashboardSvc.FilterOptions()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, opts)
}

// ExportWorkbook (GET /api/dashboard/export)
func (ctrl *DashboardController) ExportWorkbook(c *gin.Context) {
	var q DashboardQuery
	f, ok := bindFilter(c, &q)
	if !ok {
		return
	}
	view, err := ctrl.DashboardSvc.View(f)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteWorkbook(view, &buf); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="hotel_dashboard.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
