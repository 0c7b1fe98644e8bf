package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"hotel-dashboard/config"
	"hotel-dashboard/models"
)

// DashboardService answers dashboard queries over the current derived table.
// The table is swapped as a whole on reload and never modified in place.
type DashboardService struct {
	loader      DatasetLoader
	table       atomic.Pointer[Table]
	recentLimit int
	log         *logrus.Logger
}

// NewDashboardService takes an already derived table. loader is used by Reload
// and may be nil when reloading is not supported.
func NewDashboardService(table *Table, loader DatasetLoader, recentLimit int, log *logrus.Logger) (*DashboardService, error) {
	if table == nil || !table.Derived() {
		return nil, &DatasetError{Kind: ErrComputation, Op: "new dashboard service", Err: errors.New("table has no derived metrics")}
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentBookings
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &DashboardService{loader: loader, recentLimit: recentLimit, log: log}
	s.table.Store(table)
	return s, nil
}

// Table returns the current derived table.
func (s *DashboardService) Table() *Table {
	return s.table.Load()
}

func (s *DashboardService) RecentLimit() int {
	return s.recentLimit
}

func (s *DashboardService) View(f models.DashboardFilter) (*Table, error) {
	return Filter(s.Table(), f)
}

func (s *DashboardService) Summary(f models.DashboardFilter) (models.Summary, error) {
	view, err := s.View(f)
	if err != nil {
		return models.Summary{}, err
	}
	return Summarize(view)
}

func (s *DashboardService) Period(f models.DashboardFilter) (models.PeriodMetrics, error) {
	view, err := s.View(f)
	if err != nil {
		return models.PeriodMetrics{}, err
	}
	return PeriodSummary(view)
}

// RecentBookings uses the configured limit when n is 0.
func (s *DashboardService) RecentBookings(f models.DashboardFilter, n int) ([]models.RecentBooking, error) {
	view, err := s.View(f)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = s.recentLimit
	}
	return TopRecentBookings(view, n)
}

func (s *DashboardService) RoomTypes(f models.DashboardFilter) ([]models.RoomTypeCount, error) {
	view, err := s.View(f)
	if err != nil {
		return nil, err
	}
	dist, err := RoomTypeDistribution(view)
	if err != nil {
		return nil, err
	}
	return SortedRoomTypes(dist), nil
}

func (s *DashboardService) Revenue(f models.DashboardFilter) ([]models.RevenuePoint, error) {
	view, err := s.View(f)
	if err != nil {
		return nil, err
	}
	return RevenueSeries(view)
}

// FilterOptions are computed over the full table, not the filtered view.
func (s *DashboardService) FilterOptions() (models.FilterOptions, error) {
	return FilterOptionsOf(s.Table())
}

// Dashboard builds the full payload for one query from a single view.
func (s *DashboardService) Dashboard(f models.DashboardFilter, n int) (models.Dashboard, error) {
	view, err := s.View(f)
	if err != nil {
		return models.Dashboard{}, err
	}
	if n == 0 {
		n = s.recentLimit
	}

	summary, err := Summarize(view)
	if err != nil {
		return models.Dashboard{}, err
	}
	period, err := PeriodSummary(view)
	if err != nil {
		return models.Dashboard{}, err
	}
	recent, err := TopRecentBookings(view, n)
	if err != nil {
		return models.Dashboard{}, err
	}
	dist, err := RoomTypeDistribution(view)
	if err != nil {
		return models.Dashboard{}, err
	}
	revenue, err := RevenueSeries(view)
	if err != nil {
		return models.Dashboard{}, err
	}

	return models.Dashboard{
		Filter:               f,
		Summary:              summary,
		Period:               period,
		RecentBookings:       recent,
		RoomTypeDistribution: dist,
		RoomTypes:            SortedRoomTypes(dist),
		Revenue:              revenue,
	}, nil
}

// Reload loads and derives a new table and swaps it in. On failure the
// current table stays in place and the error is returned.
func (s *DashboardService) Reload(ctx context.Context) (*Table, error) {
	if s.loader == nil {
		return nil, errors.New("reload: no dataset loader configured")
	}
	start := time.Now()
	t, err := LoadDerived(ctx, s.loader)
	if err != nil {
		config.LogError(s.log, "services", "Reload", "dataset reload failed, keeping current table", nil, err)
		return nil, err
	}
	s.table.Store(t)
	s.log.WithFields(logrus.Fields{
		"rows":     t.Len(),
		"duration": time.Since(start).String(),
	}).Info("dataset reloaded")
	return t, nil
}
