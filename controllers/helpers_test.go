package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type tableLoader struct {
	table *services.Table
	err   error
}

func (l tableLoader) Load(context.Context) (*services.Table, error) {
	return l.table, l.err
}

func day(date string, year, month int, roomType string, occupied int, roomRevenue, totalRevenue float64) models.DailyRecord {
	return models.DailyRecord{
		CustomerName:    "Guest " + date,
		Date:            date,
		RoomType:        roomType,
		TotalDailyValue: totalRevenue / 10,
		TotalRooms:      100,
		OccupiedRooms:   occupied,
		RoomRevenue:     roomRevenue,
		TotalRevenue:    totalRevenue,
		Year:            year,
		Month:           month,
	}
}

func sampleRaw() *services.Table {
	return services.NewTable(services.StoredColumns(), []models.DailyRecord{
		day("2022-12-30", 2022, 12, "Suite", 80, 16000, 20000),
		day("2023-01-01", 2023, 1, "Duplo", 50, 5000, 6000),
		day("2023-01-10", 2023, 1, "Suite", 60, 7100, 9000),
		day("2023-02-01", 2023, 2, "Standart", 40, 3200, 4000),
	})
}

func newTestService(t *testing.T, loader services.DatasetLoader) *services.DashboardService {
	t.Helper()
	table, err := services.DeriveMetrics(sampleRaw())
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc, err := services.NewDashboardService(table, loader, 2, log)
	require.NoError(t, err)
	return svc
}

func serve(t *testing.T, r *gin.Engine, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
