package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
)

type reloadRecorder struct {
	errs []error
}

func (r *reloadRecorder) ObserveReload(err error) {
	r.errs = append(r.errs, err)
}

func datasetRouter(ctrl *DatasetController) *gin.Engine {
	r := gin.New()
	r.GET("/api/dataset/columns", ctrl.GetColumns)
	r.POST("/api/dataset/reload", ctrl.Reload)
	return r
}

func TestGetColumns(t *testing.T) {
	ctrl := NewDatasetController(newTestService(t, nil), nil)

	w, env := serve(t, datasetRouter(ctrl), http.MethodGet, "/api/dataset/columns")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Columns []string `json:"columns"`
		Rows    int      `json:"rows"`
	}](t, env.Data)
	assert.Equal(t, 4, body.Rows)
	assert.Equal(t, append(services.StoredColumns(), models.KPIColumns...), body.Columns)
}

func TestReload(t *testing.T) {
	next := services.NewTable(services.StoredColumns(), []models.DailyRecord{
		day("2024-05-01", 2024, 5, "Suite", 90, 9000, 10000),
	})
	obs := &reloadRecorder{}
	svc := newTestService(t, tableLoader{table: next})
	ctrl := NewDatasetController(svc, obs)

	w, env := serve(t, datasetRouter(ctrl), http.MethodPost, "/api/dataset/reload")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct {
		Rows int `json:"rows"`
	}](t, env.Data).Rows)
	assert.Equal(t, 1, svc.Table().Len())
	assert.Equal(t, []error{nil}, obs.errs)
}

func TestReload_FailureKeepsServing(t *testing.T) {
	loadErr := &services.DatasetError{Kind: services.ErrFileNotFound, Op: "load", Path: "gone.csv", Err: errors.New("no such file")}
	obs := &reloadRecorder{}
	svc := newTestService(t, tableLoader{err: loadErr})
	ctrl := NewDatasetController(svc, obs)

	w, env := serve(t, datasetRouter(ctrl), http.MethodPost, "/api/dataset/reload")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error.datasetNotFound", env.Error.Code)
	assert.Equal(t, 4, svc.Table().Len())
	require.Len(t, obs.errs, 1)
	assert.ErrorIs(t, obs.errs[0], services.ErrFileNotFound)
}
