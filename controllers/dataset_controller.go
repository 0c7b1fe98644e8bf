package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

// ReloadObserver is notified of every reload attempt.
type ReloadObserver interface {
	ObserveReload(err error)
}

type DatasetController struct {
	DashboardSvc *services.DashboardService
	Observer     ReloadObserver
}

func NewDatasetController(svc *services.DashboardService, observer ReloadObserver) *DatasetController {
	return &DatasetController{DashboardSvc: svc, Observer: observer}
}

// GetColumns (GET /api/dataset/columns)
func (ctrl *DatasetController) GetColumns(c *gin.Context) {
	t := ctrl.DashboardSvc.Table()
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"columns": t.Columns(),
		"rows":    t.Len(),
	})
}

// Reload (POST /api/dataset/reload)
func (ctrl *DatasetController) Reload(c *gin.Context) {
	t, err := ctrl.DashboardSvc.Reload(c.Request.Context())
	if ctrl.Observer != nil {
		ctrl.Observer.ObserveReload(err)
	}
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rows": t.Len()})
}
