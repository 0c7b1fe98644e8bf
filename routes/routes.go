package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"hotel-dashboard/controllers"
	"hotel-dashboard/middleware"
)

func parseCorsOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// RouterDeps are the collaborators SetupRouter wires into routes.
type RouterDeps struct {
	Dashboard    *controllers.DashboardController
	Dataset      *controllers.DatasetController
	Metrics      *middleware.Metrics
	Gatherer     prometheus.Gatherer
	Log          *logrus.Logger
	CORSOrigins  []string
	AdminKeyHash string
}

func SetupRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if d.Log != nil {
		r.Use(middleware.Logger(d.Log))
	}
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler())
	}

	origins := parseCorsOrigins(d.CORSOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.AdminKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", d.Dashboard.GetDashboard)
			dashboard.GET("/summary", d.Dashboard.GetSummary)
			dashboard.GET("/period", d.Dashboard.GetPeriod)
			dashboard.GET("/recent-bookings", d.Dashboard.GetRecentBookings)
			dashboard.GET("/room-types", d.Dashboard.GetRoomTypes)
			dashboard.GET("/revenue", d.Dashboard.GetRevenue)
			dashboard.GET("/filters", d.Dashboard.GetFilterOptions)
			dashboard.GET("/export", d.Dashboard.ExportWorkbook)
		}

		dataset := api.Group("/dataset")
		{
			dataset.GET("/columns", d.Dataset.GetColumns)
			dataset.POST("/reload", middleware.RequireAdminKey(d.AdminKeyHash), d.Dataset.Reload)
		}
	}

	return r
}
