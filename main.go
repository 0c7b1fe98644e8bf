package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"hotel-dashboard/config"
	"hotel-dashboard/controllers"
	"hotel-dashboard/middleware"
	"hotel-dashboard/routes"
	"hotel-dashboard/services"
)

func main() {
	// Load .env (optional)
	if err := config.LoadDotEnv(); err != nil {
		logrus.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration: %v", err)
	}
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	csvLoader := services.NewCSVLoader(cfg.DataFile, cfg.Delimiter())

	var loader services.DatasetLoader = csvLoader
	if cfg.DatasetSource == config.SourceMySQL {
		db, err := config.ConnectDatabase(cfg, log)
		if err != nil {
			log.Fatalf("database connect failed: %v", err)
		}
		store := services.NewRecordStore(db)
		seeded, err := store.SeedIfEmpty(ctx, csvLoader)
		if err != nil {
			log.Fatalf("seeding daily records from %s failed: %v", cfg.DataFile, err)
		}
		if seeded > 0 {
			log.WithField("rows", seeded).Info("daily records seeded")
		}
		loader = store
	}

	// No data, no dashboard: a failed initial load stops the process.
	table, err := services.LoadDerived(ctx, loader)
	if err != nil {
		log.Fatalf("loading dataset failed: %v", err)
	}
	log.WithFields(logrus.Fields{
		"source": cfg.DatasetSource,
		"rows":   table.Len(),
	}).Info("dataset loaded and metrics derived")

	dashboardService, err := services.NewDashboardService(table, loader, cfg.RecentBookingsLimit, log)
	if err != nil {
		log.Fatalf("dashboard service: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg, func() float64 {
		return float64(dashboardService.Table().Len())
	})

	router := routes.SetupRouter(routes.RouterDeps{
		Dashboard:    controllers.NewDashboardController(dashboardService),
		Dataset:      controllers.NewDatasetController(dashboardService, metrics),
		Metrics:      metrics,
		Gatherer:     reg,
		Log:          log,
		CORSOrigins:  cfg.CORSOrigins,
		AdminKeyHash: cfg.AdminKeyHash,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn("shutdown signal received, shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server stopped gracefully")
}
