package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/config"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
	"github.com/trendybazarr/trendybazarr-backend/internal/scheduler"
	"github.com/trendybazarr/trendybazarr-backend/internal/storefront"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console",
		EnableColor: true,
	})

	logger.Info("Starting TRENDYBAZARR Storefront", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Storefront.Port,
		"data_api":    cfg.Storefront.DataAPIBaseURL,
	})

	client := storefront.NewClient(cfg.Storefront.DataAPIBaseURL, cfg.Storefront.DataAPIToken)
	snapshot := storefront.NewSnapshot(client)

	// First load. The storefront still starts when the data API is down
	// and serves 502 until the scheduler brings the snapshot up.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := snapshot.Refresh(ctx); err != nil {
		logger.Warn("Initial catalog load failed, serving unavailable until refresh", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancel()

	catalogScheduler := scheduler.NewCatalogScheduler(snapshot, cfg.Storefront.RefreshSchedule)
	if err := catalogScheduler.Start(); err != nil {
		logger.Fatal("Failed to start catalog scheduler", err)
	}
	defer catalogScheduler.Stop()

	gin.SetMode(cfg.Server.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.LoggingMiddleware())

	storefront.NewHandler(snapshot).Routes(engine)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Storefront.Port)
		logger.Info("Storefront started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start storefront", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down storefront gracefully...")
	logger.Info("Storefront stopped successfully")
}
