package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trendybazarr/trendybazarr-backend/config"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/controller"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	"github.com/trendybazarr/trendybazarr-backend/internal/db"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
	"github.com/trendybazarr/trendybazarr-backend/internal/router"
	"github.com/trendybazarr/trendybazarr-backend/internal/storage"
	"github.com/trendybazarr/trendybazarr-backend/pkg/imagehost/cloudinary"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
	"github.com/trendybazarr/trendybazarr-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting TRENDYBAZARR Data API", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs the logout token blacklist. The server still runs
	// without it; logout then only discards the token client side.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Image hosting. Without Cloudinary credentials the direct upload
	// endpoint answers 503; presigned S3 uploads still work.
	var cloudinaryClient *cloudinary.Client
	cloudinaryClient, err = cloudinary.NewClient(cloudinary.Config{
		CloudName:    cfg.Cloudinary.CloudName,
		UploadPreset: cfg.Cloudinary.UploadPreset,
		BaseURL:      cfg.Cloudinary.BaseURL,
	})
	if err != nil {
		logger.Warn("Image hosting not configured, direct uploads disabled", map[string]interface{}{
			"error": err.Error(),
		})
		cloudinaryClient = nil
	}
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	wishlistRepo := repository.NewWishlistRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	checkoutService := service.NewCheckoutService(cartService)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	wishlistController := controller.NewWishlistController(wishlistService)
	checkoutController := controller.NewCheckoutController(checkoutService)
	imageController := controller.NewImageController(cloudinaryClient, s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		cartController,
		wishlistController,
		checkoutController,
		imageController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
