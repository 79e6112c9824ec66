package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/giftrend/internal/api"
	"github.com/timmy/giftrend/internal/api/middleware"
	"github.com/timmy/giftrend/internal/config"
	"github.com/timmy/giftrend/internal/giphy"
	"github.com/timmy/giftrend/internal/logger"
	"github.com/timmy/giftrend/internal/repository"
	"github.com/timmy/giftrend/internal/service"
)

func main() {
	// Initialize logger first
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Wire the feed pipeline: client -> repository -> feed service
	client := giphy.NewClient(&giphy.Config{BaseURL: cfg.Giphy.BaseURL})
	feedRepo := repository.NewFeedRepository(client)
	feedService := service.NewFeedService(feedRepo, &service.FeedConfig{
		APIKey:          cfg.Giphy.APIKey,
		RefreshInterval: cfg.Feed.RefreshInterval,
	}, appLogger)
	defer feedService.Close()

	if cfg.Feed.RefreshOnStart {
		feedService.Refresh()
	}

	// Setup router
	router := api.SetupRouter(feedService, appLogger, cfg.Server.Mode, middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
