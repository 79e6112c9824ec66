package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/timmy/giftrend/internal/config"
	"github.com/timmy/giftrend/internal/giphy"
	"github.com/timmy/giftrend/internal/logger"
	"github.com/timmy/giftrend/internal/repository"
)

// fetch performs a single trending fetch and prints the decoded items
// as JSON, which is handy for checking credentials and eyeballing the
// feed without running the server.
func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "giftrend-fetch",
	})
	logger.SetDefaultLogger(appLogger)

	configPath := flag.String("config", "", "Path to config file")
	timeout := flag.Duration("timeout", 30*time.Second, "Fetch timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	client := giphy.NewClient(&giphy.Config{BaseURL: cfg.Giphy.BaseURL})
	feedRepo := repository.NewFeedRepository(client)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	items, err := feedRepo.GetTrending(ctx, cfg.Giphy.APIKey)
	if err != nil {
		appLogger.WithError(err).Fatal("Trending fetch failed")
	}

	appLogger.WithField(logger.FieldCount, len(items)).Info("Trending fetch succeeded")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		appLogger.WithError(err).Fatal("Failed to encode items")
	}
}
