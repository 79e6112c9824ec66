package api

import (
	"github.com/gin-gonic/gin"

	"github.com/timmy/giftrend/internal/api/handler"
	"github.com/timmy/giftrend/internal/api/middleware"
	"github.com/timmy/giftrend/internal/logger"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	feed handler.FeedProvider,
	log *logger.Logger,
	mode string,
	cors middleware.CORSConfig,
) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cors))

	// Create handlers
	healthHandler := handler.NewHealthHandler(feed)
	feedHandler := handler.NewFeedHandler(feed)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/trending", feedHandler.GetTrending)
		v1.POST("/trending/refresh", feedHandler.TriggerRefresh)
	}

	return r
}
