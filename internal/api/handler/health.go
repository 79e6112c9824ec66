package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	feed FeedProvider
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(feed FeedProvider) *HealthHandler {
	return &HealthHandler{feed: feed}
}

// Health returns the health status of the service, including whether
// the trending feed has loaded at least once.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"feed_loaded": h.feed.Loaded(),
	})
}
