package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timmy/giftrend/internal/api/middleware"
	"github.com/timmy/giftrend/internal/domain"
)

// FeedProvider is the slice of the feed service the handlers consume.
type FeedProvider interface {
	// Current returns the last published feed, nil if never loaded.
	Current() []domain.MediaItem
	// Loaded reports whether at least one refresh has succeeded.
	Loaded() bool
	// Refresh triggers one asynchronous refresh attempt.
	Refresh() <-chan struct{}
}

// FeedHandler handles trending feed endpoints.
type FeedHandler struct {
	feed FeedProvider
}

// NewFeedHandler creates a new feed handler.
// Parameters:
//   - feed: feed service instance.
// Returns:
//   - *FeedHandler: initialized handler.
func NewFeedHandler(feed FeedProvider) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// GetTrending handles GET /api/v1/trending.
//
// A feed that has never loaded renders as an empty list, not an error;
// fetch failures are invisible at this surface.
func (h *FeedHandler) GetTrending(c *gin.Context) {
	items := h.feed.Current()
	if items == nil {
		items = []domain.MediaItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"data":  items,
	})
}

// TriggerRefresh handles POST /api/v1/trending/refresh. The refresh
// runs in the background; the response does not wait for it.
func (h *FeedHandler) TriggerRefresh(c *gin.Context) {
	middleware.GetLogger(c).Info("Manual feed refresh triggered")
	h.feed.Refresh()
	c.JSON(http.StatusAccepted, gin.H{
		"status": "refresh started",
	})
}
