package handlers

import (
	"net/http"

	"blog-backend/models"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// GetTrending returns the top posts by trending score
// GET /api/v1/feed/trending?limit=20
func (h *FeedHandler) GetTrending(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ranked, err := h.feedService.GetTrendingFeed(c.Request.Context(), req.Limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	posts := rankedToResponses(ranked)
	c.JSON(http.StatusOK, models.FeedResponse{
		Posts:        posts,
		Personalized: false,
		Metadata:     models.NewResponseMetadata(len(posts), len(posts), nil),
	})
}

// GetFeed returns the viewer's personalized feed, falling back to plain
// trending order for anonymous viewers
// GET /api/v1/feed?limit=20
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req models.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ranked, personalized, err := h.feedService.GetPersonalizedFeed(
		c.Request.Context(),
		viewerID(c),
		req.Limit,
	)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	posts := rankedToResponses(ranked)
	c.JSON(http.StatusOK, models.FeedResponse{
		Posts:        posts,
		Personalized: personalized,
		Metadata:     models.NewResponseMetadata(len(posts), len(posts), nil),
	})
}

// InvalidateCache drops the cached candidate pool
// POST /api/v1/feed/cache/invalidate
func (h *FeedHandler) InvalidateCache(c *gin.Context) {
	h.feedService.InvalidateCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Feed cache invalidated",
	})
}
