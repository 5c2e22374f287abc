package handlers

import (
	"net/http"
	"strconv"

	"blog-backend/models"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
	feedService       *services.FeedService
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(moderationService *services.ModerationService, feedService *services.FeedService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		feedService:       feedService,
	}
}

// ReportPost files a moderation report against a post
// POST /api/v1/posts/:id/report
func (h *ModerationHandler) ReportPost(c *gin.Context) {
	reporterID, ok := requireViewer(c)
	if !ok {
		return
	}

	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	report, err := h.moderationService.ReportPost(c.Param("id"), reporterID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports returns open moderation reports
// GET /api/v1/moderation/reports?limit=50
func (h *ModerationHandler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	reports, err := h.moderationService.ListOpenReports(limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// ResolveReport marks a report as resolved
// POST /api/v1/moderation/reports/:id/resolve
func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid report id")
		return
	}

	if err := h.moderationService.ResolveReport(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// HidePost hides a post from feeds and slug lookups
// POST /api/v1/moderation/posts/:id/hide
func (h *ModerationHandler) HidePost(c *gin.Context) {
	if err := h.moderationService.SetPostHidden(c.Param("id"), true); err != nil {
		respondServiceError(c, err)
		return
	}

	// Hidden posts must drop out of feeds immediately
	h.feedService.InvalidateCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// UnhidePost restores a hidden post
// POST /api/v1/moderation/posts/:id/unhide
func (h *ModerationHandler) UnhidePost(c *gin.Context) {
	if err := h.moderationService.SetPostHidden(c.Param("id"), false); err != nil {
		respondServiceError(c, err)
		return
	}

	h.feedService.InvalidateCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
