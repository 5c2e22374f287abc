package handlers

import (
	"net/http"

	"blog-backend/models"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

// RecordView increments a post's view counter
// POST /api/v1/posts/:id/view
func (h *EngagementHandler) RecordView(c *gin.Context) {
	if err := h.engagementService.RecordView(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ToggleReaction toggles the viewer's reaction on a post
// POST /api/v1/posts/:id/reactions
func (h *EngagementHandler) ToggleReaction(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	reacted, err := h.engagementService.ToggleReaction(c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"reacted": reacted,
	})
}

// AddComment creates a comment on a post
// POST /api/v1/posts/:id/comments
func (h *EngagementHandler) AddComment(c *gin.Context) {
	authorID, ok := requireViewer(c)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	comment, err := h.engagementService.AddComment(c.Param("id"), authorID, req.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment.ToResponse())
}

// ListComments returns a post's comments
// GET /api/v1/posts/:id/comments
func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.engagementService.ListComments(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]models.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = comments[i].ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": responses,
		"metadata": models.NewResponseMetadata(len(responses), len(responses), nil),
	})
}
