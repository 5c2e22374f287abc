package handlers

import (
	"net/http"

	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialService *services.SocialService
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// Follow makes the viewer follow an author
// POST /api/v1/users/:id/follow
func (h *SocialHandler) Follow(c *gin.Context) {
	followerID, ok := requireViewer(c)
	if !ok {
		return
	}

	if err := h.socialService.FollowAuthor(followerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Unfollow removes the viewer's follow of an author
// DELETE /api/v1/users/:id/follow
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followerID, ok := requireViewer(c)
	if !ok {
		return
	}

	if err := h.socialService.UnfollowAuthor(followerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ToggleBookmark toggles the viewer's bookmark on a post
// POST /api/v1/posts/:id/bookmark
func (h *SocialHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	bookmarked, err := h.socialService.ToggleBookmark(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"bookmarked": bookmarked,
	})
}

// ListBookmarks returns the viewer's bookmarked posts
// GET /api/v1/bookmarks
func (h *SocialHandler) ListBookmarks(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	posts, err := h.socialService.ListBookmarkedPosts(userID)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": postsToResponses(posts),
	})
}
