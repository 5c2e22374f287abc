package handlers

import (
	"net/http"
	"strconv"

	"blog-backend/models"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a new post for the authenticated author
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	authorID, ok := requireViewer(c)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(authorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post.ToResponse())
}

// GetPost retrieves a post by its slug or ID
// GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("id"), viewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post.ToResponse())
}

// ListPosts returns recent published posts
// GET /api/v1/posts?limit=20&author=<id>
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	var (
		posts []models.Post
		err   error
	)
	if author := c.Query("author"); author != "" {
		posts, err = h.postService.ListPostsByAuthor(author, limit)
	} else {
		posts, err = h.postService.ListRecentPosts(limit)
	}
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":    postsToResponses(posts),
		"metadata": models.NewResponseMetadata(len(posts), len(posts), nil),
	})
}

// UpdatePost applies a partial update to an owned post
// PATCH /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	authorID, ok := requireViewer(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Param("id"), authorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post.ToResponse())
}

// DeletePost removes an owned post
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	authorID, ok := requireViewer(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Param("id"), authorID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Post deleted",
	})
}

// GetStats returns aggregate platform statistics
// GET /api/v1/stats
func (h *PostHandler) GetStats(c *gin.Context) {
	stats, err := h.postService.GetPlatformStats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}
