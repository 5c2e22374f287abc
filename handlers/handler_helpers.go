package handlers

import (
	"errors"
	"net/http"

	"blog-backend/models"
	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

// ViewerHeader carries the authenticated user's ID, set by the upstream
// identity provider. An absent header means an anonymous viewer.
const ViewerHeader = "X-User-ID"

// =============================================================================
// Viewer Identity
// =============================================================================

// viewerID returns the current viewer's ID, or "" for anonymous access
func viewerID(c *gin.Context) string {
	return c.GetHeader(ViewerHeader)
}

// requireViewer returns the viewer's ID, responding 401 if absent.
// The bool reports whether the request may proceed.
func requireViewer(c *gin.Context) (string, bool) {
	id := viewerID(c)
	if id == "" {
		respondWithError(c, http.StatusUnauthorized, "Unauthorized", ViewerHeader+" header is required")
		return "", false
	}
	return id, true
}

// =============================================================================
// Response Helpers
// =============================================================================

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, code int, error, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 error response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Invalid request", message)
}

// respondInternalError sends a 500 error response
func respondInternalError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Internal error", message)
}

// respondNotFound sends a 404 error response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not found", message)
}

// respondServiceError maps service sentinel errors to HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		respondWithError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, services.ErrSlugConflict), errors.Is(err, services.ErrSlugSpaceExhausted):
		respondWithError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err.Error())
	}
}

// =============================================================================
// Post Conversion Helpers
// =============================================================================

// postsToResponses converts a slice of Posts to PostResponses
func postsToResponses(posts []models.Post) []models.PostResponse {
	responses := make([]models.PostResponse, len(posts))
	for i := range posts {
		responses[i] = posts[i].ToResponse()
	}
	return responses
}

// rankedToResponses converts ranked posts to PostResponses, dropping the
// internal score. Scores order the feed but are never shown to end users.
func rankedToResponses(ranked []models.RankedPost) []models.PostResponse {
	responses := make([]models.PostResponse, len(ranked))
	for i := range ranked {
		responses[i] = ranked[i].ToResponse()
		responses[i].Body = "" // feed listings carry summaries only
	}
	return responses
}
