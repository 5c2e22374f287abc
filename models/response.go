package models

// CreatePostRequest represents an incoming post creation request
type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	ScheduledAt string   `json:"scheduled_at"` // RFC3339, optional
}

// UpdatePostRequest represents an incoming post update request
// Pointer fields distinguish "not provided" from zero values.
type UpdatePostRequest struct {
	Title       *string   `json:"title"`
	Body        *string   `json:"body"`
	Tags        *[]string `json:"tags"`
	Published   *bool     `json:"published"`
	ScheduledAt *string   `json:"scheduled_at"` // RFC3339, empty string clears
}

// CommentRequest represents an incoming comment creation request
type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// ReportRequest represents an incoming moderation report
type ReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// FeedRequest represents query parameters for feed endpoints
type FeedRequest struct {
	Limit int `form:"limit"`
}

// FeedResponse represents a ranked feed response
type FeedResponse struct {
	Posts        []PostResponse    `json:"posts"`
	Personalized bool              `json:"personalized"`
	Metadata     *ResponseMetadata `json:"metadata"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ResponseMetadata contains pagination and query information for API responses
type ResponseMetadata struct {
	Count          int               `json:"count"`             // Number of items returned
	TotalAvailable int               `json:"total_available"`   // Total matching items before limit
	Page           int               `json:"page"`              // Current page number
	PageSize       int               `json:"page_size"`         // Items per page
	Filters        map[string]string `json:"filters,omitempty"` // Applied filters
}

// NewResponseMetadata creates a new ResponseMetadata with defaults
func NewResponseMetadata(count, totalAvailable int, filters map[string]string) *ResponseMetadata {
	return &ResponseMetadata{
		Count:          count,
		TotalAvailable: totalAvailable,
		Page:           1,
		PageSize:       count,
		Filters:        filters,
	}
}
