package models

import (
	"time"
)

// Reaction represents a user reacting to a post. Reactions are a toggle:
// at most one row per (post, user), removed again on un-react.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"index:idx_reaction_pair,unique" json:"post_id"`
	UserID    string    `gorm:"index:idx_reaction_pair,unique" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment represents a comment on a post
type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"index:idx_comment_post" json:"post_id"`
	AuthorID  string    `gorm:"index:idx_comment_author" json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse represents the API response structure for a comment
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Comment to CommentResponse
func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}
