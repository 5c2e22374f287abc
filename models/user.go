package models

import (
	"time"
)

// User represents a platform member. Authentication is handled by an
// external identity provider; only the fields the backend needs are stored.
type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex:idx_username" json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Follow represents one user following another
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID string    `gorm:"index:idx_follow_pair,unique" json:"follower_id"`
	AuthorID   string    `gorm:"index:idx_follow_pair,unique" json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Bookmark represents a user saving a post for later.
// Bookmarked posts' tags drive feed personalization.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_bookmark_pair,unique" json:"user_id"`
	PostID    string    `gorm:"index:idx_bookmark_pair,unique" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
