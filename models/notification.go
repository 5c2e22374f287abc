package models

import (
	"time"
)

// Notification represents an in-app notification for a user.
// Delivery channels (realtime push, email) are external concerns;
// this is only the stored record.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_notif_user" json:"user_id"`
	ActorID   string    `json:"actor_id"`
	Type      string    `gorm:"index:idx_notif_type" json:"type"` // "comment", "reaction", "follow"
	PostID    string    `json:"post_id,omitempty"`
	Read      bool      `gorm:"index:idx_notif_read" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification type constants
const (
	NotificationComment  = "comment"
	NotificationReaction = "reaction"
	NotificationFollow   = "follow"
)
