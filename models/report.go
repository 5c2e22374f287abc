package models

import (
	"time"
)

// Report represents a user-submitted moderation report against a post
type Report struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	PostID     string     `gorm:"index:idx_report_post" json:"post_id"`
	ReporterID string     `json:"reporter_id"`
	Reason     string     `json:"reason"`
	Status     string     `gorm:"index:idx_report_status" json:"status"` // "open", "resolved"
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// Report status constants
const (
	ReportOpen     = "open"
	ReportResolved = "resolved"
)
