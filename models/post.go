package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post in the database
// This is the core domain model with GORM tags for database operations
type Post struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	AuthorID      string         `gorm:"index:idx_author" json:"author_id"`
	Title         string         `json:"title"`
	Slug          string         `gorm:"uniqueIndex:idx_slug" json:"slug"`
	Body          string         `json:"body"`
	Tags          string         `gorm:"index:idx_tags" json:"-"` // comma-joined lowercase tags
	ViewCount     int            `json:"view_count"`
	ReactionCount int            `json:"reaction_count"`
	CommentCount  int            `json:"comment_count"`
	Published     bool           `gorm:"index:idx_published" json:"published"`
	ScheduledAt   *time.Time     `json:"scheduled_at,omitempty"`
	Hidden        bool           `json:"hidden"`
	CreatedAt     time.Time      `gorm:"index:idx_created" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TagList returns the post's tags as a slice
func (p *Post) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	return strings.Split(p.Tags, ",")
}

// SetTagList stores tags as a comma-joined lowercase string. Tags are a
// set: duplicates after lowercasing and trimming are dropped so overlap
// bonuses and tag frequencies count each tag once.
func (p *Post) SetTagList(tags []string) {
	seen := make(map[string]bool, len(tags))
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}
	p.Tags = strings.Join(cleaned, ",")
}

// Visible reports whether the post is eligible for listing and ranking:
// published, not hidden by moderation, and past its scheduled time (if any).
func (p *Post) Visible(now time.Time) bool {
	if !p.Published || p.Hidden {
		return false
	}
	if p.ScheduledAt != nil && p.ScheduledAt.After(now) {
		return false
	}
	return true
}

// PostResponse represents the API response structure for a post
type PostResponse struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Body          string     `json:"body,omitempty"`
	Tags          []string   `json:"tags"`
	ViewCount     int        `json:"view_count"`
	ReactionCount int        `json:"reaction_count"`
	CommentCount  int        `json:"comment_count"`
	Published     bool       `json:"published"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToResponse converts a Post to PostResponse
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Slug:          p.Slug,
		Body:          p.Body,
		Tags:          p.TagList(),
		ViewCount:     p.ViewCount,
		ReactionCount: p.ReactionCount,
		CommentCount:  p.CommentCount,
		Published:     p.Published,
		ScheduledAt:   p.ScheduledAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// RankedPost represents a post with its computed feed score.
// Scores are computed on demand and never persisted.
type RankedPost struct {
	Post
	Score float64 `json:"-"`
}
