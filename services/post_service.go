package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"
	"blog-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slugInsertRetries bounds how many times a create regenerates its slug
// after losing a uniqueness race before giving up with ErrSlugConflict.
const slugInsertRetries = 3

type PostService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewPostService creates a new post service instance
func NewPostService(cfg *config.Config) *PostService {
	return &PostService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// CreatePost creates a post for the given author, resolving a unique slug
// from the title. The slug unique index is the final arbiter: if a
// concurrent creation takes the resolved slug first, the slug is
// regenerated and the insert retried a bounded number of times.
func (s *PostService) CreatePost(authorID string, req models.CreatePostRequest) (*models.Post, error) {
	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		Published:   req.Published,
		ScheduledAt: scheduledAt,
	}
	post.SetTagList(req.Tags)

	for attempt := 0; attempt < slugInsertRetries; attempt++ {
		slug, err := s.resolveSlug(req.Title, post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = slug

		err = s.db.Create(&post).Error
		if err == nil {
			return &post, nil
		}
		if !isDuplicateKey(err) {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		log.Printf("Slug %q taken by concurrent write, regenerating (attempt %d)", slug, attempt+1)
	}

	return nil, ErrSlugConflict
}

// GetPost retrieves a post by slug or ID. Unpublished, scheduled-future
// and hidden posts are only visible to their author.
func (s *PostService) GetPost(ref, viewerID string) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("slug = ? OR id = ?", ref, ref).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	if !post.Visible(time.Now()) && post.AuthorID != viewerID {
		return nil, ErrNotFound
	}
	return &post, nil
}

// ListRecentPosts returns the most recent visible posts
func (s *PostService) ListRecentPosts(limit int) ([]models.Post, error) {
	if limit <= 0 || limit > s.cfg.CandidatePoolSize {
		limit = s.cfg.MaxFeedReturn
	}

	var posts []models.Post
	now := time.Now()
	err := s.db.
		Where("published = ? AND hidden = ?", true, false).
		Where("scheduled_at IS NULL OR scheduled_at <= ?", now).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByAuthor returns an author's visible posts, newest first
func (s *PostService) ListPostsByAuthor(authorID string, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = s.cfg.MaxFeedReturn
	}

	var posts []models.Post
	now := time.Now()
	err := s.db.
		Where("author_id = ? AND published = ? AND hidden = ?", authorID, true, false).
		Where("scheduled_at IS NULL OR scheduled_at <= ?", now).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}
	return posts, nil
}

// UpdatePost applies a partial update. Only the author may update a post.
// A title change regenerates the slug; a no-op save keeps the existing
// slug without re-running the uniqueness check.
func (s *PostService) UpdatePost(id, authorID string, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.getOwnedPost(id, authorID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		post.Title = *req.Title
		slug, err := s.resolveSlug(post.Title, post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Tags != nil {
		post.SetTagList(*req.Tags)
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := parseScheduledAt(*req.ScheduledAt)
		if err != nil {
			return nil, err
		}
		post.ScheduledAt = scheduledAt
	}

	if err := s.db.Save(post).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost soft-deletes a post. Only the author may delete it.
func (s *PostService) DeletePost(id, authorID string) error {
	post, err := s.getOwnedPost(id, authorID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(post).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// GetPlatformStats returns aggregate counts across the platform
func (s *PostService) GetPlatformStats() (map[string]interface{}, error) {
	var posts, comments, reactions, follows, bookmarks int64

	s.db.Model(&models.Post{}).Where("published = ?", true).Count(&posts)
	s.db.Model(&models.Comment{}).Count(&comments)
	s.db.Model(&models.Reaction{}).Count(&reactions)
	s.db.Model(&models.Follow{}).Count(&follows)
	s.db.Model(&models.Bookmark{}).Count(&bookmarks)

	stats := map[string]interface{}{
		"published_posts": posts,
		"comments":        comments,
		"reactions":       reactions,
		"follows":         follows,
		"bookmarks":       bookmarks,
	}
	return stats, nil
}

// getOwnedPost fetches a post and verifies ownership
func (s *PostService) getOwnedPost(id, authorID string) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if post.AuthorID != authorID {
		return nil, ErrForbidden
	}
	return &post, nil
}

// resolveSlug finds a free slug for the title, excluding the post's own
// row so a no-op re-save of the same title resolves to the current slug.
// Collisions get an incrementing suffix up to the configured cap.
func (s *PostService) resolveSlug(title, excludeID string) (string, error) {
	base := utils.NormalizeSlug(title)

	for attempt := 0; attempt <= s.cfg.SlugMaxAttempts; attempt++ {
		candidate := utils.SlugWithSuffix(base, attempt)

		var count int64
		err := s.db.Model(&models.Post{}).
			Where("slug = ? AND id <> ?", candidate, excludeID).
			Count(&count).Error
		if err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return "", ErrSlugSpaceExhausted
}

// parseScheduledAt parses an optional RFC3339 timestamp; empty means nil
func parseScheduledAt(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled_at: %w", err)
	}
	return &t, nil
}

// isDuplicateKey reports whether the error is a unique constraint
// violation. GORM translates these for some drivers; the sqlite message
// check covers the rest.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
