package services

import (
	"errors"
	"fmt"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"
	"blog-backend/utils"

	"gorm.io/gorm"
)

type SocialService struct {
	db            *gorm.DB
	cfg           *config.Config
	notifications *NotificationService
}

// NewSocialService creates a new social service instance
func NewSocialService(cfg *config.Config, notifications *NotificationService) *SocialService {
	return &SocialService{
		db:            database.GetDB(),
		cfg:           cfg,
		notifications: notifications,
	}
}

// FollowAuthor makes followerID follow authorID. Following an already
// followed author is a no-op.
func (s *SocialService) FollowAuthor(followerID, authorID string) error {
	if followerID == authorID {
		return ErrSelfFollow
	}

	var author models.User
	err := s.db.Where("id = ?", authorID).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch author: %w", err)
	}

	var existing int64
	s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&existing)
	if existing > 0 {
		return nil
	}

	follow := models.Follow{FollowerID: followerID, AuthorID: authorID}
	if err := s.db.Create(&follow).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	s.notifications.Notify(authorID, followerID, models.NotificationFollow, "")
	return nil
}

// UnfollowAuthor removes a follow relationship; missing rows are a no-op
func (s *SocialService) UnfollowAuthor(followerID, authorID string) error {
	err := s.db.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

// ToggleBookmark bookmarks a post, or removes the bookmark if it exists.
// Returns true when the post ends up bookmarked.
func (s *SocialService) ToggleBookmark(userID, postID string) (bool, error) {
	var post models.Post
	err := s.db.Where("id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch post: %w", err)
	}

	var bookmark models.Bookmark
	err = s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&bookmark).Error
	if err == nil {
		if err := s.db.Delete(&bookmark).Error; err != nil {
			return false, fmt.Errorf("failed to remove bookmark: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	bookmark = models.Bookmark{UserID: userID, PostID: postID}
	if err := s.db.Create(&bookmark).Error; err != nil {
		return false, fmt.Errorf("failed to create bookmark: %w", err)
	}
	return true, nil
}

// ListBookmarkedPosts returns the posts a user has bookmarked, newest
// bookmark first
func (s *SocialService) ListBookmarkedPosts(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return posts, nil
}

// ResolveAffinity derives the viewer's personalization signal: the set of
// followed authors plus the top tags across bookmarked posts
func (s *SocialService) ResolveAffinity(viewerID string) (*utils.ViewerAffinity, error) {
	var follows []models.Follow
	if err := s.db.Where("follower_id = ?", viewerID).Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch follows: %w", err)
	}

	followed := make(map[string]bool, len(follows))
	for _, f := range follows {
		followed[f.AuthorID] = true
	}

	bookmarked, err := s.ListBookmarkedPosts(viewerID)
	if err != nil {
		return nil, err
	}

	return &utils.ViewerAffinity{
		FollowedAuthors: followed,
		TopTags:         utils.TopTagsFromBookmarks(bookmarked),
	}, nil
}
