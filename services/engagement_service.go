package services

import (
	"errors"
	"fmt"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementService struct {
	db            *gorm.DB
	cfg           *config.Config
	notifications *NotificationService
}

// NewEngagementService creates a new engagement service instance
func NewEngagementService(cfg *config.Config, notifications *NotificationService) *EngagementService {
	return &EngagementService{
		db:            database.GetDB(),
		cfg:           cfg,
		notifications: notifications,
	}
}

// RecordView increments a post's view counter. The increment is an atomic
// column expression so concurrent views never lose updates.
func (s *EngagementService) RecordView(postID string) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to record view: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleReaction adds the user's reaction to a post, or removes it if it
// already exists. Returns true when the post ends up reacted. The counter
// moves by exactly one in either direction, atomically with the row change.
func (s *EngagementService) ToggleReaction(postID, userID string) (bool, error) {
	post, err := s.getPost(postID)
	if err != nil {
		return false, err
	}

	reacted := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var reaction models.Reaction
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&reaction).Error

		if err == nil {
			if err := tx.Delete(&reaction).Error; err != nil {
				return err
			}
			return tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("reaction_count", gorm.Expr("reaction_count - 1")).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		reaction = models.Reaction{PostID: postID, UserID: userID}
		if err := tx.Create(&reaction).Error; err != nil {
			return err
		}
		reacted = true
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("reaction_count", gorm.Expr("reaction_count + 1")).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	if reacted {
		s.notifications.Notify(post.AuthorID, userID, models.NotificationReaction, postID)
	}
	return reacted, nil
}

// AddComment creates a comment and bumps the post's comment counter in the
// same transaction
func (s *EngagementService) AddComment(postID, authorID, body string) (*models.Comment, error) {
	post, err := s.getPost(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:       uuid.NewString(),
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	s.notifications.Notify(post.AuthorID, authorID, models.NotificationComment, postID)
	return &comment, nil
}

// ListComments returns a post's comments, oldest first
func (s *EngagementService) ListComments(postID string) ([]models.Comment, error) {
	if _, err := s.getPost(postID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *EngagementService) getPost(postID string) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return &post, nil
}
