package services

import (
	"fmt"
	"log"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"

	"gorm.io/gorm"
)

type NotificationService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// Notify records an in-app notification for userID about actorID's action.
// Self actions are skipped, and failures are logged rather than returned:
// a notification must never fail the request that triggered it.
func (s *NotificationService) Notify(userID, actorID, notifType, postID string) {
	if userID == "" || userID == actorID {
		return
	}

	notification := models.Notification{
		UserID:  userID,
		ActorID: actorID,
		Type:    notifType,
		PostID:  postID,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create %s notification for user %s: %v", notifType, userID, err)
	}
}

// ListNotifications returns a user's notifications, unread first, newest
// within each group
func (s *NotificationService) ListNotifications(userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	var notifications []models.Notification
	err := s.db.
		Where("user_id = ?", userID).
		Order("read ASC, created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a single notification as read. Only the owner may do so.
func (s *NotificationService) MarkRead(userID string, notificationID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (s *NotificationService) MarkAllRead(userID string) error {
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a user
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}
