package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"blog-backend/config"
	"blog-backend/database"
	"blog-backend/models"

	"gorm.io/gorm"
)

type ModerationService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewModerationService creates a new moderation service instance
func NewModerationService(cfg *config.Config) *ModerationService {
	return &ModerationService{
		db:  database.GetDB(),
		cfg: cfg,
	}
}

// ReportPost files a moderation report against a post
func (s *ModerationService) ReportPost(postID, reporterID, reason string) (*models.Report, error) {
	var post models.Post
	err := s.db.Where("id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	report := models.Report{
		PostID:     postID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     models.ReportOpen,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	log.Printf("Post %s reported by user %s: %s", postID, reporterID, reason)
	return &report, nil
}

// ListOpenReports returns unresolved reports, oldest first
func (s *ModerationService) ListOpenReports(limit int) ([]models.Report, error) {
	if limit <= 0 {
		limit = 50
	}

	var reports []models.Report
	err := s.db.
		Where("status = ?", models.ReportOpen).
		Order("created_at ASC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ResolveReport marks a report as resolved
func (s *ModerationService) ResolveReport(reportID uint) error {
	now := time.Now()
	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.ReportOpen).
		Updates(map[string]interface{}{
			"status":      models.ReportResolved,
			"resolved_at": &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPostHidden hides or unhides a post. Hidden posts are excluded from
// feeds and slug lookups like unpublished ones.
func (s *ModerationService) SetPostHidden(postID string, hidden bool) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ?", postID).
		Update("hidden", hidden)
	if result.Error != nil {
		return fmt.Errorf("failed to update post visibility: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	log.Printf("Post %s hidden=%v", postID, hidden)
	return nil
}
