package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// CommentRepository handles database operations for announcement comments.
// The announcement's comments_count column is maintained here so it can
// never drift from the actual rows.
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and bumps the announcement counter atomically
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Announcement{}).
			Where("id = ?", comment.AnnouncementID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByAnnouncementID retrieves comments for an announcement, oldest first
func (r *CommentRepository) GetByAnnouncementID(announcementID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("announcement_id = ?", announcementID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Delete removes a comment and drops the announcement counter atomically
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Comment{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Announcement{}).
			Where("id = ? AND comments_count > 0", comment.AnnouncementID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - 1")).Error
	})
}
