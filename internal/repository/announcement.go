package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetAll retrieves announcements newest first
func (r *AnnouncementRepository) GetAll(limit, offset int) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	if err := r.db.Model(&models.Announcement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&announcements).Error
	return announcements, total, err
}

// GetByUserID retrieves announcements authored by a user, newest first
func (r *AnnouncementRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	if err := r.db.Model(&models.Announcement{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&announcements).Error
	return announcements, total, err
}

// GetByCategory retrieves announcements in a category, newest first
func (r *AnnouncementRepository) GetByCategory(category string, limit, offset int) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	if err := r.db.Model(&models.Announcement{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category = ?", category).Order("created_at DESC").Limit(limit).Offset(offset).Find(&announcements).Error
	return announcements, total, err
}

// Search finds announcements whose title or content contains the query
func (r *AnnouncementRepository) Search(query string, limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	pattern := "%" + query + "%"
	err := r.db.
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error
	return announcements, err
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete deletes an announcement (likes and comments cascade)
func (r *AnnouncementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Announcement{}, "id = ?", id).Error
}

// AddLike records a like and bumps the denormalized counter atomically
func (r *AnnouncementRepository) AddLike(announcementID, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		like := &models.AnnouncementLike{AnnouncementID: announcementID, UserID: userID}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrLikeExists
			}
			return err
		}
		return tx.Model(&models.Announcement{}).
			Where("id = ?", announcementID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

// RemoveLike removes a like and drops the counter atomically
func (r *AnnouncementRepository) RemoveLike(announcementID, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("announcement_id = ? AND user_id = ?", announcementID, userID).
			Delete(&models.AnnouncementLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Announcement{}).
			Where("id = ? AND likes_count > 0", announcementID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}

// HasLiked reports whether the user already liked the announcement
func (r *AnnouncementRepository) HasLiked(announcementID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.AnnouncementLike{}).
		Where("announcement_id = ? AND user_id = ?", announcementID, userID).
		Count(&count).Error
	return count > 0, err
}
