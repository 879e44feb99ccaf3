package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// CertificationRepository handles database operations for certifications
type CertificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

// Create creates a new certification
func (r *CertificationRepository) Create(cert *models.Certification) error {
	return r.db.Create(cert).Error
}

// GetByID retrieves a certification by ID
func (r *CertificationRepository) GetByID(id uuid.UUID) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.First(&cert, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// GetByUserID retrieves all certifications held by a user, soonest expiry first
func (r *CertificationRepository) GetByUserID(userID uuid.UUID) ([]models.Certification, error) {
	var certs []models.Certification
	err := r.db.Where("user_id = ?", userID).Order("expiry_date ASC").Find(&certs).Error
	return certs, err
}

// GetExpiringBetween retrieves a user's certifications expiring inside the window
func (r *CertificationRepository) GetExpiringBetween(userID uuid.UUID, from, to time.Time) ([]models.Certification, error) {
	var certs []models.Certification
	err := r.db.
		Where("user_id = ? AND expiry_date >= ? AND expiry_date <= ?", userID, from, to).
		Order("expiry_date ASC").
		Find(&certs).Error
	return certs, err
}

// Update updates a certification
func (r *CertificationRepository) Update(cert *models.Certification) error {
	return r.db.Save(cert).Error
}

// Delete deletes a certification
func (r *CertificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, "id = ?", id).Error
}
