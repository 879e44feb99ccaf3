package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// GetByID retrieves a business by ID
func (r *BusinessRepository) GetByID(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByUserID retrieves all businesses owned by a user
func (r *BusinessRepository) GetByUserID(userID uuid.UUID) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&businesses).Error
	return businesses, err
}

// Search finds businesses whose name or location contains the query
func (r *BusinessRepository) Search(query string, limit int) ([]models.Business, error) {
	var businesses []models.Business
	pattern := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&businesses).Error
	return businesses, err
}

// Update updates a business
func (r *BusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete deletes a business
func (r *BusinessRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Business{}, "id = ?", id).Error
}
