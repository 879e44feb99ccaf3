package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// FarmRepository handles database operations for farms
type FarmRepository struct {
	db *gorm.DB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

// Create creates a new farm with its varieties
func (r *FarmRepository) Create(farm *models.Farm) error {
	return r.db.Create(farm).Error
}

// GetByID retrieves a farm by ID including its varieties
func (r *FarmRepository) GetByID(id uuid.UUID) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.Preload("Varieties").First(&farm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

// GetByUserID retrieves all farms owned by a user
func (r *FarmRepository) GetByUserID(userID uuid.UUID) ([]models.Farm, error) {
	var farms []models.Farm
	err := r.db.Preload("Varieties").Where("user_id = ?", userID).Order("created_at DESC").Find(&farms).Error
	return farms, err
}

// Search finds farms whose name or location contains the query
func (r *FarmRepository) Search(query string, limit int) ([]models.Farm, error) {
	var farms []models.Farm
	pattern := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&farms).Error
	return farms, err
}

// Update replaces a farm and its varieties
func (r *FarmRepository) Update(farm *models.Farm) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Replace the variety rows wholesale; the set is small
		if err := tx.Where("farm_id = ?", farm.ID).Delete(&models.FarmVariety{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(farm).Error
	})
}

// Delete deletes a farm (varieties cascade)
func (r *FarmRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Farm{}, "id = ?", id).Error
}
