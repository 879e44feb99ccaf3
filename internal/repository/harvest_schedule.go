package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// HarvestScheduleRepository handles database operations for harvest schedules.
// The planner consumes its query results as-is; both region-wide and per-user
// fetches return active schedules ordered by harvest start ascending, the
// contract the conflict and weekly views rely on.
type HarvestScheduleRepository struct {
	db *gorm.DB
}

// NewHarvestScheduleRepository creates a new harvest schedule repository
func NewHarvestScheduleRepository(db *gorm.DB) *HarvestScheduleRepository {
	return &HarvestScheduleRepository{db: db}
}

// Create creates a new harvest schedule
func (r *HarvestScheduleRepository) Create(schedule *models.HarvestSchedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a harvest schedule by ID
func (r *HarvestScheduleRepository) GetByID(id uuid.UUID) (*models.HarvestSchedule, error) {
	var schedule models.HarvestSchedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetActiveByUser retrieves a user's active schedules in their region,
// ordered by harvest start ascending
func (r *HarvestScheduleRepository) GetActiveByUser(userID uuid.UUID, region string) ([]models.HarvestSchedule, error) {
	var schedules []models.HarvestSchedule
	err := r.db.
		Where("user_id = ? AND region = ? AND status = ?", userID, region, models.HarvestStatusActive).
		Order("harvest_start_date ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetActiveByRegion retrieves all active schedules across all owners in a
// region, ordered by harvest start ascending
func (r *HarvestScheduleRepository) GetActiveByRegion(region string) ([]models.HarvestSchedule, error) {
	var schedules []models.HarvestSchedule
	err := r.db.
		Where("region = ? AND status = ?", region, models.HarvestStatusActive).
		Order("harvest_start_date ASC").
		Find(&schedules).Error
	return schedules, err
}

// Update updates a harvest schedule
func (r *HarvestScheduleRepository) Update(schedule *models.HarvestSchedule) error {
	return r.db.Save(schedule).Error
}

// Delete deletes a harvest schedule
func (r *HarvestScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HarvestSchedule{}, "id = ?", id).Error
}
