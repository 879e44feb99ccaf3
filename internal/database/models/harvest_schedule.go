package models

import (
	"time"

	"github.com/google/uuid"
)

// HarvestSchedule is one farmer's planned harvest window.
// EstimatedYield is in tonnes, the unit of the regional weekly-average
// thresholds. Owner name and avatar are denormalized for display.
type HarvestSchedule struct {
	BaseModel
	UserID           uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserName         string        `json:"user_name" gorm:"size:100"`
	UserAvatar       string        `json:"user_avatar" gorm:"size:10;default:'👤'"`
	CropType         string        `json:"crop_type" gorm:"size:100" validate:"max=100"`
	Variety          string        `json:"variety" gorm:"size:100" validate:"max=100"`
	PlantedDate      time.Time     `json:"planted_date" gorm:"type:date"`
	EstimatedYield   float64       `json:"estimated_yield"` // tonnes
	HarvestStartDate time.Time     `json:"harvest_start_date" gorm:"not null;index"`
	HarvestEndDate   time.Time     `json:"harvest_end_date"`
	Region           string        `json:"region" gorm:"size:100;not null;index" validate:"required,max=100"`
	Status           HarvestStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes            string        `json:"notes" gorm:"type:text"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HarvestSchedule
func (HarvestSchedule) TableName() string {
	return "harvest_schedules"
}

// DaysUntilHarvest returns whole days from now until the harvest window opens.
// Negative values mean the window already opened.
func (h *HarvestSchedule) DaysUntilHarvest(now time.Time) int {
	return int(h.HarvestStartDate.Sub(now).Hours() / 24)
}
