package models

import "github.com/google/uuid"

// Business represents a member's agribusiness outlet
type Business struct {
	BaseModel
	UserID         uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string       `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Type           BusinessType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Location       string       `json:"location" gorm:"size:200" validate:"max=200"`
	GPSLatitude    string       `json:"gps_latitude" gorm:"size:20"`
	GPSLongitude   string       `json:"gps_longitude" gorm:"size:20"`
	Phone          string       `json:"phone" gorm:"size:20" validate:"max=20"`
	Description    string       `json:"description" gorm:"size:500" validate:"max=500"`
	OperatingHours string       `json:"operating_hours" gorm:"size:100" validate:"max=100"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Business
func (Business) TableName() string {
	return "businesses"
}
