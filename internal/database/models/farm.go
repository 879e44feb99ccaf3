package models

import "github.com/google/uuid"

// Farm represents a member's farm holding
type Farm struct {
	BaseModel
	UserID       uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string        `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Location     string        `json:"location" gorm:"size:200" validate:"max=200"`
	GPSLatitude  string        `json:"gps_latitude" gorm:"size:20"`
	GPSLongitude string        `json:"gps_longitude" gorm:"size:20"`
	TotalSize    float64       `json:"total_size"` // hectares
	FarmerType   string        `json:"farmer_type" gorm:"size:50"`
	Varieties    []FarmVariety `json:"varieties" gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Farm
func (Farm) TableName() string {
	return "farms"
}

// FarmVariety is one crop variety planted on a farm with its allotted area
type FarmVariety struct {
	BaseModel
	FarmID   uuid.UUID `json:"farm_id" gorm:"type:uuid;not null;index" validate:"required"`
	Variety  string    `json:"variety" gorm:"size:100;not null" validate:"required,max=100"`
	AreaSize float64   `json:"area_size"` // hectares
}

// TableName returns the table name for FarmVariety
func (FarmVariety) TableName() string {
	return "farm_varieties"
}
