package models

// User represents a cooperative member account.
// Region doubles as the cooperative-group key and the index into the
// regional yield-threshold table used by the planner.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email        string `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	Phone        string `json:"phone" gorm:"size:20" validate:"max=20"`
	Avatar       string `json:"avatar" gorm:"size:10;default:'👤'"`
	Region       string `json:"region" gorm:"size:100;index" validate:"max=100"`
	BusinessName string `json:"business_name" gorm:"size:100" validate:"max=100"`
	BusinessType string `json:"business_type" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
