package models

import "github.com/google/uuid"

// Comment is a reply on an announcement
type Comment struct {
	BaseModel
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserName       string    `json:"user_name" gorm:"size:100"`
	UserAvatar     string    `json:"user_avatar" gorm:"size:10;default:'👤'"`
	Content        string    `json:"content" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
