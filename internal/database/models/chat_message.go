package models

import "github.com/google/uuid"

// ChatMessage is one entry in a conflict resolution thread. Threads are
// keyed by the conflict's calendar date formatted as yyyy-MM-dd; the
// planner only produces the key, never reads the thread.
type ChatMessage struct {
	BaseModel
	ConflictDate string    `json:"conflict_date" gorm:"size:10;not null;index" validate:"required,len=10"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	UserName     string    `json:"user_name" gorm:"size:100"`
	UserAvatar   string    `json:"user_avatar" gorm:"size:10;default:'👤'"`
	Message      string    `json:"message" gorm:"type:text;not null" validate:"required"`
	IsResolution bool      `json:"is_resolution" gorm:"default:false"`
}

// TableName returns the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
