package repository

import (
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
)

// ChatMessageRepository handles database operations for conflict chat threads
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create appends a message to a conflict thread
func (r *ChatMessageRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// GetByConflictDate retrieves a conflict thread's messages, oldest first
func (r *ChatMessageRepository) GetByConflictDate(conflictDate string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("conflict_date = ?", conflictDate).Order("created_at ASC").Find(&messages).Error
	return messages, err
}
