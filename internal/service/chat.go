package service

import (
	"fmt"
	"time"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/repository"
)

// conflictDateLayout is the thread key format, the planner's DateKey output
const conflictDateLayout = "2006-01-02"

// MessageBroadcaster pushes a stored message to live subscribers of a
// conflict thread. The websocket hub implements it; a nil broadcaster
// disables live delivery without affecting persistence.
type MessageBroadcaster interface {
	Broadcast(conflictDate string, message *models.ChatMessage)
}

// ChatService handles conflict resolution threads
type ChatService struct {
	repo        repository.ChatMessageRepositoryInterface
	broadcaster MessageBroadcaster
}

// NewChatService creates a new chat service
func NewChatService(repo repository.ChatMessageRepositoryInterface, broadcaster MessageBroadcaster) *ChatService {
	return &ChatService{repo: repo, broadcaster: broadcaster}
}

// ListMessages returns a conflict thread's messages, oldest first. Threads
// exist implicitly; an unknown date yields an empty list, not an error.
func (s *ChatService) ListMessages(conflictDate string) ([]models.ChatMessage, error) {
	if err := validateConflictDate(conflictDate); err != nil {
		return nil, err
	}
	messages, err := s.repo.GetByConflictDate(conflictDate)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends a message to a conflict thread, stamping the sender's
// display fields, and broadcasts it to live subscribers
func (s *ChatService) SendMessage(sender *models.User, conflictDate, text string, isResolution bool) (*models.ChatMessage, error) {
	if err := validateConflictDate(conflictDate); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apperrors.NewValidationError("message", "must not be empty")
	}

	message := &models.ChatMessage{
		ConflictDate: conflictDate,
		UserID:       sender.ID,
		UserName:     sender.Name,
		UserAvatar:   sender.Avatar,
		Message:      text,
		IsResolution: isResolution,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, fmt.Errorf("creating chat message: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(conflictDate, message)
	}
	return message, nil
}

func validateConflictDate(conflictDate string) error {
	if _, err := time.Parse(conflictDateLayout, conflictDate); err != nil {
		return apperrors.ErrInvalidConflictDate
	}
	return nil
}
