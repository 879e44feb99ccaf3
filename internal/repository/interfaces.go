package repository

import (
	"time"

	"github.com/google/uuid"

	"agricoop-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRegion(region string) ([]models.User, error)
	Search(query string, limit int) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// FarmRepositoryInterface defines the interface for farm repository operations
type FarmRepositoryInterface interface {
	Create(farm *models.Farm) error
	GetByID(id uuid.UUID) (*models.Farm, error)
	GetByUserID(userID uuid.UUID) ([]models.Farm, error)
	Search(query string, limit int) ([]models.Farm, error)
	Update(farm *models.Farm) error
	Delete(id uuid.UUID) error
}

// BusinessRepositoryInterface defines the interface for business repository operations
type BusinessRepositoryInterface interface {
	Create(business *models.Business) error
	GetByID(id uuid.UUID) (*models.Business, error)
	GetByUserID(userID uuid.UUID) ([]models.Business, error)
	Search(query string, limit int) ([]models.Business, error)
	Update(business *models.Business) error
	Delete(id uuid.UUID) error
}

// CertificationRepositoryInterface defines the interface for certification repository operations
type CertificationRepositoryInterface interface {
	Create(cert *models.Certification) error
	GetByID(id uuid.UUID) (*models.Certification, error)
	GetByUserID(userID uuid.UUID) ([]models.Certification, error)
	GetExpiringBetween(userID uuid.UUID, from, to time.Time) ([]models.Certification, error)
	Update(cert *models.Certification) error
	Delete(id uuid.UUID) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(announcement *models.Announcement) error
	GetByID(id uuid.UUID) (*models.Announcement, error)
	GetAll(limit, offset int) ([]models.Announcement, int64, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Announcement, int64, error)
	GetByCategory(category string, limit, offset int) ([]models.Announcement, int64, error)
	Search(query string, limit int) ([]models.Announcement, error)
	Update(announcement *models.Announcement) error
	Delete(id uuid.UUID) error
	AddLike(announcementID, userID uuid.UUID) error
	RemoveLike(announcementID, userID uuid.UUID) error
	HasLiked(announcementID, userID uuid.UUID) (bool, error)
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByAnnouncementID(announcementID uuid.UUID) ([]models.Comment, error)
	Delete(id uuid.UUID) error
}

// HarvestScheduleRepositoryInterface defines the interface for harvest schedule repository operations
type HarvestScheduleRepositoryInterface interface {
	Create(schedule *models.HarvestSchedule) error
	GetByID(id uuid.UUID) (*models.HarvestSchedule, error)
	GetActiveByUser(userID uuid.UUID, region string) ([]models.HarvestSchedule, error)
	GetActiveByRegion(region string) ([]models.HarvestSchedule, error)
	Update(schedule *models.HarvestSchedule) error
	Delete(id uuid.UUID) error
}

// ChatMessageRepositoryInterface defines the interface for chat message repository operations
type ChatMessageRepositoryInterface interface {
	Create(message *models.ChatMessage) error
	GetByConflictDate(conflictDate string) ([]models.ChatMessage, error)
}
