package service

import (
	"time"

	"github.com/google/uuid"

	"agricoop-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the operations handlers need from the user service
type UserServiceInterface interface {
	GetProfile(id uuid.UUID) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*models.User, error)
}

// FarmServiceInterface defines the operations handlers need from the farm service
type FarmServiceInterface interface {
	Create(ownerID uuid.UUID, req *FarmRequest) (*models.Farm, error)
	GetByID(id uuid.UUID) (*models.Farm, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Farm, error)
	Update(id, callerID uuid.UUID, req *FarmRequest) (*models.Farm, error)
	Delete(id, callerID uuid.UUID) error
}

// BusinessServiceInterface defines the operations handlers need from the business service
type BusinessServiceInterface interface {
	Create(ownerID uuid.UUID, req *BusinessRequest) (*models.Business, error)
	GetByID(id uuid.UUID) (*models.Business, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Business, error)
	Update(id, callerID uuid.UUID, req *BusinessRequest) (*models.Business, error)
	Delete(id, callerID uuid.UUID) error
}

// CertificationServiceInterface defines the operations handlers need from the certification service
type CertificationServiceInterface interface {
	Create(ownerID uuid.UUID, req *CertificationRequest) (*models.Certification, error)
	ListByOwner(ownerID uuid.UUID) ([]CertificationResponse, error)
	ListExpiring(ownerID uuid.UUID, within time.Duration) ([]CertificationResponse, error)
	Update(id, callerID uuid.UUID, req *CertificationRequest) (*models.Certification, error)
	Delete(id, callerID uuid.UUID) error
}

// AnnouncementServiceInterface defines the operations handlers need from the announcement service
type AnnouncementServiceInterface interface {
	Create(author *models.User, req *AnnouncementRequest) (*models.Announcement, error)
	GetByID(id uuid.UUID) (*models.Announcement, error)
	List(opts AnnouncementListOptions) ([]models.Announcement, int64, error)
	Update(id, callerID uuid.UUID, req *AnnouncementRequest) (*models.Announcement, error)
	Delete(id, callerID uuid.UUID) error
	ToggleLike(id, userID uuid.UUID) (liked bool, err error)
	AddComment(announcementID uuid.UUID, author *models.User, content string) (*models.Comment, error)
	ListComments(announcementID uuid.UUID) ([]models.Comment, error)
	DeleteComment(commentID, callerID uuid.UUID) error
}

// SearchServiceInterface defines the operations handlers need from the search service
type SearchServiceInterface interface {
	Search(query string) (*GroupedSearchResults, error)
}

// HarvestServiceInterface defines the operations handlers need from the harvest service
type HarvestServiceInterface interface {
	Create(owner *models.User, req *HarvestRequest) (*models.HarvestSchedule, error)
	GetByID(id uuid.UUID) (*models.HarvestSchedule, error)
	MyTimeline(ownerID uuid.UUID, region string) ([]models.HarvestSchedule, error)
	Update(id, callerID uuid.UUID, req *HarvestRequest) (*models.HarvestSchedule, error)
	Delete(id, callerID uuid.UUID) error
	RegionAnalytics(region string, now time.Time) (*RegionAnalytics, error)
	GroupMembers(region string) ([]GroupMember, error)
}

// ChatServiceInterface defines the operations handlers need from the chat service
type ChatServiceInterface interface {
	ListMessages(conflictDate string) ([]models.ChatMessage, error)
	SendMessage(sender *models.User, conflictDate, text string, isResolution bool) (*models.ChatMessage, error)
}

// ReportServiceInterface defines the operations handlers need from the report service
type ReportServiceInterface interface {
	ExportRegionReport(region string, now time.Time) ([]byte, error)
}
