package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/repository"
)

// BusinessService handles business logic for agribusiness outlets
type BusinessService struct {
	repo      repository.BusinessRepositoryInterface
	validator *validator.Validate
}

// NewBusinessService creates a new business service
func NewBusinessService(repo repository.BusinessRepositoryInterface, validator *validator.Validate) *BusinessService {
	return &BusinessService{repo: repo, validator: validator}
}

// BusinessRequest represents the data needed to create or update a business
type BusinessRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Type           string `json:"type" validate:"required"`
	Location       string `json:"location" validate:"max=200"`
	GPSLatitude    string `json:"gps_latitude" validate:"max=20"`
	GPSLongitude   string `json:"gps_longitude" validate:"max=20"`
	Phone          string `json:"phone" validate:"max=20"`
	Description    string `json:"description" validate:"max=500"`
	OperatingHours string `json:"operating_hours" validate:"max=100"`
}

// Create creates a business owned by the caller
func (s *BusinessService) Create(ownerID uuid.UUID, req *BusinessRequest) (*models.Business, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.BusinessType(req.Type).IsValid() {
		return nil, apperrors.ErrInvalidBusinessType
	}

	business := &models.Business{
		UserID:         ownerID,
		Name:           req.Name,
		Type:           models.BusinessType(req.Type),
		Location:       req.Location,
		GPSLatitude:    req.GPSLatitude,
		GPSLongitude:   req.GPSLongitude,
		Phone:          req.Phone,
		Description:    req.Description,
		OperatingHours: req.OperatingHours,
	}
	if err := s.repo.Create(business); err != nil {
		return nil, fmt.Errorf("creating business: %w", err)
	}
	return business, nil
}

// GetByID retrieves a business
func (s *BusinessService) GetByID(id uuid.UUID) (*models.Business, error) {
	business, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("fetching business: %w", err)
	}
	return business, nil
}

// ListByOwner retrieves the caller's businesses
func (s *BusinessService) ListByOwner(ownerID uuid.UUID) ([]models.Business, error) {
	businesses, err := s.repo.GetByUserID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	return businesses, nil
}

// Update replaces a business's fields; only the owner may update
func (s *BusinessService) Update(id, callerID uuid.UUID, req *BusinessRequest) (*models.Business, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.BusinessType(req.Type).IsValid() {
		return nil, apperrors.ErrInvalidBusinessType
	}

	business, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if business.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	business.Name = req.Name
	business.Type = models.BusinessType(req.Type)
	business.Location = req.Location
	business.GPSLatitude = req.GPSLatitude
	business.GPSLongitude = req.GPSLongitude
	business.Phone = req.Phone
	business.Description = req.Description
	business.OperatingHours = req.OperatingHours

	if err := s.repo.Update(business); err != nil {
		return nil, fmt.Errorf("updating business: %w", err)
	}
	return business, nil
}

// Delete removes a business; only the owner may delete
func (s *BusinessService) Delete(id, callerID uuid.UUID) error {
	business, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if business.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting business: %w", err)
	}
	return nil
}
