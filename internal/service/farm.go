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

// FarmService handles business logic for farms
type FarmService struct {
	repo      repository.FarmRepositoryInterface
	validator *validator.Validate
}

// NewFarmService creates a new farm service
func NewFarmService(repo repository.FarmRepositoryInterface, validator *validator.Validate) *FarmService {
	return &FarmService{repo: repo, validator: validator}
}

// FarmVarietyRequest is one crop variety entry on a farm request
type FarmVarietyRequest struct {
	Variety  string  `json:"variety" validate:"required,max=100"`
	AreaSize float64 `json:"area_size" validate:"gte=0"`
}

// FarmRequest represents the data needed to create or update a farm
type FarmRequest struct {
	Name         string               `json:"name" validate:"required,max=100"`
	Location     string               `json:"location" validate:"max=200"`
	GPSLatitude  string               `json:"gps_latitude" validate:"max=20"`
	GPSLongitude string               `json:"gps_longitude" validate:"max=20"`
	TotalSize    float64              `json:"total_size" validate:"gte=0"`
	FarmerType   string               `json:"farmer_type" validate:"max=50"`
	Varieties    []FarmVarietyRequest `json:"varieties" validate:"dive"`
}

// Create creates a farm owned by the caller
func (s *FarmService) Create(ownerID uuid.UUID, req *FarmRequest) (*models.Farm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	farm := &models.Farm{
		UserID:       ownerID,
		Name:         req.Name,
		Location:     req.Location,
		GPSLatitude:  req.GPSLatitude,
		GPSLongitude: req.GPSLongitude,
		TotalSize:    req.TotalSize,
		FarmerType:   req.FarmerType,
	}
	for _, v := range req.Varieties {
		farm.Varieties = append(farm.Varieties, models.FarmVariety{Variety: v.Variety, AreaSize: v.AreaSize})
	}

	if err := s.repo.Create(farm); err != nil {
		return nil, fmt.Errorf("creating farm: %w", err)
	}
	return farm, nil
}

// GetByID retrieves a farm
func (s *FarmService) GetByID(id uuid.UUID) (*models.Farm, error) {
	farm, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmNotFound
		}
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	return farm, nil
}

// ListByOwner retrieves the caller's farms
func (s *FarmService) ListByOwner(ownerID uuid.UUID) ([]models.Farm, error) {
	farms, err := s.repo.GetByUserID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}
	return farms, nil
}

// Update replaces a farm's fields; only the owner may update
func (s *FarmService) Update(id, callerID uuid.UUID, req *FarmRequest) (*models.Farm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	farm, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if farm.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	farm.Name = req.Name
	farm.Location = req.Location
	farm.GPSLatitude = req.GPSLatitude
	farm.GPSLongitude = req.GPSLongitude
	farm.TotalSize = req.TotalSize
	farm.FarmerType = req.FarmerType
	farm.Varieties = nil
	for _, v := range req.Varieties {
		farm.Varieties = append(farm.Varieties, models.FarmVariety{FarmID: farm.ID, Variety: v.Variety, AreaSize: v.AreaSize})
	}

	if err := s.repo.Update(farm); err != nil {
		return nil, fmt.Errorf("updating farm: %w", err)
	}
	return farm, nil
}

// Delete removes a farm; only the owner may delete
func (s *FarmService) Delete(id, callerID uuid.UUID) error {
	farm, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if farm.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting farm: %w", err)
	}
	return nil
}
