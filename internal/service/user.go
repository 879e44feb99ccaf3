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

// UserService handles business logic for member profiles
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateProfileRequest represents the data needed to update a profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	Avatar       *string `json:"avatar" validate:"omitempty,max=10"`
	Region       *string `json:"region" validate:"omitempty,max=100"`
	BusinessName *string `json:"business_name" validate:"omitempty,max=100"`
	BusinessType *string `json:"business_type" validate:"omitempty,max=50"`
}

// GetProfile returns the full profile for the authenticated user
func (s *UserService) GetProfile(id uuid.UUID) (*models.User, error) {
	return s.GetByID(id)
}

// GetByID retrieves a user, translating gorm's not-found error
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of the request to the user
func (s *UserService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Region != nil {
		user.Region = *req.Region
	}
	if req.BusinessName != nil {
		user.BusinessName = *req.BusinessName
	}
	if req.BusinessType != nil {
		user.BusinessType = *req.BusinessType
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}
