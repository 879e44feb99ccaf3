package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/repository"
)

// ExpiringSoonWindow is the lookahead used for expiry reminders
const ExpiringSoonWindow = 30 * 24 * time.Hour

// CertificationService handles business logic for member certifications
type CertificationService struct {
	repo      repository.CertificationRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewCertificationService creates a new certification service
func NewCertificationService(repo repository.CertificationRepositoryInterface, validator *validator.Validate) *CertificationService {
	return &CertificationService{repo: repo, validator: validator, now: time.Now}
}

// CertificationRequest represents the data needed to create or update a certification
type CertificationRequest struct {
	Type              string    `json:"type" validate:"required"`
	CertificateNumber string    `json:"certificate_number" validate:"max=100"`
	IssuedDate        time.Time `json:"issued_date"`
	ExpiryDate        time.Time `json:"expiry_date" validate:"required"`
	IssuingBody       string    `json:"issuing_body" validate:"max=200"`
	Notes             string    `json:"notes"`
}

// CertificationResponse is a certification annotated with expiry status
type CertificationResponse struct {
	models.Certification
	DaysUntilExpiry int  `json:"days_until_expiry"`
	Expired         bool `json:"expired"`
	ExpiringSoon    bool `json:"expiring_soon"`
}

// Create records a new certification for the caller
func (s *CertificationService) Create(ownerID uuid.UUID, req *CertificationRequest) (*models.Certification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.CertificationType(req.Type).IsValid() {
		return nil, apperrors.ErrInvalidCertificationType
	}

	cert := &models.Certification{
		UserID:            ownerID,
		Type:              models.CertificationType(req.Type),
		CertificateNumber: req.CertificateNumber,
		IssuedDate:        req.IssuedDate,
		ExpiryDate:        req.ExpiryDate,
		IssuingBody:       req.IssuingBody,
		Notes:             req.Notes,
	}
	if err := s.repo.Create(cert); err != nil {
		return nil, fmt.Errorf("creating certification: %w", err)
	}
	return cert, nil
}

// ListByOwner retrieves the caller's certifications with expiry annotations
func (s *CertificationService) ListByOwner(ownerID uuid.UUID) ([]CertificationResponse, error) {
	certs, err := s.repo.GetByUserID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing certifications: %w", err)
	}
	return s.annotate(certs), nil
}

// ListExpiring retrieves the caller's certifications expiring within the
// given window, for reminder display
func (s *CertificationService) ListExpiring(ownerID uuid.UUID, within time.Duration) ([]CertificationResponse, error) {
	now := s.now()
	certs, err := s.repo.GetExpiringBetween(ownerID, now, now.Add(within))
	if err != nil {
		return nil, fmt.Errorf("listing expiring certifications: %w", err)
	}
	return s.annotate(certs), nil
}

// Update replaces a certification's fields; only the owner may update
func (s *CertificationService) Update(id, callerID uuid.UUID, req *CertificationRequest) (*models.Certification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.CertificationType(req.Type).IsValid() {
		return nil, apperrors.ErrInvalidCertificationType
	}

	cert, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if cert.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	cert.Type = models.CertificationType(req.Type)
	cert.CertificateNumber = req.CertificateNumber
	cert.IssuedDate = req.IssuedDate
	cert.ExpiryDate = req.ExpiryDate
	cert.IssuingBody = req.IssuingBody
	cert.Notes = req.Notes

	if err := s.repo.Update(cert); err != nil {
		return nil, fmt.Errorf("updating certification: %w", err)
	}
	return cert, nil
}

// Delete removes a certification; only the owner may delete
func (s *CertificationService) Delete(id, callerID uuid.UUID) error {
	cert, err := s.getByID(id)
	if err != nil {
		return err
	}
	if cert.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting certification: %w", err)
	}
	return nil
}

func (s *CertificationService) getByID(id uuid.UUID) (*models.Certification, error) {
	cert, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("fetching certification: %w", err)
	}
	return cert, nil
}

func (s *CertificationService) annotate(certs []models.Certification) []CertificationResponse {
	now := s.now()
	responses := make([]CertificationResponse, 0, len(certs))
	for _, c := range certs {
		days := c.DaysUntilExpiry(now)
		responses = append(responses, CertificationResponse{
			Certification:   c,
			DaysUntilExpiry: days,
			Expired:         c.ExpiryDate.Before(now),
			ExpiringSoon:    !c.ExpiryDate.Before(now) && c.ExpiryDate.Before(now.Add(ExpiringSoonWindow)),
		})
	}
	return responses
}
