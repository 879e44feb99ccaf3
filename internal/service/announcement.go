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

// AnnouncementService handles business logic for the community feed
type AnnouncementService struct {
	repo        repository.AnnouncementRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
	validator   *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, commentRepo repository.CommentRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{repo: repo, commentRepo: commentRepo, validator: validator}
}

// AnnouncementRequest represents the data needed to create or update an announcement
type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"max=50"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
}

// AnnouncementListOptions narrows a feed listing. Category and UserID are
// mutually exclusive filters; both empty lists the whole feed.
type AnnouncementListOptions struct {
	Category string
	UserID   uuid.UUID
	Limit    int
	Offset   int
}

// Create posts a new announcement, stamping the author's display fields
func (s *AnnouncementService) Create(author *models.User, req *AnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement := &models.Announcement{
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
	}
	if err := s.repo.Create(announcement); err != nil {
		return nil, fmt.Errorf("creating announcement: %w", err)
	}
	return announcement, nil
}

// GetByID retrieves an announcement
func (s *AnnouncementService) GetByID(id uuid.UUID) (*models.Announcement, error) {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("fetching announcement: %w", err)
	}
	return announcement, nil
}

// List returns a page of the feed plus the total count for pagination
func (s *AnnouncementService) List(opts AnnouncementListOptions) ([]models.Announcement, int64, error) {
	if opts.Limit <= 0 || opts.Limit > 100 || opts.Offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	var (
		announcements []models.Announcement
		total         int64
		err           error
	)
	switch {
	case opts.UserID != uuid.Nil:
		announcements, total, err = s.repo.GetByUserID(opts.UserID, opts.Limit, opts.Offset)
	case opts.Category != "":
		announcements, total, err = s.repo.GetByCategory(opts.Category, opts.Limit, opts.Offset)
	default:
		announcements, total, err = s.repo.GetAll(opts.Limit, opts.Offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("listing announcements: %w", err)
	}
	return announcements, total, nil
}

// Update replaces an announcement's content; only the author may update
func (s *AnnouncementService) Update(id, callerID uuid.UUID, req *AnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if announcement.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Category = req.Category
	announcement.ImageURL = req.ImageURL

	if err := s.repo.Update(announcement); err != nil {
		return nil, fmt.Errorf("updating announcement: %w", err)
	}
	return announcement, nil
}

// Delete removes an announcement; only the author may delete
func (s *AnnouncementService) Delete(id, callerID uuid.UUID) error {
	announcement, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if announcement.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	return nil
}

// ToggleLike likes the announcement if the user hasn't yet, otherwise
// removes their like. Returns the resulting liked state.
func (s *AnnouncementService) ToggleLike(id, userID uuid.UUID) (bool, error) {
	if _, err := s.GetByID(id); err != nil {
		return false, err
	}

	liked, err := s.repo.HasLiked(id, userID)
	if err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}
	if liked {
		if err := s.repo.RemoveLike(id, userID); err != nil {
			return false, fmt.Errorf("removing like: %w", err)
		}
		return false, nil
	}
	if err := s.repo.AddLike(id, userID); err != nil {
		return false, fmt.Errorf("adding like: %w", err)
	}
	return true, nil
}

// AddComment posts a reply on an announcement, stamping the author's display fields
func (s *AnnouncementService) AddComment(announcementID uuid.UUID, author *models.User, content string) (*models.Comment, error) {
	if content == "" {
		return nil, apperrors.NewValidationError("content", "must not be empty")
	}
	if _, err := s.GetByID(announcementID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AnnouncementID: announcementID,
		UserID:         author.ID,
		UserName:       author.Name,
		UserAvatar:     author.Avatar,
		Content:        content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return comment, nil
}

// ListComments returns an announcement's comments, oldest first
func (s *AnnouncementService) ListComments(announcementID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.GetByID(announcementID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByAnnouncementID(announcementID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment; only its author may delete
func (s *AnnouncementService) DeleteComment(commentID, callerID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("fetching comment: %w", err)
	}
	if comment.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}
