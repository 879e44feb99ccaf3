package service

import (
	"fmt"
	"strings"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/repository"
)

// searchResultLimit caps each result group of a search
const searchResultLimit = 20

// SearchService runs the global search across people, farms, businesses
// and announcements
type SearchService struct {
	userRepo         repository.UserRepositoryInterface
	farmRepo         repository.FarmRepositoryInterface
	businessRepo     repository.BusinessRepositoryInterface
	announcementRepo repository.AnnouncementRepositoryInterface
}

// NewSearchService creates a new search service
func NewSearchService(
	userRepo repository.UserRepositoryInterface,
	farmRepo repository.FarmRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	announcementRepo repository.AnnouncementRepositoryInterface,
) *SearchService {
	return &SearchService{
		userRepo:         userRepo,
		farmRepo:         farmRepo,
		businessRepo:     businessRepo,
		announcementRepo: announcementRepo,
	}
}

// GroupedSearchResults holds search matches grouped by entity kind
type GroupedSearchResults struct {
	People        []models.User         `json:"people"`
	Farms         []models.Farm         `json:"farms"`
	Businesses    []models.Business     `json:"businesses"`
	Announcements []models.Announcement `json:"announcements"`
}

// Search matches the query, case-insensitively, against member names and
// regions, farm names and locations, business names, and announcement
// titles and content. Each group is capped independently.
func (s *SearchService) Search(query string) (*GroupedSearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "must not be empty")
	}

	people, err := s.userRepo.Search(query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}
	farms, err := s.farmRepo.Search(query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching farms: %w", err)
	}
	businesses, err := s.businessRepo.Search(query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching businesses: %w", err)
	}
	announcements, err := s.announcementRepo.Search(query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching announcements: %w", err)
	}

	return &GroupedSearchResults{
		People:        people,
		Farms:         farms,
		Businesses:    businesses,
		Announcements: announcements,
	}, nil
}
