package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/logger"
	"agricoop-backend/internal/planner"
	"agricoop-backend/internal/repository"
)

// HarvestService handles harvest schedules and the regional planner views
// derived from them
type HarvestService struct {
	repo      repository.HarvestScheduleRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	logger    *logger.Logger
}

// NewHarvestService creates a new harvest service
func NewHarvestService(repo repository.HarvestScheduleRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate, log *logger.Logger) *HarvestService {
	return &HarvestService{repo: repo, userRepo: userRepo, validator: validator, logger: log}
}

// HarvestRequest represents the data needed to create or update a harvest schedule
type HarvestRequest struct {
	CropType         string    `json:"crop_type" validate:"max=100"`
	Variety          string    `json:"variety" validate:"max=100"`
	PlantedDate      time.Time `json:"planted_date"`
	EstimatedYield   float64   `json:"estimated_yield" validate:"gte=0"`
	HarvestStartDate time.Time `json:"harvest_start_date" validate:"required"`
	HarvestEndDate   time.Time `json:"harvest_end_date"`
	Status           string    `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	Notes            string    `json:"notes"`
}

// RegionAnalytics is the planner's full view of a region: detected
// conflicts, week-by-week totals, and group statistics. Computed fresh on
// every request.
type RegionAnalytics struct {
	Region          string                `json:"region"`
	WeeklyAverage   float64               `json:"weekly_average"`
	Conflicts       []planner.Conflict    `json:"conflicts"`
	WeeklyYields    []planner.WeeklyYield `json:"weekly_yields"`
	ScheduleCount   int                   `json:"schedule_count"`
	FarmerCount     int                   `json:"farmer_count"`
	TotalYield      float64               `json:"total_yield"`
	YieldByFarmer   []FarmerYield         `json:"yield_by_farmer"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// FarmerYield is one farmer's total projected yield within a region
type FarmerYield struct {
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name"`
	TotalYield float64   `json:"total_yield"`
	Schedules  int       `json:"schedules"`
}

// GroupMember is a cooperative member in a region, with their planned
// harvest activity summarized
type GroupMember struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Phone      string    `json:"phone"`
	Schedules  int       `json:"schedules"`
	TotalYield float64   `json:"total_yield"`
}

// Create records a new harvest schedule, stamping the owner's display
// fields and region
func (s *HarvestService) Create(owner *models.User, req *HarvestRequest) (*models.HarvestSchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.HarvestStatusActive
	if req.Status != "" {
		status = models.HarvestStatus(req.Status)
	}

	schedule := &models.HarvestSchedule{
		UserID:           owner.ID,
		UserName:         owner.Name,
		UserAvatar:       owner.Avatar,
		CropType:         req.CropType,
		Variety:          req.Variety,
		PlantedDate:      req.PlantedDate,
		EstimatedYield:   req.EstimatedYield,
		HarvestStartDate: req.HarvestStartDate,
		HarvestEndDate:   req.HarvestEndDate,
		Region:           owner.Region,
		Status:           status,
		Notes:            req.Notes,
	}
	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("creating harvest schedule: %w", err)
	}
	return schedule, nil
}

// GetByID retrieves a harvest schedule
func (s *HarvestService) GetByID(id uuid.UUID) (*models.HarvestSchedule, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHarvestNotFound
		}
		return nil, fmt.Errorf("fetching harvest schedule: %w", err)
	}
	return schedule, nil
}

// MyTimeline returns the caller's active schedules in their region, ordered
// by harvest start date
func (s *HarvestService) MyTimeline(ownerID uuid.UUID, region string) ([]models.HarvestSchedule, error) {
	schedules, err := s.repo.GetActiveByUser(ownerID, region)
	if err != nil {
		return nil, fmt.Errorf("listing harvest schedules: %w", err)
	}
	return schedules, nil
}

// Update replaces a schedule's fields; only the owner may update. The
// region stays pinned to the owner's region.
func (s *HarvestService) Update(id, callerID uuid.UUID, req *HarvestRequest) (*models.HarvestSchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	schedule, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	schedule.CropType = req.CropType
	schedule.Variety = req.Variety
	schedule.PlantedDate = req.PlantedDate
	schedule.EstimatedYield = req.EstimatedYield
	schedule.HarvestStartDate = req.HarvestStartDate
	schedule.HarvestEndDate = req.HarvestEndDate
	schedule.Notes = req.Notes
	if req.Status != "" {
		schedule.Status = models.HarvestStatus(req.Status)
	}

	if err := s.repo.Update(schedule); err != nil {
		return nil, fmt.Errorf("updating harvest schedule: %w", err)
	}
	return schedule, nil
}

// Delete removes a schedule; only the owner may delete
func (s *HarvestService) Delete(id, callerID uuid.UUID) error {
	schedule, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if schedule.UserID != callerID {
		return apperrors.ErrNotOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting harvest schedule: %w", err)
	}
	return nil
}

// RegionAnalytics computes the planner view for a region from its active
// schedules: conflicts, weekly totals, and per-farmer aggregates
func (s *HarvestService) RegionAnalytics(region string, now time.Time) (*RegionAnalytics, error) {
	if region == "" {
		return nil, apperrors.NewValidationError("region", "must not be empty")
	}

	schedules, err := s.repo.GetActiveByRegion(region)
	if err != nil {
		return nil, fmt.Errorf("loading region schedules: %w", err)
	}

	valid, dropped := planner.FilterValid(schedules)
	if dropped > 0 {
		s.logger.WithFields(map[string]interface{}{
			"region":  region,
			"dropped": dropped,
		}).Warn("skipped malformed harvest schedules")
	}

	var total float64
	for _, sched := range valid {
		total += sched.EstimatedYield
	}

	return &RegionAnalytics{
		Region:        region,
		WeeklyAverage: planner.RegionalWeeklyAverage(region),
		Conflicts:     planner.DetectConflicts(valid, region, now),
		WeeklyYields:  planner.WeeklyYields(valid, region),
		ScheduleCount: len(valid),
		FarmerCount:   countFarmers(valid),
		TotalYield:    total,
		YieldByFarmer: yieldByFarmer(valid),
		GeneratedAt:   now,
	}, nil
}

// GroupMembers lists the cooperative members of a region with their planned
// harvest activity
func (s *HarvestService) GroupMembers(region string) ([]GroupMember, error) {
	if region == "" {
		return nil, apperrors.NewValidationError("region", "must not be empty")
	}

	users, err := s.userRepo.GetByRegion(region)
	if err != nil {
		return nil, fmt.Errorf("loading region members: %w", err)
	}
	schedules, err := s.repo.GetActiveByRegion(region)
	if err != nil {
		return nil, fmt.Errorf("loading region schedules: %w", err)
	}

	type activity struct {
		count int
		yield float64
	}
	byUser := make(map[uuid.UUID]activity, len(users))
	for _, sched := range schedules {
		a := byUser[sched.UserID]
		a.count++
		a.yield += sched.EstimatedYield
		byUser[sched.UserID] = a
	}

	members := make([]GroupMember, 0, len(users))
	for _, u := range users {
		a := byUser[u.ID]
		members = append(members, GroupMember{
			UserID:     u.ID,
			Name:       u.Name,
			Avatar:     u.Avatar,
			Phone:      u.Phone,
			Schedules:  a.count,
			TotalYield: a.yield,
		})
	}
	return members, nil
}

func countFarmers(schedules []models.HarvestSchedule) int {
	seen := make(map[uuid.UUID]struct{}, len(schedules))
	for _, s := range schedules {
		seen[s.UserID] = struct{}{}
	}
	return len(seen)
}

// yieldByFarmer totals projected yield per owner, sorted by yield
// descending with owner id as a deterministic tiebreak
func yieldByFarmer(schedules []models.HarvestSchedule) []FarmerYield {
	byUser := make(map[uuid.UUID]*FarmerYield, len(schedules))
	order := make([]uuid.UUID, 0, len(schedules))
	for _, s := range schedules {
		fy, ok := byUser[s.UserID]
		if !ok {
			fy = &FarmerYield{UserID: s.UserID, UserName: s.UserName}
			byUser[s.UserID] = fy
			order = append(order, s.UserID)
		}
		fy.TotalYield += s.EstimatedYield
		fy.Schedules++
	}

	result := make([]FarmerYield, 0, len(order))
	for _, id := range order {
		result = append(result, *byUser[id])
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalYield != result[j].TotalYield {
			return result[i].TotalYield > result[j].TotalYield
		}
		return result[i].UserID.String() < result[j].UserID.String()
	})
	return result
}
