package service_test

import (
	"testing"
	"time"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/logger"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/planner"
	"agricoop-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// HarvestServiceTestSuite defines the test suite for HarvestService
type HarvestServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockHarvestScheduleRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	harvestService *service.HarvestService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *HarvestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockHarvestScheduleRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.harvestService = service.NewHarvestService(
		suite.mockRepo,
		suite.mockUserRepo,
		suite.validator,
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *HarvestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testOwner(region string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ahmad Zulkifli",
		Avatar:    "👤",
		Region:    region,
	}
}

func testSchedule(ownerID uuid.UUID, region string, start time.Time, yield float64) models.HarvestSchedule {
	return models.HarvestSchedule{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		UserID:           ownerID,
		UserName:         "Farmer",
		CropType:         "Pineapple",
		Variety:          "MD2",
		EstimatedYield:   yield,
		HarvestStartDate: start,
		HarvestEndDate:   start.AddDate(0, 0, 7),
		Region:           region,
		Status:           models.HarvestStatusActive,
	}
}

// TestCreate tests creating harvest schedules
func (suite *HarvestServiceTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		owner := testOwner("Perlis, Perlis")
		req := &service.HarvestRequest{
			CropType:         "Pineapple",
			Variety:          "MD2",
			EstimatedYield:   12.5,
			HarvestStartDate: time.Now().AddDate(0, 0, 14),
			HarvestEndDate:   time.Now().AddDate(0, 0, 21),
		}

		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(s *models.HarvestSchedule) error {
				s.ID = uuid.New()
				return nil
			})

		schedule, err := suite.harvestService.Create(owner, req)

		assert.NoError(t, err)
		assert.Equal(t, owner.ID, schedule.UserID)
		assert.Equal(t, owner.Name, schedule.UserName)
		assert.Equal(t, owner.Avatar, schedule.UserAvatar)
		assert.Equal(t, owner.Region, schedule.Region)
		assert.Equal(t, models.HarvestStatusActive, schedule.Status)
	})

	suite.T().Run("Invalid Status", func(t *testing.T) {
		owner := testOwner("Perlis, Perlis")
		req := &service.HarvestRequest{
			HarvestStartDate: time.Now().AddDate(0, 0, 14),
			Status:           "paused",
		}

		schedule, err := suite.harvestService.Create(owner, req)

		assert.Error(t, err)
		assert.Nil(t, schedule)
		assert.Contains(t, err.Error(), "Status")
	})

	suite.T().Run("Negative Yield", func(t *testing.T) {
		owner := testOwner("Perlis, Perlis")
		req := &service.HarvestRequest{
			HarvestStartDate: time.Now().AddDate(0, 0, 14),
			EstimatedYield:   -1,
		}

		schedule, err := suite.harvestService.Create(owner, req)

		assert.Error(t, err)
		assert.Nil(t, schedule)
	})
}

// TestGetByID tests retrieving a harvest schedule
func (suite *HarvestServiceTestSuite) TestGetByID() {
	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		schedule, err := suite.harvestService.GetByID(id)

		assert.Nil(t, schedule)
		assert.ErrorIs(t, err, apperrors.ErrHarvestNotFound)
	})
}

// TestUpdate tests ownership enforcement on updates
func (suite *HarvestServiceTestSuite) TestUpdate() {
	suite.T().Run("Not Owner", func(t *testing.T) {
		ownerID := uuid.New()
		existing := testSchedule(ownerID, "Perlis, Perlis", time.Now().AddDate(0, 0, 7), 10)
		suite.mockRepo.EXPECT().GetByID(existing.ID).Return(&existing, nil)

		req := &service.HarvestRequest{HarvestStartDate: existing.HarvestStartDate}
		updated, err := suite.harvestService.Update(existing.ID, uuid.New(), req)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	suite.T().Run("Success", func(t *testing.T) {
		ownerID := uuid.New()
		existing := testSchedule(ownerID, "Perlis, Perlis", time.Now().AddDate(0, 0, 7), 10)
		suite.mockRepo.EXPECT().GetByID(existing.ID).Return(&existing, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		req := &service.HarvestRequest{
			CropType:         "Pineapple",
			EstimatedYield:   20,
			HarvestStartDate: existing.HarvestStartDate,
			Status:           "completed",
		}
		updated, err := suite.harvestService.Update(existing.ID, ownerID, req)

		assert.NoError(t, err)
		assert.Equal(t, 20.0, updated.EstimatedYield)
		assert.Equal(t, models.HarvestStatusCompleted, updated.Status)
		// The region stays pinned to the owner's region
		assert.Equal(t, "Perlis, Perlis", updated.Region)
	})
}

// TestDelete tests ownership enforcement on deletes
func (suite *HarvestServiceTestSuite) TestDelete() {
	suite.T().Run("Not Owner", func(t *testing.T) {
		existing := testSchedule(uuid.New(), "Perlis, Perlis", time.Now().AddDate(0, 0, 7), 10)
		suite.mockRepo.EXPECT().GetByID(existing.ID).Return(&existing, nil)

		err := suite.harvestService.Delete(existing.ID, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	suite.T().Run("Success", func(t *testing.T) {
		ownerID := uuid.New()
		existing := testSchedule(ownerID, "Perlis, Perlis", time.Now().AddDate(0, 0, 7), 10)
		suite.mockRepo.EXPECT().GetByID(existing.ID).Return(&existing, nil)
		suite.mockRepo.EXPECT().Delete(existing.ID).Return(nil)

		err := suite.harvestService.Delete(existing.ID, ownerID)

		assert.NoError(t, err)
	})
}

// TestRegionAnalytics tests the full planner computation over a region
func (suite *HarvestServiceTestSuite) TestRegionAnalytics() {
	const region = "Perlis, Perlis" // weekly average 57.34 tonnes

	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	conflictDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	soloDay := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	pastDay := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	farmerA := uuid.New()
	farmerB := uuid.New()
	farmerC := uuid.New()

	schedules := []models.HarvestSchedule{
		testSchedule(farmerA, region, conflictDay, 40),
		testSchedule(farmerB, region, conflictDay, 30),
		// One farmer alone never produces a conflict, however large the yield
		testSchedule(farmerC, region, soloDay, 100),
		// Already started: excluded from conflicts but still counted weekly
		testSchedule(farmerA, region, pastDay, 10),
		// Malformed row, dropped before aggregation
		testSchedule(farmerB, "", conflictDay, 999),
	}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetActiveByRegion(region).Return(schedules, nil)

		analytics, err := suite.harvestService.RegionAnalytics(region, now)

		assert.NoError(t, err)
		assert.Equal(t, region, analytics.Region)
		assert.Equal(t, 57.34, analytics.WeeklyAverage)
		assert.Equal(t, 4, analytics.ScheduleCount)
		assert.Equal(t, 3, analytics.FarmerCount)
		assert.Equal(t, 180.0, analytics.TotalYield)
		assert.Equal(t, now, analytics.GeneratedAt)

		// Only the shared date exceeds the average with multiple farmers
		if assert.Len(t, analytics.Conflicts, 1) {
			conflict := analytics.Conflicts[0]
			assert.Equal(t, conflictDay, conflict.Date)
			assert.Equal(t, 70.0, conflict.TotalYield)
			assert.Equal(t, planner.RiskHigh, conflict.RiskLevel)
			assert.ElementsMatch(t, []string{farmerA.String(), farmerB.String()}, conflict.FarmersAffected)
		}

		// Weekly totals include the past week, sorted ascending
		if assert.Len(t, analytics.WeeklyYields, 2) {
			assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), analytics.WeeklyYields[0].WeekStart)
			assert.Equal(t, 10.0, analytics.WeeklyYields[0].TotalYield)
			assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), analytics.WeeklyYields[1].WeekStart)
			assert.Equal(t, 170.0, analytics.WeeklyYields[1].TotalYield)
			assert.Equal(t, planner.RiskHigh, analytics.WeeklyYields[1].RiskLevel)
			assert.Equal(t, 3, analytics.WeeklyYields[1].FarmerCount)
		}

		// Per-farmer totals sorted by yield descending
		if assert.Len(t, analytics.YieldByFarmer, 3) {
			assert.Equal(t, farmerC, analytics.YieldByFarmer[0].UserID)
			assert.Equal(t, 100.0, analytics.YieldByFarmer[0].TotalYield)
			assert.Equal(t, farmerA, analytics.YieldByFarmer[1].UserID)
			assert.Equal(t, 50.0, analytics.YieldByFarmer[1].TotalYield)
			assert.Equal(t, 2, analytics.YieldByFarmer[1].Schedules)
			assert.Equal(t, farmerB, analytics.YieldByFarmer[2].UserID)
			assert.Equal(t, 30.0, analytics.YieldByFarmer[2].TotalYield)
		}
	})

	suite.T().Run("Empty Region", func(t *testing.T) {
		analytics, err := suite.harvestService.RegionAnalytics("", now)

		assert.Nil(t, analytics)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("No Schedules", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetActiveByRegion(region).Return(nil, nil)

		analytics, err := suite.harvestService.RegionAnalytics(region, now)

		assert.NoError(t, err)
		assert.Empty(t, analytics.Conflicts)
		assert.Empty(t, analytics.WeeklyYields)
		assert.Zero(t, analytics.TotalYield)
	})
}

// TestGroupMembers tests member listing with harvest activity
func (suite *HarvestServiceTestSuite) TestGroupMembers() {
	const region = "Perlis, Perlis"

	suite.T().Run("Success", func(t *testing.T) {
		active := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ahmad", Region: region}
		idle := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Siti", Region: region}

		start := time.Now().AddDate(0, 0, 7)
		suite.mockUserRepo.EXPECT().GetByRegion(region).Return([]models.User{active, idle}, nil)
		suite.mockRepo.EXPECT().GetActiveByRegion(region).Return([]models.HarvestSchedule{
			testSchedule(active.ID, region, start, 12),
			testSchedule(active.ID, region, start.AddDate(0, 0, 7), 8),
		}, nil)

		members, err := suite.harvestService.GroupMembers(region)

		assert.NoError(t, err)
		if assert.Len(t, members, 2) {
			assert.Equal(t, active.ID, members[0].UserID)
			assert.Equal(t, 2, members[0].Schedules)
			assert.Equal(t, 20.0, members[0].TotalYield)
			assert.Equal(t, idle.ID, members[1].UserID)
			assert.Zero(t, members[1].Schedules)
			assert.Zero(t, members[1].TotalYield)
		}
	})

	suite.T().Run("Empty Region", func(t *testing.T) {
		members, err := suite.harvestService.GroupMembers("")

		assert.Nil(t, members)
		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestHarvestServiceTestSuite runs the test suite
func TestHarvestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HarvestServiceTestSuite))
}
