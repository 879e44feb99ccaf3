package service_test

import (
	"bytes"
	"testing"
	"time"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/planner"
	"agricoop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockHarvest   *mocks.MockHarvestServiceInterface
	reportService *service.ReportService
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHarvest = mocks.NewMockHarvestServiceInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockHarvest)
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestExportRegionReport tests building the region workbook
func (suite *ReportServiceTestSuite) TestExportRegionReport() {
	suite.T().Run("Success", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		conflictStart := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
		farmerA := uuid.New()
		farmerB := uuid.New()

		analytics := &service.RegionAnalytics{
			Region:        "Perlis, Perlis",
			WeeklyAverage: 57.34,
			WeeklyYields: []planner.WeeklyYield{
				{
					WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
					WeekEnd:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
					TotalYield:  70.0,
					RiskLevel:   planner.RiskHigh,
					FarmerCount: 2,
				},
			},
			Conflicts: []planner.Conflict{
				{
					Date:            time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
					TotalYield:      70.0,
					RiskLevel:       planner.RiskHigh,
					FarmersAffected: []string{farmerA.String(), farmerB.String()},
					Schedules: []models.HarvestSchedule{
						{UserID: farmerA, EstimatedYield: 40.0, HarvestStartDate: conflictStart},
						{UserID: farmerB, EstimatedYield: 30.0, HarvestStartDate: conflictStart},
					},
				},
			},
			GeneratedAt: now,
		}
		suite.mockHarvest.EXPECT().RegionAnalytics("Perlis, Perlis", now).Return(analytics, nil)

		data, err := suite.reportService.ExportRegionReport("Perlis, Perlis", now)
		suite.NoError(err)
		suite.NotEmpty(data)

		workbook, err := excelize.OpenReader(bytes.NewReader(data))
		suite.NoError(err)
		defer workbook.Close()

		weekStart, err := workbook.GetCellValue("Weekly Yields", "A2")
		suite.NoError(err)
		suite.Equal("2026-03-02", weekStart)

		risk, err := workbook.GetCellValue("Weekly Yields", "E2")
		suite.NoError(err)
		suite.Equal("high", risk)

		conflictDate, err := workbook.GetCellValue("Conflicts", "A2")
		suite.NoError(err)
		suite.Equal("2026-03-05", conflictDate)

		scheduleCount, err := workbook.GetCellValue("Conflicts", "E2")
		suite.NoError(err)
		suite.Equal("2", scheduleCount)

		// Three whole days from the morning of Mar 2 to the morning of Mar 5
		daysUntil, err := workbook.GetCellValue("Conflicts", "F2")
		suite.NoError(err)
		suite.Equal("3", daysUntil)
	})

	suite.T().Run("Analytics Error Propagates", func(t *testing.T) {
		now := time.Now()
		suite.mockHarvest.EXPECT().RegionAnalytics("", now).
			Return(nil, apperrors.NewValidationError("region", "must not be empty"))

		data, err := suite.reportService.ExportRegionReport("", now)
		suite.Nil(data)
		suite.Error(err)
		suite.True(apperrors.IsValidation(err))
	})
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
