package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"agricoop-backend/internal/api/handlers"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/planner"
	"agricoop-backend/internal/service"
	"agricoop-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlannerHandlerTestSuite defines the test suite for PlannerHandler
type PlannerHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockService       *mocks.MockHarvestServiceInterface
	mockReportService *mocks.MockReportServiceInterface
	handler           *handlers.PlannerHandler
	httpSuite         *testutils.HTTPTestSuite
	region            string
}

// SetupTest sets up the test suite
func (suite *PlannerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHarvestServiceInterface(suite.ctrl)
	suite.mockReportService = mocks.NewMockReportServiceInterface(suite.ctrl)

	suite.handler = handlers.NewPlannerHandler(suite.mockService, suite.mockReportService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.region = "Perlis, Perlis"

	// Stand in for the JWT middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("region", suite.region)
		c.Next()
	})

	plannerGroup := suite.httpSuite.Router.Group("/api/v1/planner")
	{
		plannerGroup.GET("/analytics", suite.handler.Analytics)
		plannerGroup.GET("/group", suite.handler.Group)
		plannerGroup.GET("/report/export", suite.handler.ExportReport)
	}
}

// TearDownTest cleans up after each test
func (suite *PlannerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAnalytics tests the Analytics handler
func (suite *PlannerHandlerTestSuite) TestAnalytics() {
	suite.T().Run("Defaults To Caller Region", func(t *testing.T) {
		analytics := &service.RegionAnalytics{
			Region:        suite.region,
			WeeklyAverage: 57.34,
			Conflicts: []planner.Conflict{
				{
					Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					TotalYield: 70,
					RiskLevel:  planner.RiskHigh,
				},
			},
		}

		suite.mockService.EXPECT().
			RegionAnalytics(suite.region, gomock.Any()).
			Return(analytics, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/planner/analytics", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.RegionAnalytics
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, suite.region, response.Region)
		assert.Len(t, response.Conflicts, 1)
		assert.Equal(t, planner.RiskHigh, response.Conflicts[0].RiskLevel)
	})

	suite.T().Run("Explicit Region Query Wins", func(t *testing.T) {
		suite.mockService.EXPECT().
			RegionAnalytics("Kluang, Johor", gomock.Any()).
			Return(&service.RegionAnalytics{Region: "Kluang, Johor"}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/planner/analytics?region=Kluang%2C+Johor", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			RegionAnalytics(suite.region, gomock.Any()).
			Return(nil, apperrors.NewValidationError("region", "must not be empty"))

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/planner/analytics", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGroup tests the Group handler
func (suite *PlannerHandlerTestSuite) TestGroup() {
	members := []service.GroupMember{
		{UserID: uuid.New(), Name: "Ahmad", Schedules: 2, TotalYield: 20},
		{UserID: uuid.New(), Name: "Siti"},
	}

	suite.mockService.EXPECT().GroupMembers(suite.region).Return(members, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/planner/group", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var response []service.GroupMember
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Len(response, 2)
	suite.Equal("Ahmad", response[0].Name)
}

// TestExportReport tests the ExportReport handler
func (suite *PlannerHandlerTestSuite) TestExportReport() {
	workbook := []byte{0x50, 0x4b, 0x03, 0x04} // zip magic, xlsx container

	suite.mockReportService.EXPECT().
		ExportRegionReport(suite.region, gomock.Any()).
		Return(workbook, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/planner/report/export", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		recorder.Header().Get("Content-Type"),
	)
	suite.Contains(recorder.Header().Get("Content-Disposition"), "harvest-report-")
	suite.Equal(workbook, recorder.Body.Bytes())
}

// TestPlannerHandlerTestSuite runs the test suite
func TestPlannerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlannerHandlerTestSuite))
}
