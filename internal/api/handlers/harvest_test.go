package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"agricoop-backend/internal/api/handlers"
	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/service"
	"agricoop-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HarvestHandlerTestSuite defines the test suite for HarvestHandler
type HarvestHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockService     *mocks.MockHarvestServiceInterface
	mockUserService *mocks.MockUserServiceInterface
	handler         *handlers.HarvestHandler
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
	region          string
}

// SetupTest sets up the test suite
func (suite *HarvestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHarvestServiceInterface(suite.ctrl)
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	suite.handler = handlers.NewHarvestHandler(suite.mockService, suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.userID = uuid.New()
	suite.region = "Perlis, Perlis"

	// Stand in for the JWT middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
		c.Set("region", suite.region)
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	harvests := v1.Group("/harvests")
	{
		harvests.GET("", suite.handler.List)
		harvests.POST("", suite.handler.Create)
		harvests.GET("/:id", suite.handler.GetByID)
		harvests.PUT("/:id", suite.handler.Update)
		harvests.DELETE("/:id", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *HarvestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create handler
func (suite *HarvestHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		owner := &models.User{
			BaseModel: models.BaseModel{ID: suite.userID},
			Name:      "Ahmad Zulkifli",
			Region:    suite.region,
		}
		start := time.Now().AddDate(0, 0, 14).UTC().Truncate(time.Second)

		requestBody := map[string]interface{}{
			"crop_type":          "Pineapple",
			"variety":            "MD2",
			"estimated_yield":    12.5,
			"harvest_start_date": start.Format(time.RFC3339),
		}

		created := &models.HarvestSchedule{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			UserID:           suite.userID,
			CropType:         "Pineapple",
			EstimatedYield:   12.5,
			HarvestStartDate: start,
			Region:           suite.region,
			Status:           models.HarvestStatusActive,
		}

		suite.mockUserService.EXPECT().GetByID(suite.userID).Return(owner, nil)
		suite.mockService.EXPECT().
			Create(owner, gomock.Any()).
			Return(created, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/harvests", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.HarvestSchedule
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, models.HarvestStatusActive, response.Status)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/harvests", "not-an-object", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestList tests the List handler
func (suite *HarvestHandlerTestSuite) TestList() {
	schedules := []models.HarvestSchedule{
		{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: suite.userID, Region: suite.region},
	}

	suite.mockService.EXPECT().
		MyTimeline(suite.userID, suite.region).
		Return(schedules, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/harvests", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var response []models.HarvestSchedule
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Len(response, 1)
}

// TestGetByID tests the GetByID handler
func (suite *HarvestHandlerTestSuite) TestGetByID() {
	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrHarvestNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/harvests/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "harvest schedule not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/harvests/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid id")
	})
}

// TestUpdate tests the Update handler
func (suite *HarvestHandlerTestSuite) TestUpdate() {
	suite.T().Run("Not Owner", func(t *testing.T) {
		id := uuid.New()
		requestBody := map[string]interface{}{
			"harvest_start_date": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
		}

		suite.mockService.EXPECT().
			Update(id, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNotOwner)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/harvests/"+id.String(), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		requestBody := map[string]interface{}{
			"estimated_yield":    20.0,
			"harvest_start_date": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
			"status":             "completed",
		}

		updated := &models.HarvestSchedule{
			BaseModel: models.BaseModel{ID: id},
			UserID:    suite.userID,
			Status:    models.HarvestStatusCompleted,
		}

		suite.mockService.EXPECT().
			Update(id, suite.userID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, _ uuid.UUID, req *service.HarvestRequest) (*models.HarvestSchedule, error) {
				assert.Equal(t, 20.0, req.EstimatedYield)
				assert.Equal(t, "completed", req.Status)
				return updated, nil
			})

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/harvests/"+id.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestDelete tests the Delete handler
func (suite *HarvestHandlerTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id, suite.userID).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/harvests/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestHarvestHandlerTestSuite runs the test suite
func TestHarvestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HarvestHandlerTestSuite))
}
