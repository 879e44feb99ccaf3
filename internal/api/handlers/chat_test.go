package handlers_test

import (
	"net/http"
	"testing"

	"agricoop-backend/internal/api/handlers"
	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/logger"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ChatHandlerTestSuite defines the test suite for ChatHandler
type ChatHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockChatService *mocks.MockChatServiceInterface
	mockUserService *mocks.MockUserServiceInterface
	handler         *handlers.ChatHandler
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ChatHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChatService = mocks.NewMockChatServiceInterface(suite.ctrl)
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	hub := handlers.NewChatHub(logger.New())
	suite.handler = handlers.NewChatHandler(suite.mockChatService, suite.mockUserService, hub)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.userID = uuid.New()

	// Stand in for the JWT middleware
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
		c.Next()
	})

	conflicts := suite.httpSuite.Router.Group("/api/v1/conflicts")
	{
		conflicts.GET("/:date/messages", suite.handler.ListMessages)
		conflicts.POST("/:date/messages", suite.handler.SendMessage)
	}
}

// TearDownTest cleans up after each test
func (suite *ChatHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListMessages tests the ListMessages handler
func (suite *ChatHandlerTestSuite) TestListMessages() {
	suite.T().Run("Success", func(t *testing.T) {
		messages := []models.ChatMessage{
			{ConflictDate: "2026-03-10", Message: "I can move my harvest"},
		}
		suite.mockChatService.EXPECT().ListMessages("2026-03-10").Return(messages, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/conflicts/2026-03-10/messages", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []models.ChatMessage
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Malformed Date", func(t *testing.T) {
		suite.mockChatService.EXPECT().
			ListMessages("10-03-2026").
			Return(nil, apperrors.ErrInvalidConflictDate)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/conflicts/10-03-2026/messages", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestSendMessage tests the SendMessage handler
func (suite *ChatHandlerTestSuite) TestSendMessage() {
	suite.T().Run("Success", func(t *testing.T) {
		sender := &models.User{
			BaseModel: models.BaseModel{ID: suite.userID},
			Name:      "Ahmad Zulkifli",
		}
		stored := &models.ChatMessage{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			ConflictDate: "2026-03-10",
			UserID:       suite.userID,
			Message:      "I can shift to next week",
		}

		suite.mockUserService.EXPECT().GetByID(suite.userID).Return(sender, nil)
		suite.mockChatService.EXPECT().
			SendMessage(sender, "2026-03-10", "I can shift to next week", false).
			Return(stored, nil)

		requestBody := map[string]interface{}{"message": "I can shift to next week"}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/conflicts/2026-03-10/messages", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.ChatMessage
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, stored.ID, response.ID)
	})

	suite.T().Run("Resolution Message", func(t *testing.T) {
		sender := &models.User{BaseModel: models.BaseModel{ID: suite.userID}}
		suite.mockUserService.EXPECT().GetByID(suite.userID).Return(sender, nil)
		suite.mockChatService.EXPECT().
			SendMessage(sender, "2026-03-10", "Agreed, splitting the week", true).
			Return(&models.ChatMessage{IsResolution: true}, nil)

		requestBody := map[string]interface{}{
			"message":       "Agreed, splitting the week",
			"is_resolution": true,
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/conflicts/2026-03-10/messages", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Missing Message Field", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/conflicts/2026-03-10/messages", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestChatHandlerTestSuite runs the test suite
func TestChatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
