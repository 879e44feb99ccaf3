package service_test

import (
	"testing"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingBroadcaster captures broadcast calls for assertions
type recordingBroadcaster struct {
	dates    []string
	messages []*models.ChatMessage
}

func (b *recordingBroadcaster) Broadcast(conflictDate string, message *models.ChatMessage) {
	b.dates = append(b.dates, conflictDate)
	b.messages = append(b.messages, message)
}

// ChatServiceTestSuite defines the test suite for ChatService
type ChatServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockChatMessageRepositoryInterface
	broadcaster *recordingBroadcaster
	chatService *service.ChatService
}

// SetupTest sets up the test suite
func (suite *ChatServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockChatMessageRepositoryInterface(suite.ctrl)
	suite.broadcaster = &recordingBroadcaster{}
	suite.chatService = service.NewChatService(suite.mockRepo, suite.broadcaster)
}

// TearDownTest cleans up after each test
func (suite *ChatServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListMessages tests listing a conflict thread
func (suite *ChatServiceTestSuite) TestListMessages() {
	suite.T().Run("Success", func(t *testing.T) {
		stored := []models.ChatMessage{
			{ConflictDate: "2026-03-10", Message: "I can move my harvest"},
			{ConflictDate: "2026-03-10", Message: "That works for me"},
		}
		suite.mockRepo.EXPECT().GetByConflictDate("2026-03-10").Return(stored, nil)

		messages, err := suite.chatService.ListMessages("2026-03-10")

		assert.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	suite.T().Run("Unknown Date Yields Empty Thread", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByConflictDate("2026-12-25").Return([]models.ChatMessage{}, nil)

		messages, err := suite.chatService.ListMessages("2026-12-25")

		assert.NoError(t, err)
		assert.Empty(t, messages)
	})

	suite.T().Run("Malformed Date", func(t *testing.T) {
		messages, err := suite.chatService.ListMessages("10-03-2026")

		assert.Nil(t, messages)
		assert.ErrorIs(t, err, apperrors.ErrInvalidConflictDate)
	})
}

// TestSendMessage tests appending to a conflict thread
func (suite *ChatServiceTestSuite) TestSendMessage() {
	sender := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ahmad Zulkifli",
		Avatar:    "👤",
	}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(m *models.ChatMessage) error {
				m.ID = uuid.New()
				return nil
			})

		message, err := suite.chatService.SendMessage(sender, "2026-03-10", "I can shift to next week", false)

		assert.NoError(t, err)
		assert.Equal(t, sender.ID, message.UserID)
		assert.Equal(t, sender.Name, message.UserName)
		assert.Equal(t, sender.Avatar, message.UserAvatar)
		assert.False(t, message.IsResolution)

		// Live subscribers get the stored message
		if assert.Len(t, suite.broadcaster.messages, 1) {
			assert.Equal(t, "2026-03-10", suite.broadcaster.dates[0])
			assert.Equal(t, message, suite.broadcaster.messages[0])
		}
	})

	suite.T().Run("Resolution Flag", func(t *testing.T) {
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		message, err := suite.chatService.SendMessage(sender, "2026-03-10", "Agreed, splitting the week", true)

		assert.NoError(t, err)
		assert.True(t, message.IsResolution)
	})

	suite.T().Run("Empty Message", func(t *testing.T) {
		message, err := suite.chatService.SendMessage(sender, "2026-03-10", "", false)

		assert.Nil(t, message)
		assert.True(t, apperrors.IsValidation(err))
		assert.Empty(t, suite.broadcaster.messages)
	})

	suite.T().Run("Malformed Date", func(t *testing.T) {
		message, err := suite.chatService.SendMessage(sender, "tomorrow", "hello", false)

		assert.Nil(t, message)
		assert.ErrorIs(t, err, apperrors.ErrInvalidConflictDate)
	})
}

// TestNilBroadcaster ensures persistence works without live delivery
func (suite *ChatServiceTestSuite) TestNilBroadcaster() {
	svc := service.NewChatService(suite.mockRepo, nil)
	sender := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ahmad"}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	message, err := svc.SendMessage(sender, "2026-03-10", "still persisted", false)

	suite.NoError(err)
	suite.NotNil(message)
}

// TestChatServiceTestSuite runs the test suite
func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
