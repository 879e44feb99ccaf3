package service_test

import (
	"testing"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/mocks"
	"agricoop-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnnouncementServiceTestSuite defines the test suite for AnnouncementService
type AnnouncementServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockAnnouncementRepositoryInterface
	mockCommentRepo     *mocks.MockCommentRepositoryInterface
	announcementService *service.AnnouncementService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AnnouncementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAnnouncementRepositoryInterface(suite.ctrl)
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.announcementService = service.NewAnnouncementService(
		suite.mockRepo,
		suite.mockCommentRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *AnnouncementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testAuthor() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ahmad Zulkifli",
		Avatar:    "👤",
	}
}

// TestCreate tests posting announcements
func (suite *AnnouncementServiceTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		author := testAuthor()
		req := &service.AnnouncementRequest{
			Title:    "Subsidy application window open",
			Content:  "The fertilizer subsidy application closes at the end of the month.",
			Category: "News",
		}

		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(a *models.Announcement) error {
				a.ID = uuid.New()
				return nil
			})

		announcement, err := suite.announcementService.Create(author, req)

		assert.NoError(t, err)
		assert.Equal(t, author.ID, announcement.UserID)
		assert.Equal(t, author.Name, announcement.UserName)
		assert.Equal(t, req.Title, announcement.Title)
	})

	suite.T().Run("Missing Title", func(t *testing.T) {
		req := &service.AnnouncementRequest{Content: "body"}

		announcement, err := suite.announcementService.Create(testAuthor(), req)

		assert.Error(t, err)
		assert.Nil(t, announcement)
		assert.Contains(t, err.Error(), "Title")
	})

	suite.T().Run("Invalid Image URL", func(t *testing.T) {
		req := &service.AnnouncementRequest{
			Title:    "Title",
			Content:  "body",
			ImageURL: "not-a-url",
		}

		announcement, err := suite.announcementService.Create(testAuthor(), req)

		assert.Error(t, err)
		assert.Nil(t, announcement)
	})
}

// TestList tests feed listing and pagination guards
func (suite *AnnouncementServiceTestSuite) TestList() {
	suite.T().Run("Whole Feed", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetAll(20, 0).
			Return([]models.Announcement{{Title: "first"}}, int64(1), nil)

		announcements, total, err := suite.announcementService.List(service.AnnouncementListOptions{Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, announcements, 1)
		assert.Equal(t, int64(1), total)
	})

	suite.T().Run("By Category", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByCategory("News", 10, 0).
			Return([]models.Announcement{}, int64(0), nil)

		_, _, err := suite.announcementService.List(service.AnnouncementListOptions{Category: "News", Limit: 10})

		assert.NoError(t, err)
	})

	suite.T().Run("By Author", func(t *testing.T) {
		userID := uuid.New()
		suite.mockRepo.EXPECT().
			GetByUserID(userID, 10, 5).
			Return([]models.Announcement{}, int64(0), nil)

		_, _, err := suite.announcementService.List(service.AnnouncementListOptions{UserID: userID, Limit: 10, Offset: 5})

		assert.NoError(t, err)
	})

	suite.T().Run("Invalid Pagination", func(t *testing.T) {
		for _, opts := range []service.AnnouncementListOptions{
			{Limit: 0},
			{Limit: 101},
			{Limit: 10, Offset: -1},
		} {
			_, _, err := suite.announcementService.List(opts)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams)
		}
	})
}

// TestToggleLike tests the like toggle semantics
func (suite *AnnouncementServiceTestSuite) TestToggleLike() {
	announcementID := uuid.New()
	userID := uuid.New()
	existing := &models.Announcement{BaseModel: models.BaseModel{ID: announcementID}}

	suite.T().Run("Like", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(existing, nil)
		suite.mockRepo.EXPECT().HasLiked(announcementID, userID).Return(false, nil)
		suite.mockRepo.EXPECT().AddLike(announcementID, userID).Return(nil)

		liked, err := suite.announcementService.ToggleLike(announcementID, userID)

		assert.NoError(t, err)
		assert.True(t, liked)
	})

	suite.T().Run("Unlike", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(existing, nil)
		suite.mockRepo.EXPECT().HasLiked(announcementID, userID).Return(true, nil)
		suite.mockRepo.EXPECT().RemoveLike(announcementID, userID).Return(nil)

		liked, err := suite.announcementService.ToggleLike(announcementID, userID)

		assert.NoError(t, err)
		assert.False(t, liked)
	})

	suite.T().Run("Announcement Not Found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.announcementService.ToggleLike(announcementID, userID)

		assert.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
	})
}

// TestComments tests the comment thread operations
func (suite *AnnouncementServiceTestSuite) TestComments() {
	announcementID := uuid.New()
	existing := &models.Announcement{BaseModel: models.BaseModel{ID: announcementID}}

	suite.T().Run("Add Comment", func(t *testing.T) {
		author := testAuthor()
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(existing, nil)
		suite.mockCommentRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(c *models.Comment) error {
				c.ID = uuid.New()
				return nil
			})

		comment, err := suite.announcementService.AddComment(announcementID, author, "Thanks for the heads up")

		assert.NoError(t, err)
		assert.Equal(t, announcementID, comment.AnnouncementID)
		assert.Equal(t, author.ID, comment.UserID)
		assert.Equal(t, author.Name, comment.UserName)
	})

	suite.T().Run("Empty Content", func(t *testing.T) {
		comment, err := suite.announcementService.AddComment(announcementID, testAuthor(), "")

		assert.Nil(t, comment)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Delete Comment Not Author", func(t *testing.T) {
		commentID := uuid.New()
		suite.mockCommentRepo.EXPECT().
			GetByID(commentID).
			Return(&models.Comment{BaseModel: models.BaseModel{ID: commentID}, UserID: uuid.New()}, nil)

		err := suite.announcementService.DeleteComment(commentID, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	suite.T().Run("Delete Comment Success", func(t *testing.T) {
		commentID := uuid.New()
		callerID := uuid.New()
		suite.mockCommentRepo.EXPECT().
			GetByID(commentID).
			Return(&models.Comment{BaseModel: models.BaseModel{ID: commentID}, UserID: callerID}, nil)
		suite.mockCommentRepo.EXPECT().Delete(commentID).Return(nil)

		err := suite.announcementService.DeleteComment(commentID, callerID)

		assert.NoError(t, err)
	})
}

// TestUpdateOwnership tests author enforcement on updates
func (suite *AnnouncementServiceTestSuite) TestUpdateOwnership() {
	announcementID := uuid.New()
	authorID := uuid.New()
	existing := &models.Announcement{
		BaseModel: models.BaseModel{ID: announcementID},
		UserID:    authorID,
		Title:     "old title",
		Content:   "old content",
	}

	suite.T().Run("Not Author", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(existing, nil)

		req := &service.AnnouncementRequest{Title: "new", Content: "new"}
		updated, err := suite.announcementService.Update(announcementID, uuid.New(), req)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(announcementID).Return(existing, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		req := &service.AnnouncementRequest{Title: "new title", Content: "new content"}
		updated, err := suite.announcementService.Update(announcementID, authorID, req)

		assert.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
	})
}

// TestAnnouncementServiceTestSuite runs the test suite
func TestAnnouncementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementServiceTestSuite))
}
