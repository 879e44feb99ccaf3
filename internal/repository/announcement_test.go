package repository

import (
	"testing"

	"agricoop-backend/internal/database/models"
	apperrors "agricoop-backend/internal/errors"
	"agricoop-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnnouncementRepositoryTestSuite tests the AnnouncementRepository
type AnnouncementRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnnouncementRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAnnouncementRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnnouncementRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AnnouncementRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createMember persists a user for announcements and likes to reference
func (suite *AnnouncementRepositoryTestSuite) createMember() *models.User {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)
	return user
}

// createAnnouncement persists an announcement authored by the given member
func (suite *AnnouncementRepositoryTestSuite) createAnnouncement(author *models.User) *models.Announcement {
	announcement := suite.factories.Announcement.WithAuthor(author)
	err := suite.repo.Create(announcement)
	suite.NoError(err)
	return announcement
}

// TestAddLike tests recording a like and bumping the counter
func (suite *AnnouncementRepositoryTestSuite) TestAddLike() {
	author := suite.createMember()
	liker := suite.createMember()
	announcement := suite.createAnnouncement(author)

	err := suite.repo.AddLike(announcement.ID, liker.ID)
	suite.NoError(err)

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.Equal(1, found.LikesCount)

	liked, err := suite.repo.HasLiked(announcement.ID, liker.ID)
	suite.NoError(err)
	suite.True(liked)
}

// TestAddLikeTwice tests that a repeated like hits the unique index and
// surfaces as the typed error without touching the counter
func (suite *AnnouncementRepositoryTestSuite) TestAddLikeTwice() {
	author := suite.createMember()
	liker := suite.createMember()
	announcement := suite.createAnnouncement(author)

	suite.NoError(suite.repo.AddLike(announcement.ID, liker.ID))

	err := suite.repo.AddLike(announcement.ID, liker.ID)
	suite.ErrorIs(err, apperrors.ErrLikeExists)

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.Equal(1, found.LikesCount)
}

// TestRemoveLike tests removing a like and dropping the counter
func (suite *AnnouncementRepositoryTestSuite) TestRemoveLike() {
	author := suite.createMember()
	liker := suite.createMember()
	announcement := suite.createAnnouncement(author)
	suite.NoError(suite.repo.AddLike(announcement.ID, liker.ID))

	err := suite.repo.RemoveLike(announcement.ID, liker.ID)
	suite.NoError(err)

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.Equal(0, found.LikesCount)

	liked, err := suite.repo.HasLiked(announcement.ID, liker.ID)
	suite.NoError(err)
	suite.False(liked)
}

// TestRemoveLikeNotFound tests removing a like that was never recorded
func (suite *AnnouncementRepositoryTestSuite) TestRemoveLikeNotFound() {
	author := suite.createMember()
	liker := suite.createMember()
	announcement := suite.createAnnouncement(author)

	err := suite.repo.RemoveLike(announcement.ID, liker.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAnnouncementRepositoryTestSuite runs the test suite
func TestAnnouncementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementRepositoryTestSuite))
}
