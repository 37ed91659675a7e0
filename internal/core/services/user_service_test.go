package services_test

import (
	"context"
	"testing"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.RoleDonor, user.Role)
	assert.NotEqual(suite.T(), "correct horse battery", saved.PasswordHash)
	assert.True(suite.T(), utils.CheckPasswordHash("correct horse battery", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(&domain.User{UserID: uuid.NewString(), Email: "ada@example.com"}, nil).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "whatever123",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right password")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(&domain.User{UserID: uuid.NewString(), Email: "ada@example.com", PasswordHash: hash}, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "ada@example.com", "wrong password")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "anything")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized, "missing users and bad passwords are indistinguishable")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesPasswordlessDonor() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "new@example.com", "New User")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.RoleDonor, user.Role)
	assert.Empty(suite.T(), saved.PasswordHash)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "old@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "old@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "old@example.com", "Old User")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
