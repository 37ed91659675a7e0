package services_test

import (
	"context"
	"testing"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CampaignRepository (full facade) ---
type MockCampaignRepository struct {
	MockCampaignReader
}

func (m *MockCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) DeleteCampaign(ctx context.Context, campaignID string, force bool) error {
	args := m.Called(ctx, campaignID, force)
	return args.Error(0)
}

// --- Test Suite ---
type CampaignServiceTestSuite struct {
	suite.Suite
	mockCampaignRepo *MockCampaignRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.CampaignSvcFacade

	admin domain.Actor
	donor domain.Actor
}

func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.mockCampaignRepo = new(MockCampaignRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewCampaignService(suite.mockCampaignRepo, suite.mockCategoryRepo)
	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.donor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleDonor}
}

func (suite *CampaignServiceTestSuite) TestCreateCampaign_Success() {
	ctx := context.Background()

	var saved domain.Campaign
	suite.mockCampaignRepo.On("SaveCampaign", ctx, mock.AnythingOfType("domain.Campaign")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Campaign) }).
		Return(nil).Once()

	req := dto.CreateCampaignRequest{
		Title:        "School Build",
		TargetAmount: decimal.NewFromInt(5000),
		Priority:     2,
	}

	campaign, err := suite.service.CreateCampaign(ctx, req, suite.admin)

	suite.Require().NoError(err)
	assert.True(suite.T(), campaign.IsActive, "campaigns default to active")
	assert.True(suite.T(), campaign.CurrentAmount.IsZero())
	assert.Equal(suite.T(), suite.admin.UserID, saved.CreatedBy)
}

func (suite *CampaignServiceTestSuite) TestCreateCampaign_AdminOnly() {
	req := dto.CreateCampaignRequest{Title: "X", TargetAmount: decimal.NewFromInt(1)}

	_, err := suite.service.CreateCampaign(context.Background(), req, suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *CampaignServiceTestSuite) TestCreateCampaign_UnknownCategoryRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, apperrors.NewNotFoundError("category not found")).Once()

	req := dto.CreateCampaignRequest{
		Title:        "X",
		TargetAmount: decimal.NewFromInt(1),
		CategoryID:   &categoryID,
	}

	_, err := suite.service.CreateCampaign(ctx, req, suite.admin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *CampaignServiceTestSuite) TestUpdateCampaign_PartialFields() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	existing := &domain.Campaign{
		CampaignID:    campaignID,
		Title:         "Old Title",
		Description:   "Old Desc",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(200),
		IsActive:      true,
	}
	suite.mockCampaignRepo.On("FindCampaignByID", ctx, campaignID).Return(existing, nil).Once()

	var updated domain.Campaign
	suite.mockCampaignRepo.On("UpdateCampaign", ctx, mock.AnythingOfType("domain.Campaign")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Campaign) }).
		Return(nil).Once()

	newTitle := "New Title"
	isActive := false
	_, err := suite.service.UpdateCampaign(ctx, campaignID, dto.UpdateCampaignRequest{
		Title:    &newTitle,
		IsActive: &isActive,
	}, suite.admin)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "New Title", updated.Title)
	assert.Equal(suite.T(), "Old Desc", updated.Description)
	assert.False(suite.T(), updated.IsActive)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(updated.CurrentAmount), "updates never touch current amount")
}

func (suite *CampaignServiceTestSuite) TestDeleteCampaign_ConflictWithoutForce() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	suite.mockCampaignRepo.On("DeleteCampaign", ctx, campaignID, false).
		Return(apperrors.NewAppError(409, "campaign has donation allocations", apperrors.ErrConflict)).Once()

	err := suite.service.DeleteCampaign(ctx, campaignID, false, suite.admin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *CampaignServiceTestSuite) TestDeleteCampaign_ForceCascades() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	suite.mockCampaignRepo.On("DeleteCampaign", ctx, campaignID, true).Return(nil).Once()

	err := suite.service.DeleteCampaign(ctx, campaignID, true, suite.admin)

	suite.Require().NoError(err)
	suite.mockCampaignRepo.AssertExpectations(suite.T())
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
