package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock DonationRepository ---
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var donations []domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]domain.Donation)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return donations, token, args.Error(2)
}

func (m *MockDonationRepository) ListDonationsByDonor(ctx context.Context, donorID string, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	args := m.Called(ctx, donorID, limit, nextToken)
	var donations []domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]domain.Donation)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return donations, token, args.Error(2)
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, campaignDeltas map[string]decimal.Decimal, categoryDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, donation, campaignDeltas, categoryDeltas)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteDonation(ctx context.Context, donationID string) error {
	args := m.Called(ctx, donationID)
	return args.Error(0)
}

// UpdateSubscription mirrors the repository contract: the registered return
// value plays the freshly read row, the callback mutates it, and a callback
// error aborts the write.
func (m *MockDonationRepository) UpdateSubscription(ctx context.Context, donationID string, apply func(*domain.Donation) error) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	donation := args.Get(0).(*domain.Donation)
	if err := apply(donation); err != nil {
		return nil, err
	}
	return donation, args.Error(1)
}

// --- Mock CampaignRepository (reader only; the ledger never writes campaigns) ---
type MockCampaignReader struct {
	mock.Mock
}

func (m *MockCampaignReader) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignReader) FindCampaignsByIDs(ctx context.Context, campaignIDs []string) (map[string]domain.Campaign, error) {
	args := m.Called(ctx, campaignIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Campaign), args.Error(1)
}

func (m *MockCampaignReader) ListCampaigns(ctx context.Context, onlyActive bool) ([]domain.Campaign, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishDonationCreated(ctx context.Context, donation *domain.Donation) {
	m.Called(ctx, donation)
}

func (m *MockEventPublisher) PublishDonationDeleted(ctx context.Context, donationID string) {
	m.Called(ctx, donationID)
}

// --- Test Suite ---
type DonationServiceTestSuite struct {
	suite.Suite
	mockDonationRepo *MockDonationRepository
	mockCampaignRepo *MockCampaignReader
	mockCategoryRepo *MockCategoryReader
	mockRates        *MockRateProvider
	mockEvents       *MockEventPublisher
	service          portssvc.DonationSvcFacade

	donor domain.Actor
	admin domain.Actor
}

func (suite *DonationServiceTestSuite) SetupTest() {
	suite.mockDonationRepo = new(MockDonationRepository)
	suite.mockCampaignRepo = new(MockCampaignReader)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.mockRates = new(MockRateProvider)
	suite.mockEvents = new(MockEventPublisher)
	suite.service = services.NewDonationService(
		suite.mockDonationRepo,
		suite.mockCampaignRepo,
		suite.mockCategoryRepo,
		suite.mockRates,
		suite.mockEvents,
	)
	suite.donor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleDonor}
	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
}

func activeCampaign(id string) domain.Campaign {
	return domain.Campaign{
		CampaignID:   id,
		Title:        "Water Wells",
		TargetAmount: decimal.NewFromInt(1000),
		IsActive:     true,
	}
}

// --- CreateDonation ---

func (suite *DonationServiceTestSuite) TestCreateDonation_SplitAllocation() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoriesByIDs", ctx, []string{categoryID}).
		Return(map[string]domain.Category{categoryID: {CategoryID: categoryID, Title: "Orphans"}}, nil).Once()
	suite.mockRates.On("GetRate", ctx, "USD").Return(decimal.NewFromInt(1), nil).Once()

	var savedDonation domain.Donation
	var savedCampaignDeltas, savedCategoryDeltas map[string]decimal.Decimal
	suite.mockDonationRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedDonation = args.Get(1).(domain.Donation)
			savedCampaignDeltas = args.Get(2).(map[string]decimal.Decimal)
			savedCategoryDeltas = args.Get(3).(map[string]decimal.Decimal)
		}).Return(nil).Once()
	suite.mockEvents.On("PublishDonationCreated", ctx, mock.Anything).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(60)},
		},
		CategoryAllocations: []dto.CategoryAllocationInput{
			{CategoryID: categoryID, Amount: decimal.NewFromInt(40)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	donation, err := suite.service.CreateDonation(ctx, req, suite.donor)

	suite.Require().NoError(err)
	suite.Require().NotNil(donation)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(donation.Amount))
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(donation.AmountUSD))
	assert.True(suite.T(), decimal.NewFromInt(3).Equal(donation.Fees), "fees recorded even when not charged")
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(donation.TotalAmount))
	assert.Equal(suite.T(), domain.StatusActive, donation.Status)
	assert.Equal(suite.T(), suite.donor.UserID, donation.DonorID)
	assert.Nil(suite.T(), donation.BillingDay)

	suite.Require().Len(savedDonation.Items, 1)
	suite.Require().Len(savedDonation.CategoryItems, 1)
	assert.True(suite.T(), decimal.NewFromInt(60).Equal(savedCampaignDeltas[campaignID]))
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(savedCategoryDeltas[categoryID]))

	suite.mockDonationRepo.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_CoverFeesChargesTotal() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()
	suite.mockRates.On("GetRate", ctx, "USD").Return(decimal.NewFromInt(1), nil).Once()
	suite.mockDonationRepo.On("SaveDonation", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockEvents.On("PublishDonationCreated", ctx, mock.Anything).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(100)},
		},
		CoverFees:     true,
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	donation, err := suite.service.CreateDonation(ctx, req, suite.donor)

	suite.Require().NoError(err)
	assert.True(suite.T(), decimal.NewFromInt(3).Equal(donation.Fees))
	assert.True(suite.T(), decimal.NewFromInt(103).Equal(donation.TotalAmount))
}

func (suite *DonationServiceTestSuite) TestCreateDonation_CurrencyNormalization() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()
	// 2 EUR per USD.
	suite.mockRates.On("GetRate", ctx, "EUR").Return(decimal.NewFromInt(2), nil).Once()

	var savedCampaignDeltas map[string]decimal.Decimal
	suite.mockDonationRepo.On("SaveDonation", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedCampaignDeltas = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()
	suite.mockEvents.On("PublishDonationCreated", ctx, mock.Anything).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "EUR",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(50)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	donation, err := suite.service.CreateDonation(ctx, req, suite.donor)

	suite.Require().NoError(err)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(donation.Amount))
	assert.True(suite.T(), decimal.NewFromInt(25).Equal(donation.AmountUSD))
	assert.True(suite.T(), decimal.NewFromInt(25).Equal(savedCampaignDeltas[campaignID]), "target increments use USD amounts")
}

func (suite *DonationServiceTestSuite) TestCreateDonation_EmptyAllocation() {
	req := dto.CreateDonationRequest{
		CurrencyCode:  "USD",
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	_, err := suite.service.CreateDonation(context.Background(), req, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrEmptyAllocation)
	suite.mockDonationRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_TargetNotFound() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{}, nil).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(10)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	_, err := suite.service.CreateDonation(ctx, req, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrTargetNotFound)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_CampaignInactive() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	inactive := activeCampaign(campaignID)
	inactive.IsActive = false

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: inactive}, nil).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(10)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	_, err := suite.service.CreateDonation(ctx, req, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrCampaignInactive)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_MissingCardDetails() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(10)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentCard,
		PaymentMeta:   map[string]string{"cardNumber": "4111111111111111"},
	}

	_, err := suite.service.CreateDonation(ctx, req, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrMissingCardDetails)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_RateUnavailable() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()
	suite.mockRates.On("GetRate", ctx, "XXX").Return(decimal.Zero, services.ErrRateUnavailable).Once()

	req := dto.CreateDonationRequest{
		CurrencyCode: "XXX",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(10)},
		},
		Type:          domain.OneTime,
		PaymentMethod: domain.PaymentPayPal,
	}

	_, err := suite.service.CreateDonation(ctx, req, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrRateUnavailable)
	suite.mockDonationRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_MonthlyInitializesBilling() {
	ctx := context.Background()
	campaignID := uuid.NewString()

	suite.mockCampaignRepo.On("FindCampaignsByIDs", ctx, []string{campaignID}).
		Return(map[string]domain.Campaign{campaignID: activeCampaign(campaignID)}, nil).Once()
	suite.mockRates.On("GetRate", ctx, "USD").Return(decimal.NewFromInt(1), nil).Once()
	suite.mockDonationRepo.On("SaveDonation", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockEvents.On("PublishDonationCreated", ctx, mock.Anything).Once()

	billingDay := 31
	req := dto.CreateDonationRequest{
		CurrencyCode: "USD",
		CampaignAllocations: []dto.CampaignAllocationInput{
			{CampaignID: campaignID, Amount: decimal.NewFromInt(25)},
		},
		Type:          domain.Monthly,
		BillingDay:    &billingDay,
		PaymentMethod: domain.PaymentPayPal,
	}

	donation, err := suite.service.CreateDonation(ctx, req, suite.donor)

	suite.Require().NoError(err)
	suite.Require().NotNil(donation.BillingDay)
	assert.Equal(suite.T(), domain.MaxBillingDay, *donation.BillingDay, "billing day is clamped")
	suite.Require().NotNil(donation.LastBillingDate)
	suite.Require().NotNil(donation.NextBillingDate)
	assert.True(suite.T(), donation.NextBillingDate.Equal(domain.AddCalendarMonth(*donation.LastBillingDate)))
}

// --- DeleteDonation ---

func (suite *DonationServiceTestSuite) TestDeleteDonation_AdminOnly() {
	err := suite.service.DeleteDonation(context.Background(), uuid.NewString(), suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockDonationRepo.AssertNotCalled(suite.T(), "DeleteDonation", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_Success() {
	ctx := context.Background()
	donationID := uuid.NewString()

	suite.mockDonationRepo.On("DeleteDonation", ctx, donationID).Return(nil).Once()
	suite.mockEvents.On("PublishDonationDeleted", ctx, donationID).Once()

	err := suite.service.DeleteDonation(ctx, donationID, suite.admin)

	suite.Require().NoError(err)
	suite.mockDonationRepo.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_NotFound() {
	ctx := context.Background()
	donationID := uuid.NewString()

	suite.mockDonationRepo.On("DeleteDonation", ctx, donationID).
		Return(apperrors.NewNotFoundError("donation not found")).Once()

	err := suite.service.DeleteDonation(ctx, donationID, suite.admin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockEvents.AssertNotCalled(suite.T(), "PublishDonationDeleted", mock.Anything, mock.Anything)
}

// --- UpdateSubscription ---

func (suite *DonationServiceTestSuite) monthlyDonation(donorID string, status domain.SubscriptionStatus, billingDay int) *domain.Donation {
	next := domain.NextBillingFromDay(time.Now().UTC(), billingDay)
	return &domain.Donation{
		DonationID:      uuid.NewString(),
		DonorID:         donorID,
		Type:            domain.Monthly,
		Status:          status,
		BillingDay:      &billingDay,
		NextBillingDate: &next,
	}
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_OwnerMayPause() {
	ctx := context.Background()
	donation := suite.monthlyDonation(suite.donor.UserID, domain.StatusActive, 10)
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusPaused
	updated, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusPaused, updated.Status)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_OwnerMayNotCancel() {
	ctx := context.Background()
	donation := suite.monthlyDonation(suite.donor.UserID, domain.StatusActive, 10)
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusCancelled
	_, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_AdminMayCancel() {
	ctx := context.Background()
	donation := suite.monthlyDonation(suite.donor.UserID, domain.StatusActive, 10)
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusCancelled
	updated, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.admin)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusCancelled, updated.Status)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_NonOwnerForbidden() {
	ctx := context.Background()
	donation := suite.monthlyDonation(uuid.NewString(), domain.StatusActive, 10)
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusPaused
	_, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_OneTimeRejected() {
	ctx := context.Background()
	donation := &domain.Donation{
		DonationID: uuid.NewString(),
		DonorID:    suite.donor.UserID,
		Type:       domain.OneTime,
		Status:     domain.StatusActive,
	}
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusPaused
	_, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrInvalidOperation)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_InvalidStatusRejected() {
	status := domain.SubscriptionStatus("SUSPENDED")
	_, err := suite.service.UpdateSubscription(context.Background(), uuid.NewString(), dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	assert.ErrorIs(suite.T(), err, services.ErrInvalidStatus)
	suite.mockDonationRepo.AssertNotCalled(suite.T(), "UpdateSubscription", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_ReactivationRecomputesNextBilling() {
	ctx := context.Background()
	donation := suite.monthlyDonation(suite.donor.UserID, domain.StatusPaused, 10)
	donation.NextBillingDate = nil
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	status := domain.StatusActive
	updated, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{Status: &status}, suite.donor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusActive, updated.Status)
	suite.Require().NotNil(updated.NextBillingDate)
	expected := domain.NextBillingFromDay(time.Now().UTC(), 10)
	assert.True(suite.T(), updated.NextBillingDate.Equal(expected))
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_BillingDayClamped() {
	ctx := context.Background()
	donation := suite.monthlyDonation(suite.donor.UserID, domain.StatusActive, 10)
	suite.mockDonationRepo.On("UpdateSubscription", ctx, donation.DonationID).Return(donation, nil).Once()

	day := 31
	updated, err := suite.service.UpdateSubscription(ctx, donation.DonationID, dto.UpdateSubscriptionRequest{BillingDay: &day}, suite.donor)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.BillingDay)
	assert.Equal(suite.T(), domain.MaxBillingDay, *updated.BillingDay)
	suite.Require().NotNil(updated.NextBillingDate)
	expected := domain.NextBillingFromDay(time.Now().UTC(), domain.MaxBillingDay)
	assert.True(suite.T(), updated.NextBillingDate.Equal(expected), "active subscription recomputes next billing on day change")
}

func (suite *DonationServiceTestSuite) TestUpdateSubscription_EmptyRequestRejected() {
	_, err := suite.service.UpdateSubscription(context.Background(), uuid.NewString(), dto.UpdateSubscriptionRequest{}, suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

// --- Reads ---

func (suite *DonationServiceTestSuite) TestGetDonationByID_OwnerScoped() {
	ctx := context.Background()
	donation := &domain.Donation{
		DonationID: uuid.NewString(),
		DonorID:    uuid.NewString(),
	}
	suite.mockDonationRepo.On("FindDonationByID", ctx, donation.DonationID).Return(donation, nil)

	_, err := suite.service.GetDonationByID(ctx, donation.DonationID, suite.donor)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)

	got, err := suite.service.GetDonationByID(ctx, donation.DonationID, suite.admin)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), donation.DonationID, got.DonationID)
}

func (suite *DonationServiceTestSuite) TestListDonations_AdminOnly() {
	_, err := suite.service.ListDonations(context.Background(), dto.ListDonationsParams{}, suite.donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
