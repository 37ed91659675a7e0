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

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_USDIsAlwaysOne() {
	rate, err := suite.service.GetRate(context.Background(), "USD")

	suite.Require().NoError(err)
	assert.True(suite.T(), decimal.NewFromInt(1).Equal(rate))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertToUSD_DividesByRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRate", ctx, "EUR").
		Return(&domain.ExchangeRate{CurrencyCode: "EUR", RatePerUSD: decimal.NewFromFloat(0.8)}, nil).Once()

	got, err := suite.service.ConvertToUSD(ctx, decimal.NewFromInt(40), "EUR")

	suite.Require().NoError(err)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(got))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_MissingRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRate", ctx, "TRY").
		Return(nil, apperrors.NewNotFoundError("rate not found")).Once()

	_, err := suite.service.GetRate(ctx, "TRY")

	assert.ErrorIs(suite.T(), err, services.ErrRateUnavailable)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_ZeroRateRejected() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRate", ctx, "TRY").
		Return(&domain.ExchangeRate{CurrencyCode: "TRY", RatePerUSD: decimal.Zero}, nil).Once()

	_, err := suite.service.GetRate(ctx, "TRY")

	assert.ErrorIs(suite.T(), err, services.ErrRateUnavailable)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_AdminOnly() {
	donor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleDonor}

	_, err := suite.service.UpsertRate(context.Background(), "EUR", dto.UpsertRateRequest{Rate: decimal.NewFromFloat(0.9)}, donor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_Success() {
	ctx := context.Background()
	admin := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.mockRateRepo.On("UpsertRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.UpsertRate(ctx, "EUR", dto.UpsertRateRequest{Rate: decimal.NewFromFloat(0.92)}, admin)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "EUR", rate.CurrencyCode)
	assert.True(suite.T(), decimal.NewFromFloat(0.92).Equal(rate.RatePerUSD))
	assert.Equal(suite.T(), admin.UserID, rate.UpdatedBy)
	assert.WithinDuration(suite.T(), time.Now().UTC(), rate.UpdatedAt, time.Minute)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_USDRejected() {
	admin := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	_, err := suite.service.UpsertRate(context.Background(), "USD", dto.UpsertRateRequest{Rate: decimal.NewFromInt(2)}, admin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
